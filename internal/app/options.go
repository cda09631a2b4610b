package app

import (
	"log/slog"

	"github.com/thenoetrevino/taskr/internal/config"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	config *config.Config
	logger *slog.Logger
}

// WithConfig sets the loaded configuration for the application
func WithConfig(c *config.Config) Option {
	return func(cfg *appConfig) {
		cfg.config = c
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
