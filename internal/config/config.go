package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/thenoetrevino/taskr/internal/due"
	"github.com/thenoetrevino/taskr/internal/models"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load and ResolveDBPath
const (
	EnvDBPath    = "TASKR_DB"
	EnvThemeFile = "TASKR_THEME_FILE"
)

// Config represents the application configuration
type Config struct {
	DBPath          string      `yaml:"db_path,omitempty"`
	DueSoonDays     int         `yaml:"due_soon_days"`
	DefaultPriority string      `yaml:"default_priority"`
	KeyMappings     KeyMappings `yaml:"key_mappings"`
	ColorScheme     ColorScheme `yaml:"theme"`
}

// Default returns a config with every value set to its default
func Default() *Config {
	config := &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
	config.applyDefaults()
	return config
}

// loadThemeFile loads and merges theme from TASKR_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		slog.Warn("failed to read theme file", "path", themeFile, "error", err)
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		config := Default()
		loadThemeFile(config)
		return config, nil
	}

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	// Parse YAML
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Load theme from TASKR_THEME_FILE if set
	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// ResolveDBPath picks the database file: the flag value, then TASKR_DB,
// then db_path from the config file. An empty result means the default
// location.
func (c *Config) ResolveDBPath(flagValue string) string {
	for _, candidate := range []string{flagValue, os.Getenv(EnvDBPath), c.DBPath} {
		if candidate = strings.TrimSpace(candidate); candidate != "" {
			return expandHome(candidate)
		}
	}
	return ""
}

// Priority returns the configured default priority for new tasks
func (c *Config) Priority() models.Priority {
	p, err := models.ParsePriority(c.DefaultPriority)
	if err != nil {
		return models.DefaultPriority
	}
	return p
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "taskr", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "taskr", "config.yaml"), nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.DueSoonDays <= 0 {
		c.DueSoonDays = due.DefaultSoonDays
	}
	if _, err := models.ParsePriority(c.DefaultPriority); err != nil {
		if c.DefaultPriority != "" {
			slog.Warn("ignoring invalid default_priority", "value", c.DefaultPriority)
		}
		c.DefaultPriority = string(models.DefaultPriority)
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
