package app

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/thenoetrevino/taskr/internal/config"
	"github.com/thenoetrevino/taskr/internal/database"
	taskservice "github.com/thenoetrevino/taskr/internal/services/task"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	db *sql.DB

	// Config and logger shared by every shell
	Config *config.Config
	Logger *slog.Logger

	// Service layer (business logic)
	TaskService taskservice.Service
}

// New creates a new App with all services initialized over an open database.
// The App takes ownership of db and closes it in Close.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.config == nil {
		cfg.config = config.Default()
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	repo := database.NewRepository(db)
	return &App{
		db:          db,
		Config:      cfg.config,
		Logger:      cfg.logger,
		TaskService: taskservice.NewService(repo, cfg.logger),
	}
}

// Open initializes the database at dbPath (empty means the default location)
// and returns an App over it.
func Open(ctx context.Context, dbPath string, opts ...Option) (*App, error) {
	db, err := database.InitDB(ctx, dbPath)
	if err != nil {
		return nil, err
	}
	return New(db, opts...), nil
}

// DueSoonDays returns the configured due-soon window
func (a *App) DueSoonDays() int {
	return a.Config.DueSoonDays
}

// Close releases the database handle. Safe to call more than once.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}
