package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/taskr/internal/app"
	"github.com/thenoetrevino/taskr/internal/config"
)

type contextKey string

const appKey contextKey = "app"

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	// owned is true when this CLI opened the App and must close it
	owned bool
}

// NewCLI loads config and opens the database at dbPath (empty means resolve
// from TASKR_DB, the config file, then the default location)
func NewCLI(ctx context.Context, dbPath string) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	application, err := app.Open(ctx, cfg.ResolveDBPath(dbPath), app.WithConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{App: application, owned: true}, nil
}

// WithApp returns a context carrying an already opened App.
// Commands run under it share the App instead of opening their own.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// AppFromContext returns the App stored by WithApp, if any
func AppFromContext(ctx context.Context) (*app.App, bool) {
	if ctx == nil {
		return nil, false
	}
	a, ok := ctx.Value(appKey).(*app.App)
	return a, ok && a != nil
}

// GetCLIFromContext returns a CLI over the App in ctx, or opens a new one
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := AppFromContext(ctx); ok {
		return &CLI{App: a}, nil
	}
	return NewCLI(ctx, "")
}

// Close cleans up CLI resources. A CLI borrowed from the context leaves
// the App open for its owner.
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
