package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskr/internal/app"
	"github.com/thenoetrevino/taskr/internal/tui"
)

// Launch runs the full-screen TUI over the given App until the user quits
// or the process is interrupted. The caller keeps ownership of the App.
func Launch(ctx context.Context, application *app.App, opts ...tea.ProgramOption) error {
	// Create context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	model := tui.New(ctx, application.TaskService, application.Config)
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(model, opts...)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		slog.Info("shutdown signal received, cleaning up")
		return nil
	}
	if err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
