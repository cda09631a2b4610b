package app

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/taskr/internal/config"
	taskservice "github.com/thenoetrevino/taskr/internal/services/task"
)

func TestOpen(t *testing.T) {
	app, err := Open(context.Background(), filepath.Join(t.TempDir(), "tasks.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer func() { _ = app.Close() }()

	if app.TaskService == nil {
		t.Fatal("Expected TaskService to be initialized")
	}
	if app.Config == nil || app.Logger == nil {
		t.Error("Expected default config and logger")
	}

	task, err := app.TaskService.CreateTask(context.Background(), taskservice.CreateTaskRequest{
		Title:   "wired",
		DueDate: "2099-01-01",
	})
	if err != nil {
		t.Fatalf("CreateTask through App failed: %v", err)
	}
	if task.ID != 1 {
		t.Errorf("Expected first task ID 1, got %d", task.ID)
	}
}

func TestOptions(t *testing.T) {
	cfg := config.Default()
	cfg.DueSoonDays = 9
	logger := slog.New(slog.DiscardHandler)

	app, err := Open(context.Background(), filepath.Join(t.TempDir(), "tasks.db"),
		WithConfig(cfg), WithLogger(logger))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer func() { _ = app.Close() }()

	if app.DueSoonDays() != 9 {
		t.Errorf("Expected DueSoonDays 9, got %d", app.DueSoonDays())
	}
	if app.Logger != logger {
		t.Error("Expected WithLogger to set the logger")
	}
}

func TestClose(t *testing.T) {
	app, err := Open(context.Background(), filepath.Join(t.TempDir(), "tasks.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if err := app.Close(); err != nil {
		t.Errorf("Expected Close to succeed, got error: %v", err)
	}
	if err := app.Close(); err != nil {
		t.Errorf("Expected second Close to be a no-op, got error: %v", err)
	}
}

func TestOpen_BadPath(t *testing.T) {
	dir := t.TempDir()
	// A regular file where the parent directory should be
	blocker := filepath.Join(dir, "blocker")
	if err := writeFile(blocker); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if _, err := Open(context.Background(), filepath.Join(blocker, "tasks.db")); err == nil {
		t.Error("Expected Open to fail when the parent is a file")
	}
}

func writeFile(path string) error {
	return os.WriteFile(path, []byte("x"), 0o644)
}
