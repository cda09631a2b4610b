package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/thenoetrevino/taskr/internal/database"
	"github.com/thenoetrevino/taskr/internal/models"
)

// CaptureOutput captures stdout during function execution
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	// Save original stdout
	oldStdout := os.Stdout

	// Create pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	// Replace stdout with pipe writer
	os.Stdout = w

	// Channel to collect output
	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	// Execute function
	fn()

	// Close writer and restore stdout
	_ = w.Close()
	os.Stdout = oldStdout

	// Get captured output
	return <-outC
}

// SetupTestDB creates a migrated database in a per-test temp directory.
// The handle is closed automatically when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), filepath.Join(t.TempDir(), "tasks.db"))
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// TaskFixture describes a row inserted directly by CreateTestTask
type TaskFixture struct {
	Title    string
	Priority models.Priority
	DueDate  string
	Status   models.Status
}

// CreateTestTask inserts a task row without going through validation and
// returns its ID. Zero-valued fields get Medium, a far-future due date, and Pending.
func CreateTestTask(t *testing.T, db *sql.DB, fx TaskFixture) int {
	t.Helper()

	if fx.Priority == "" {
		fx.Priority = models.PriorityMedium
	}
	if fx.DueDate == "" {
		fx.DueDate = "2099-12-31"
	}
	if fx.Status == "" {
		fx.Status = models.StatusPending
	}

	result, err := db.ExecContext(context.Background(),
		"INSERT INTO tasks (title, priority, due_date, status, created_at) VALUES (?, ?, ?, ?, ?)",
		fx.Title, string(fx.Priority), fx.DueDate, string(fx.Status),
		time.Now().Format(models.CreatedAtLayout))
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	taskID, _ := result.LastInsertId()
	return int(taskID)
}

// DateOffset returns today's date shifted by days, in due-date format
func DateOffset(days int) string {
	return time.Now().AddDate(0, 0, days).Format(models.DueDateLayout)
}
