package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/taskr/internal/models"
	_ "modernc.org/sqlite"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	// Each pooled connection would get its own private :memory: database
	db.SetMaxOpenConns(1)

	if err := runMigrations(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}

// setupTestDBFile creates a file-based database for testing persistence across restarts
func setupTestDBFile(t *testing.T) (*sql.DB, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "tasks.db")

	db, err := InitDB(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("Failed to init test database: %v", err)
	}

	return db, dbPath
}

// closeAndReopenDB simulates app restart by closing and reopening the database
func closeAndReopenDB(t *testing.T, db *sql.DB, dbPath string) *sql.DB {
	t.Helper()
	if err := db.Close(); err != nil {
		t.Fatalf("Failed to close database: %v", err)
	}

	newDB, err := InitDB(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen database: %v", err)
	}
	t.Cleanup(func() { _ = newDB.Close() })

	return newDB
}

// ----------------------------------------------------------------------------

func createTask(t *testing.T, repo *Repository, title, priority, due string) *models.Task {
	t.Helper()
	task, err := repo.CreateTask(context.Background(), title, priority, due)
	if err != nil {
		t.Fatalf("Failed to create task %q: %v", title, err)
	}
	return task
}

func ids(tasks []*models.Task) []int {
	out := make([]int, len(tasks))
	for i, task := range tasks {
		out[i] = task.ID
	}
	return out
}

func strPtr(s string) *string {
	return &s
}
