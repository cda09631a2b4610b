package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the tasks table if it does not exist yet
func runMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			priority TEXT,
			due_date TEXT,
			status TEXT,
			created_at TEXT NOT NULL DEFAULT (datetime('now', 'localtime'))
		)
	`)
	return err
}
