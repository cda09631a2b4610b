// Package database defines repository interfaces for data access
package database

import (
	"context"

	"github.com/thenoetrevino/taskr/internal/models"
)

// TaskReader defines read operations for tasks.
type TaskReader interface {
	GetTask(ctx context.Context, id int) (*models.Task, error)
	ListTasks(ctx context.Context, filter models.Filter) ([]*models.Task, error)
	SearchTasks(ctx context.Context, keyword string) ([]*models.Task, error)
}

// TaskWriter defines write operations for tasks.
type TaskWriter interface {
	CreateTask(ctx context.Context, title, priority, dueDate string) (*models.Task, error)
	UpdateTaskStatus(ctx context.Context, id int, status models.Status) error
	EditTask(ctx context.Context, id int, edit models.TaskEdit) error
	DeleteTask(ctx context.Context, id int) error
}

// DataStore defines the unified interface for all data operations needed by
// the shells. Consumers can depend on TaskReader or TaskWriter alone.
type DataStore interface {
	TaskReader
	TaskWriter
}
