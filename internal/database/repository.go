package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/taskr/internal/models"
)

// Repository provides the DataStore implementation backed by SQLite.
type Repository struct {
	*TaskRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		TaskRepo: NewTaskRepo(db),
	}
}

var _ DataStore = (*Repository)(nil)

func (r *Repository) GetTask(ctx context.Context, id int) (*models.Task, error) {
	return r.TaskRepo.Get(ctx, id)
}

func (r *Repository) ListTasks(ctx context.Context, filter models.Filter) ([]*models.Task, error) {
	return r.TaskRepo.List(ctx, filter)
}

func (r *Repository) SearchTasks(ctx context.Context, keyword string) ([]*models.Task, error) {
	return r.TaskRepo.Search(ctx, keyword)
}

func (r *Repository) CreateTask(ctx context.Context, title, priority, dueDate string) (*models.Task, error) {
	return r.TaskRepo.Create(ctx, title, priority, dueDate)
}

func (r *Repository) UpdateTaskStatus(ctx context.Context, id int, status models.Status) error {
	return r.TaskRepo.UpdateStatus(ctx, id, status)
}

func (r *Repository) EditTask(ctx context.Context, id int, edit models.TaskEdit) error {
	return r.TaskRepo.Edit(ctx, id, edit)
}

func (r *Repository) DeleteTask(ctx context.Context, id int) error {
	return r.TaskRepo.Delete(ctx, id)
}
