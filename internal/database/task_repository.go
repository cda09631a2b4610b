package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/thenoetrevino/taskr/internal/models"
)

const taskColumns = `id, title, priority, due_date, status, created_at`

// TaskRepo handles task persistence. Every mutation is a single
// auto-committed statement.
type TaskRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewTaskRepo creates a TaskRepo over an open database handle
func NewTaskRepo(db *sql.DB) *TaskRepo {
	return &TaskRepo{db: db, now: time.Now}
}

// Create inserts a new task with status Pending and returns the stored row
func (r *TaskRepo) Create(ctx context.Context, title, priority, dueDate string) (*models.Task, error) {
	createdAt := r.now().Format(models.CreatedAtLayout)

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (title, priority, due_date, status, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		title, priority, dueDate, string(models.StatusPending), createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read new task id: %w", err)
	}

	return r.Get(ctx, int(id))
}

// Get retrieves a single task by ID.
// Returns models.ErrTaskNotFound if no row matches.
func (r *TaskRepo) Get(ctx context.Context, id int) (*models.Task, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ?`,
		id,
	)

	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task %d: %w", id, err)
	}
	return task, nil
}

// List returns every task matching the filter, newest first
func (r *TaskRepo) List(ctx context.Context, filter models.Filter) ([]*models.Task, error) {
	var conditions []string
	var args []any

	if filter.Status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, string(*filter.Status))
	}
	if filter.Priority != nil {
		conditions = append(conditions, "priority = ?")
		args = append(args, string(*filter.Priority))
	}

	query := `SELECT ` + taskColumns + ` FROM tasks`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id DESC"

	return r.query(ctx, query, args...)
}

// Search returns tasks whose title contains keyword, ignoring case, newest first.
// An empty keyword matches every task.
func (r *TaskRepo) Search(ctx context.Context, keyword string) ([]*models.Task, error) {
	return r.query(ctx,
		`SELECT `+taskColumns+` FROM tasks
		 WHERE instr(`+foldFunc+`(title), `+foldFunc+`(?)) > 0
		 ORDER BY id DESC`,
		keyword,
	)
}

// UpdateStatus sets the status of a task. Unknown IDs are a no-op.
func (r *TaskRepo) UpdateStatus(ctx context.Context, id int, status models.Status) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET status = ? WHERE id = ?`,
		string(status), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update status of task %d: %w", id, err)
	}
	return nil
}

// Edit updates only the supplied, non-empty fields. An empty edit performs
// no write, and unknown IDs are a no-op.
func (r *TaskRepo) Edit(ctx context.Context, id int, edit models.TaskEdit) error {
	var updates []string
	var args []any

	if edit.Title != nil && *edit.Title != "" {
		updates = append(updates, "title = ?")
		args = append(args, *edit.Title)
	}
	if edit.Priority != nil && *edit.Priority != "" {
		updates = append(updates, "priority = ?")
		args = append(args, *edit.Priority)
	}
	if edit.DueDate != nil && *edit.DueDate != "" {
		updates = append(updates, "due_date = ?")
		args = append(args, *edit.DueDate)
	}

	if len(updates) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE tasks SET %s WHERE id = ?", strings.Join(updates, ", "))
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to edit task %d: %w", id, err)
	}
	return nil
}

// Delete removes a task permanently. Unknown IDs are a no-op.
func (r *TaskRepo) Delete(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, err)
	}
	return nil
}

// query runs a multi-row task query and scans every row
func (r *TaskRepo) query(ctx context.Context, query string, args ...any) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []*models.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return tasks, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (*models.Task, error) {
	var (
		task                      models.Task
		priority, dueDate, status sql.NullString
		createdAt                 string
	)

	if err := s.Scan(&task.ID, &task.Title, &priority, &dueDate, &status, &createdAt); err != nil {
		return nil, err
	}

	task.Priority = models.Priority(NullStringToString(priority))
	task.DueDate = NullStringToString(dueDate)
	task.Status = models.Status(NullStringToString(status))
	task.CreatedAt = parseCreatedAt(createdAt)

	return &task, nil
}
