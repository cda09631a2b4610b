package task

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/thenoetrevino/taskr/internal/database"
	"github.com/thenoetrevino/taskr/internal/due"
	"github.com/thenoetrevino/taskr/internal/export"
	"github.com/thenoetrevino/taskr/internal/models"
)

const maxTitleLength = 255

// Service defines all task-related business operations
type Service interface {
	// Read operations
	GetTask(ctx context.Context, taskID int) (*models.Task, error)
	ListTasks(ctx context.Context, filter models.Filter) ([]*models.Task, error)
	SearchTasks(ctx context.Context, keyword string) ([]*models.Task, error)
	Reminders(ctx context.Context, now time.Time) (due.Reminders, error)

	// Write operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	UpdateStatus(ctx context.Context, taskID int, status string) error
	ToggleStatus(ctx context.Context, taskID int) error
	EditTask(ctx context.Context, req UpdateTaskRequest) error
	DeleteTask(ctx context.Context, taskID int) error

	// Export
	ExportCSV(ctx context.Context, w io.Writer) (int, error)
	ExportCSVFile(ctx context.Context, path string) (int, error)
}

// CreateTaskRequest encapsulates all data needed to create a task
type CreateTaskRequest struct {
	Title    string
	Priority string // Optional: empty means Medium
	DueDate  string // YYYY-MM-DD
}

// UpdateTaskRequest encapsulates a partial edit.
// Nil or blank fields are left unchanged.
type UpdateTaskRequest struct {
	TaskID   int
	Title    *string
	Priority *string
	DueDate  *string
}

// service implements Service interface
type service struct {
	repo   database.DataStore
	logger *slog.Logger
}

// NewService creates a new task service. A nil logger means slog.Default().
func NewService(repo database.DataStore, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{repo: repo, logger: logger}
}

// CreateTask validates the request and stores a new Pending task
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	title, err := ValidateTitle(req.Title)
	if err != nil {
		return nil, err
	}
	dueDate, err := ValidateDueDate(req.DueDate)
	if err != nil {
		return nil, err
	}
	priority := models.DefaultPriority
	if strings.TrimSpace(req.Priority) != "" {
		if priority, err = ValidatePriority(req.Priority); err != nil {
			return nil, err
		}
	}

	task, err := s.repo.CreateTask(ctx, title, string(priority), dueDate)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Debug("task created", "id", task.ID)
	return task, nil
}

// GetTask returns a single task or models.ErrTaskNotFound.
// IDs below 1 can never exist and are rejected as input errors.
func (s *service) GetTask(ctx context.Context, taskID int) (*models.Task, error) {
	if taskID <= 0 {
		return nil, ErrInvalidTaskID
	}
	return s.repo.GetTask(ctx, taskID)
}

// ListTasks returns tasks matching the filter, newest first
func (s *service) ListTasks(ctx context.Context, filter models.Filter) ([]*models.Task, error) {
	tasks, err := s.repo.ListTasks(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// SearchTasks returns tasks whose title contains keyword, ignoring case
func (s *service) SearchTasks(ctx context.Context, keyword string) ([]*models.Task, error) {
	tasks, err := s.repo.SearchTasks(ctx, strings.TrimSpace(keyword))
	if err != nil {
		return nil, fmt.Errorf("failed to search tasks: %w", err)
	}
	return tasks, nil
}

// UpdateStatus sets a task's status. Unknown IDs are a silent no-op.
func (s *service) UpdateStatus(ctx context.Context, taskID int, status string) error {
	st, err := models.ParseStatus(status)
	if err != nil {
		return ErrInvalidStatus
	}

	if err := s.repo.UpdateTaskStatus(ctx, taskID, st); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	return nil
}

// ToggleStatus flips a task between Pending and Completed.
// Unknown IDs are a silent no-op.
func (s *service) ToggleStatus(ctx context.Context, taskID int) error {
	task, err := s.repo.GetTask(ctx, taskID)
	if errors.Is(err, models.ErrTaskNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.repo.UpdateTaskStatus(ctx, taskID, task.Status.Toggle()); err != nil {
		return fmt.Errorf("failed to toggle status: %w", err)
	}
	return nil
}

// EditTask applies a partial update. Supplied fields are validated like
// CreateTask; blank fields are skipped. Unknown IDs are a silent no-op.
func (s *service) EditTask(ctx context.Context, req UpdateTaskRequest) error {
	var edit models.TaskEdit

	if v := trimmed(req.Title); v != "" {
		title, err := ValidateTitle(v)
		if err != nil {
			return err
		}
		edit.Title = &title
	}
	if v := trimmed(req.Priority); v != "" {
		priority, err := ValidatePriority(v)
		if err != nil {
			return err
		}
		p := string(priority)
		edit.Priority = &p
	}
	if v := trimmed(req.DueDate); v != "" {
		dueDate, err := ValidateDueDate(v)
		if err != nil {
			return err
		}
		edit.DueDate = &dueDate
	}

	if edit.IsEmpty() {
		return nil
	}

	if err := s.repo.EditTask(ctx, req.TaskID, edit); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}

// DeleteTask removes a task permanently. Unknown IDs are a silent no-op.
func (s *service) DeleteTask(ctx context.Context, taskID int) error {
	if err := s.repo.DeleteTask(ctx, taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	s.logger.Debug("task deleted", "id", taskID)
	return nil
}

// Reminders returns pending tasks that are overdue or due today
func (s *service) Reminders(ctx context.Context, now time.Time) (due.Reminders, error) {
	tasks, err := s.repo.ListTasks(ctx, models.Filter{})
	if err != nil {
		return due.Reminders{}, fmt.Errorf("failed to load reminders: %w", err)
	}
	return due.Collect(tasks, now), nil
}

// ExportCSV writes every task, in store order, and returns the task count
func (s *service) ExportCSV(ctx context.Context, w io.Writer) (int, error) {
	tasks, err := s.repo.ListTasks(ctx, models.Filter{})
	if err != nil {
		return 0, fmt.Errorf("failed to load tasks for export: %w", err)
	}
	if err := export.WriteCSV(w, tasks); err != nil {
		return 0, err
	}
	return len(tasks), nil
}

// ExportCSVFile writes every task to the file at path
func (s *service) ExportCSVFile(ctx context.Context, path string) (int, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return 0, ErrEmptyExportPath
	}

	tasks, err := s.repo.ListTasks(ctx, models.Filter{})
	if err != nil {
		return 0, fmt.Errorf("failed to load tasks for export: %w", err)
	}
	if err := export.WriteCSVFile(path, tasks); err != nil {
		return 0, err
	}

	s.logger.Info("tasks exported", "path", path, "count", len(tasks))
	return len(tasks), nil
}

// ============================================================================
// VALIDATION
// ============================================================================

// ValidateTitle trims the title and checks it is present and not too long
func ValidateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return "", ErrTitleTooLong
	}
	return title, nil
}

// ValidateDueDate trims the date and checks it is a real YYYY-MM-DD calendar date
func ValidateDueDate(dueDate string) (string, error) {
	dueDate = strings.TrimSpace(dueDate)
	if dueDate == "" {
		return "", ErrEmptyDueDate
	}
	if _, err := models.ParseDueDate(dueDate); err != nil {
		return "", ErrInvalidDueDate
	}
	return dueDate, nil
}

// ValidatePriority returns the canonical priority, ignoring case
func ValidatePriority(priority string) (models.Priority, error) {
	p, err := models.ParsePriority(priority)
	if err != nil {
		return "", ErrInvalidPriority
	}
	return p, nil
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
