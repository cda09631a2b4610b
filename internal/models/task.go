package models

import "time"

// Task represents a single tracked task
type Task struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Priority  Priority  `json:"priority"`
	DueDate   string    `json:"due_date"` // YYYY-MM-DD
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// GetID returns the task ID (used by quiet output mode)
func (t *Task) GetID() int {
	return t.ID
}

// IsCompleted reports whether the task has been marked done
func (t *Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// Filter narrows a task listing. Nil fields are unconstrained.
type Filter struct {
	Status   *Status
	Priority *Priority
}

// Matches reports whether t satisfies every set field of the filter
func (f Filter) Matches(t *Task) bool {
	if f.Status != nil && t.Status != *f.Status {
		return false
	}
	if f.Priority != nil && t.Priority != *f.Priority {
		return false
	}
	return true
}

// TaskEdit carries a partial update. Nil or empty fields are left untouched.
type TaskEdit struct {
	Title    *string
	Priority *string
	DueDate  *string
}

// IsEmpty reports whether the edit would change nothing
func (e TaskEdit) IsEmpty() bool {
	return isBlank(e.Title) && isBlank(e.Priority) && isBlank(e.DueDate)
}

func isBlank(s *string) bool {
	return s == nil || *s == ""
}
