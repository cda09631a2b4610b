package models

import (
	"fmt"
	"strings"
	"time"
)

// Priority is the importance level of a task. The store keeps it as free text;
// the shells restrict it to the three values below.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// DefaultPriority is used when a task is created without one
const DefaultPriority = PriorityMedium

// Priorities lists the accepted priorities from lowest to highest
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Rank orders priorities for sorting. Unknown values sort below Low.
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	default:
		return 0
	}
}

// ParsePriority maps a priority string to its canonical form, ignoring case
func ParsePriority(s string) (Priority, error) {
	for _, p := range Priorities {
		if strings.EqualFold(strings.TrimSpace(s), string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("invalid priority '%s' (must be: Low, Medium, High)", s)
}

// Status is the completion state of a task
type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
)

// Statuses lists the accepted statuses
var Statuses = []Status{StatusPending, StatusCompleted}

// Toggle flips Pending and Completed. Anything that is not Completed becomes Completed.
func (s Status) Toggle() Status {
	if s == StatusCompleted {
		return StatusPending
	}
	return StatusCompleted
}

// ParseStatus maps a status string to its canonical form, ignoring case
func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("invalid status '%s' (must be: Pending, Completed)", s)
}

// ============================================================================
// DATE FORMATS
// ============================================================================

// DueDateLayout is the storage and input format of due dates
const DueDateLayout = "2006-01-02"

// CreatedAtLayout is the storage format of creation timestamps (local time)
const CreatedAtLayout = "2006-01-02 15:04:05"

// ParseDueDate parses a YYYY-MM-DD calendar date in the local time zone
func ParseDueDate(s string) (time.Time, error) {
	return time.ParseInLocation(DueDateLayout, strings.TrimSpace(s), time.Local)
}
