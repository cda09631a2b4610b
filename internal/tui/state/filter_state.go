package state

import "github.com/thenoetrevino/taskr/internal/models"

// FilterState holds the status and priority filters applied to the task list.
// A nil field means "All".
type FilterState struct {
	status   *models.Status
	priority *models.Priority
}

// NewFilterState creates a FilterState that shows every task.
func NewFilterState() *FilterState {
	return &FilterState{}
}

// CycleStatus steps All -> Pending -> Completed -> All.
func (s *FilterState) CycleStatus() {
	s.status = cycle(models.Statuses, s.status)
}

// CyclePriority steps All -> Low -> Medium -> High -> All.
func (s *FilterState) CyclePriority() {
	s.priority = cycle(models.Priorities, s.priority)
}

// Clear resets both filters to All.
func (s *FilterState) Clear() {
	s.status = nil
	s.priority = nil
}

// Filter returns the store filter for the current selection.
func (s *FilterState) Filter() models.Filter {
	return models.Filter{Status: s.status, Priority: s.priority}
}

// IsActive reports whether any filter is narrowing the list.
func (s *FilterState) IsActive() bool {
	return s.status != nil || s.priority != nil
}

// StatusLabel returns the status filter name for display.
func (s *FilterState) StatusLabel() string {
	if s.status == nil {
		return "All"
	}
	return string(*s.status)
}

// PriorityLabel returns the priority filter name for display.
func (s *FilterState) PriorityLabel() string {
	if s.priority == nil {
		return "All"
	}
	return string(*s.priority)
}

// cycle returns the value after current in values, or nil after the last one.
func cycle[T comparable](values []T, current *T) *T {
	if current == nil {
		v := values[0]
		return &v
	}
	for i, v := range values {
		if v == *current && i+1 < len(values) {
			next := values[i+1]
			return &next
		}
	}
	return nil
}
