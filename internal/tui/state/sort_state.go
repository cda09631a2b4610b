package state

import (
	"cmp"
	"slices"
	"strings"

	"github.com/thenoetrevino/taskr/internal/models"
)

// SortColumn identifies the column the task list is ordered by.
type SortColumn int

const (
	SortByID SortColumn = iota
	SortByTitle
	SortByPriority
	SortByDue
	SortByStatus
)

var sortColumnNames = []string{"ID", "Title", "Priority", "Due", "Status"}

// String returns the column header name.
func (c SortColumn) String() string {
	if c < 0 || int(c) >= len(sortColumnNames) {
		return "ID"
	}
	return sortColumnNames[c]
}

// SortState tracks the active sort column and direction.
// The zero value keeps store order (ID descending).
type SortState struct {
	column    SortColumn
	ascending bool
}

// NewSortState creates a SortState matching the store's default order.
func NewSortState() *SortState {
	return &SortState{column: SortByID}
}

// Column returns the active sort column.
func (s *SortState) Column() SortColumn {
	return s.column
}

// Ascending reports whether the sort direction is ascending.
func (s *SortState) Ascending() bool {
	return s.ascending
}

// CycleColumn moves to the next column and resets to ascending.
func (s *SortState) CycleColumn() {
	s.column = (s.column + 1) % SortColumn(len(sortColumnNames))
	s.ascending = true
}

// ToggleDirection flips ascending and descending.
func (s *SortState) ToggleDirection() {
	s.ascending = !s.ascending
}

// Label returns a header such as "Due ▲".
func (s *SortState) Label() string {
	arrow := "▼"
	if s.ascending {
		arrow = "▲"
	}
	return s.column.String() + " " + arrow
}

// Apply sorts tasks in place. Ties fall back to ID so the order is stable
// across reloads. Due dates compare as strings, which is chronological for
// YYYY-MM-DD.
func (s *SortState) Apply(tasks []*models.Task) {
	slices.SortStableFunc(tasks, func(a, b *models.Task) int {
		c := s.compare(a, b)
		if c == 0 {
			c = cmp.Compare(a.ID, b.ID)
		}
		if !s.ascending {
			c = -c
		}
		return c
	})
}

func (s *SortState) compare(a, b *models.Task) int {
	switch s.column {
	case SortByTitle:
		return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	case SortByPriority:
		return cmp.Compare(a.Priority.Rank(), b.Priority.Rank())
	case SortByDue:
		return strings.Compare(a.DueDate, b.DueDate)
	case SortByStatus:
		return strings.Compare(string(a.Status), string(b.Status))
	default:
		return 0
	}
}
