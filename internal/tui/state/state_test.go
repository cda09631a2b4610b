package state

import (
	"testing"

	"github.com/thenoetrevino/taskr/internal/models"
)

// TestMoveSelection_Boundaries ensures the highlight never leaves the list.
// Edge case: Pressing up on the first row or down on the last row.
func TestMoveSelection_Boundaries(t *testing.T) {
	s := NewUIState()

	s.MoveSelection(-1, 3)
	if s.SelectedTask() != 0 {
		t.Errorf("SelectedTask after moving up from 0 = %d, want 0", s.SelectedTask())
	}

	s.MoveSelection(5, 3)
	if s.SelectedTask() != 2 {
		t.Errorf("SelectedTask after moving past end = %d, want 2", s.SelectedTask())
	}
}

// TestClampSelection_EmptyList ensures an empty list resets the highlight.
func TestClampSelection_EmptyList(t *testing.T) {
	s := NewUIState()
	s.SetSelectedTask(4)

	s.ClampSelection(0)

	if s.SelectedTask() != 0 {
		t.Errorf("SelectedTask on empty list = %d, want 0", s.SelectedTask())
	}
}

func TestEnsureVisible_ScrollsWindow(t *testing.T) {
	s := NewUIState()
	s.SetSelectedTask(7)
	s.EnsureVisible(5)
	if s.ScrollOffset() != 3 {
		t.Errorf("ScrollOffset = %d, want 3", s.ScrollOffset())
	}

	s.SetSelectedTask(1)
	s.EnsureVisible(5)
	if s.ScrollOffset() != 1 {
		t.Errorf("ScrollOffset after moving up = %d, want 1", s.ScrollOffset())
	}
}

// TestFilterState_CycleStatus walks the full status cycle back to All.
func TestFilterState_CycleStatus(t *testing.T) {
	s := NewFilterState()
	want := []string{"Pending", "Completed", "All"}

	for _, label := range want {
		s.CycleStatus()
		if got := s.StatusLabel(); got != label {
			t.Errorf("StatusLabel = %q, want %q", got, label)
		}
	}
	if s.IsActive() {
		t.Error("filter should be inactive after a full cycle")
	}
}

func TestFilterState_CyclePriority(t *testing.T) {
	s := NewFilterState()
	want := []string{"Low", "Medium", "High", "All"}

	for _, label := range want {
		s.CyclePriority()
		if got := s.PriorityLabel(); got != label {
			t.Errorf("PriorityLabel = %q, want %q", got, label)
		}
	}
}

func TestFilterState_FilterAndClear(t *testing.T) {
	s := NewFilterState()
	s.CycleStatus()
	s.CyclePriority()
	s.CyclePriority()
	s.CyclePriority()

	f := s.Filter()
	if f.Status == nil || *f.Status != models.StatusPending {
		t.Errorf("Filter().Status = %v, want Pending", f.Status)
	}
	if f.Priority == nil || *f.Priority != models.PriorityHigh {
		t.Errorf("Filter().Priority = %v, want High", f.Priority)
	}

	s.Clear()
	if s.IsActive() {
		t.Error("Clear() should reset both filters")
	}
}

func sortFixture() []*models.Task {
	return []*models.Task{
		{ID: 3, Title: "charlie", Priority: models.PriorityLow, DueDate: "2025-03-01", Status: models.StatusPending},
		{ID: 2, Title: "Alpha", Priority: models.PriorityHigh, DueDate: "2025-01-15", Status: models.StatusCompleted},
		{ID: 1, Title: "bravo", Priority: models.PriorityMedium, DueDate: "2025-02-10", Status: models.StatusPending},
	}
}

func ids(tasks []*models.Task) []int {
	out := make([]int, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// TestSortState_DefaultKeepsStoreOrder ensures the default sort is ID descending.
func TestSortState_DefaultKeepsStoreOrder(t *testing.T) {
	tasks := sortFixture()
	NewSortState().Apply(tasks)

	if got := ids(tasks); !equalInts(got, []int{3, 2, 1}) {
		t.Errorf("default order = %v, want [3 2 1]", got)
	}
}

func TestSortState_Columns(t *testing.T) {
	tests := []struct {
		name   string
		cycles int
		want   []int
	}{
		{"title ascending ignores case", 1, []int{2, 1, 3}},
		{"priority ascending", 2, []int{3, 1, 2}},
		{"due ascending", 3, []int{2, 1, 3}},
		{"status ascending with id tiebreak", 4, []int{2, 1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSortState()
			for range tt.cycles {
				s.CycleColumn()
			}
			tasks := sortFixture()
			s.Apply(tasks)
			if got := ids(tasks); !equalInts(got, tt.want) {
				t.Errorf("%s order = %v, want %v", s.Column(), got, tt.want)
			}
		})
	}
}

func TestSortState_ToggleDirection(t *testing.T) {
	s := NewSortState()
	s.CycleColumn()
	s.CycleColumn()
	s.CycleColumn() // Due
	s.ToggleDirection()

	tasks := sortFixture()
	s.Apply(tasks)

	if got := ids(tasks); !equalInts(got, []int{3, 1, 2}) {
		t.Errorf("due descending = %v, want [3 1 2]", got)
	}
	if s.Label() != "Due ▼" {
		t.Errorf("Label() = %q, want %q", s.Label(), "Due ▼")
	}
}

func TestSortState_CycleWrapsToID(t *testing.T) {
	s := NewSortState()
	for range 5 {
		s.CycleColumn()
	}
	if s.Column() != SortByID {
		t.Errorf("Column after five cycles = %v, want ID", s.Column())
	}
}

func TestSearchState_Set(t *testing.T) {
	s := NewSearchState()
	if !s.Set("  milk ") {
		t.Error("Set with a new query should report a change")
	}
	if s.Query != "milk" {
		t.Errorf("Query = %q, want %q", s.Query, "milk")
	}
	if s.Set("milk") {
		t.Error("Set with the same query should report no change")
	}
}
