package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default navigation mode
	SearchMode                    // Typing a live search query (/)
	TaskFormMode                  // Add or edit form with huh
	DeleteConfirmMode             // Confirming task deletion
	ExportMode                    // Typing the CSV export path
	HelpMode                      // Displaying help screen
)

// UIState manages the user interface state.
// This includes the row selection, terminal dimensions, and the current interaction mode.
type UIState struct {
	// selectedTask is the index of the highlighted row in the visible list
	selectedTask int

	// scrollOffset is the index of the first visible row
	scrollOffset int

	width  int
	height int

	mode Mode

	// editingTaskID is the task the open form edits, 0 when adding
	editingTaskID int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

// SelectedTask returns the index of the highlighted row.
func (s *UIState) SelectedTask() int {
	return s.selectedTask
}

// SetSelectedTask updates the highlighted row index.
func (s *UIState) SetSelectedTask(index int) {
	s.selectedTask = index
}

// MoveSelection moves the highlight by delta, staying within [0, count).
func (s *UIState) MoveSelection(delta, count int) {
	s.selectedTask = clamp(s.selectedTask+delta, count)
}

// ClampSelection keeps the highlight inside a list that may have shrunk.
func (s *UIState) ClampSelection(count int) {
	s.selectedTask = clamp(s.selectedTask, count)
}

// ScrollOffset returns the index of the first visible row.
func (s *UIState) ScrollOffset() int {
	return s.scrollOffset
}

// EnsureVisible scrolls so the selected row is inside a window of visibleRows.
func (s *UIState) EnsureVisible(visibleRows int) {
	if visibleRows <= 0 {
		s.scrollOffset = 0
		return
	}
	if s.selectedTask < s.scrollOffset {
		s.scrollOffset = s.selectedTask
	}
	if s.selectedTask >= s.scrollOffset+visibleRows {
		s.scrollOffset = s.selectedTask - visibleRows + 1
	}
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// EditingTaskID returns the task being edited, or 0 for a new task.
func (s *UIState) EditingTaskID() int {
	return s.editingTaskID
}

// SetEditingTaskID records which task the form edits.
func (s *UIState) SetEditingTaskID(id int) {
	s.editingTaskID = id
}

func clamp(index, count int) int {
	if count <= 0 || index < 0 {
		return 0
	}
	if index >= count {
		return count - 1
	}
	return index
}
