package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskr/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.uiState.SetWidth(size.Width)
		m.uiState.SetHeight(size.Height)
		m.uiState.EnsureVisible(m.visibleRows())
		if m.taskForm != nil {
			m.taskForm = m.taskForm.WithWidth(formWidth(size.Width))
		}
		return m, nil
	}

	// The form receives every message, not just keys, so its cursor and
	// validation commands keep running.
	if m.uiState.Mode() == state.TaskFormMode {
		return m.updateTaskForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// The reminder banner behaves like a dialog: the first key dismisses it.
	if m.showReminders {
		m.showReminders = false
		return m, nil
	}

	switch m.uiState.Mode() {
	case state.SearchMode:
		return m.handleSearchMode(keyMsg)
	case state.DeleteConfirmMode:
		return m.handleDeleteConfirm(keyMsg)
	case state.ExportMode:
		return m.handleExportMode(keyMsg)
	case state.HelpMode:
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	default:
		return m.handleNormalMode(keyMsg)
	}
}
