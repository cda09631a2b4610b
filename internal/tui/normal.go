package tui

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskr/internal/tui/state"
)

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

// handleNormalMode dispatches a key press against the configured key mappings.
func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.config.KeyMappings
	m.notificationState.Clear()

	switch {
	case matches(msg, km.Quit):
		return m, tea.Quit
	case matches(msg, km.PrevTask), msg.String() == "up":
		m.moveSelection(-1)
	case matches(msg, km.NextTask), msg.String() == "down":
		m.moveSelection(1)
	case msg.String() == "home":
		m.uiState.SetSelectedTask(0)
		m.uiState.EnsureVisible(m.visibleRows())
	case msg.String() == "end":
		m.uiState.SetSelectedTask(len(m.tasks) - 1)
		m.uiState.ClampSelection(len(m.tasks))
		m.uiState.EnsureVisible(m.visibleRows())
	case matches(msg, km.AddTask):
		return m.handleAddTask()
	case matches(msg, km.EditTask):
		return m.handleEditTask()
	case matches(msg, km.ToggleStatus):
		m.handleToggleStatus()
	case matches(msg, km.DeleteTask):
		if m.getCurrentTask() != nil {
			m.uiState.SetMode(state.DeleteConfirmMode)
		}
	case matches(msg, km.ExportCSV):
		return m.handleEnterExport()
	case matches(msg, km.Search):
		return m.handleEnterSearch()
	case matches(msg, km.CycleStatusFilter):
		m.filterState.CycleStatus()
		m.reload()
	case matches(msg, km.CyclePriorityFilter):
		m.filterState.CyclePriority()
		m.reload()
	case matches(msg, km.ClearFilters):
		m.filterState.Clear()
		m.searchState.Clear()
		m.reload()
	case matches(msg, km.CycleSortColumn):
		m.sortState.CycleColumn()
		m.sortState.Apply(m.tasks)
	case matches(msg, km.ToggleSortDirection):
		m.sortState.ToggleDirection()
		m.sortState.Apply(m.tasks)
	case matches(msg, km.ShowHelp):
		m.uiState.SetMode(state.HelpMode)
	case msg.String() == "esc":
		if m.searchState.IsActive() {
			m.searchState.Clear()
			m.reload()
		}
	}
	return m, nil
}

func (m *Model) moveSelection(delta int) {
	m.uiState.MoveSelection(delta, len(m.tasks))
	m.uiState.EnsureVisible(m.visibleRows())
}

// handleToggleStatus flips the highlighted task between Pending and Completed
// and keeps the highlight on it when it is still visible.
func (m *Model) handleToggleStatus() {
	task := m.getCurrentTask()
	if task == nil {
		return
	}

	if err := m.svc.ToggleStatus(m.ctx, task.ID); err != nil {
		slog.Error("Error toggling task", "id", task.ID, "error", err)
		m.notificationState.Add(state.LevelError, "Error updating task")
		return
	}

	m.reload()
	m.selectTask(task.ID)
	m.notificationState.Add(state.LevelInfo, fmt.Sprintf("Task %d marked %s", task.ID, task.Status.Toggle()))
}

// ============================================================================
// DELETE CONFIRMATION
// ============================================================================

// handleDeleteConfirm waits for y or n. Any other key keeps the dialog open.
func (m Model) handleDeleteConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.uiState.SetMode(state.NormalMode)
		task := m.getCurrentTask()
		if task == nil {
			return m, nil
		}
		if err := m.svc.DeleteTask(m.ctx, task.ID); err != nil {
			slog.Error("Error deleting task", "id", task.ID, "error", err)
			m.notificationState.Add(state.LevelError, "Error deleting task")
			return m, nil
		}
		m.reload()
		m.notificationState.Add(state.LevelInfo, fmt.Sprintf("Task %d deleted", task.ID))
	case "n", "N", "esc":
		m.uiState.SetMode(state.NormalMode)
	}
	return m, nil
}
