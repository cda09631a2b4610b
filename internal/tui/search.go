package tui

import (
	"errors"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	taskservice "github.com/thenoetrevino/taskr/internal/services/task"
	"github.com/thenoetrevino/taskr/internal/tui/state"
)

// ============================================================================
// SEARCH MODE HANDLERS
// ============================================================================

// handleEnterSearch opens the search box, prefilled with the active query.
func (m Model) handleEnterSearch() (tea.Model, tea.Cmd) {
	m.searchInput.SetValue(m.searchState.Query)
	m.searchInput.CursorEnd()
	cmd := m.searchInput.Focus()
	m.uiState.SetMode(state.SearchMode)
	return m, cmd
}

// handleSearchMode feeds keys to the search box and re-runs the search on
// every change, so the list narrows while typing.
func (m Model) handleSearchMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchInput.Blur()
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	case "esc":
		m.searchInput.Blur()
		m.searchInput.Reset()
		m.uiState.SetMode(state.NormalMode)
		if m.searchState.IsActive() {
			m.searchState.Clear()
			m.reload()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchState.Set(m.searchInput.Value()) {
		m.reload()
		m.uiState.SetSelectedTask(0)
		m.uiState.EnsureVisible(m.visibleRows())
	}
	return m, cmd
}

// ============================================================================
// EXPORT MODE HANDLERS
// ============================================================================

// handleEnterExport opens the export path prompt.
func (m Model) handleEnterExport() (tea.Model, tea.Cmd) {
	m.exportInput.Reset()
	cmd := m.exportInput.Focus()
	m.uiState.SetMode(state.ExportMode)
	return m, cmd
}

// handleExportMode collects the path and writes every task to it on enter.
// An empty path keeps the prompt open.
func (m Model) handleExportMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.exportInput.Blur()
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	case "enter":
		path := m.exportInput.Value()
		count, err := m.svc.ExportCSVFile(m.ctx, path)
		if errors.Is(err, taskservice.ErrEmptyExportPath) {
			m.notificationState.Clear()
			m.notificationState.Add(state.LevelWarning, "Enter a file path")
			return m, nil
		}
		m.exportInput.Blur()
		m.uiState.SetMode(state.NormalMode)
		if err != nil {
			slog.Error("Error exporting tasks", "path", path, "error", err)
			m.notificationState.Add(state.LevelError, "Export failed: "+err.Error())
			return m, nil
		}
		m.notificationState.Add(state.LevelInfo, fmt.Sprintf("Exported %d tasks to %s", count, path))
		return m, nil
	}

	var cmd tea.Cmd
	m.exportInput, cmd = m.exportInput.Update(msg)
	return m, cmd
}
