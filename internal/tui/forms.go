package tui

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	taskservice "github.com/thenoetrevino/taskr/internal/services/task"
	"github.com/thenoetrevino/taskr/internal/tui/huhforms"
	"github.com/thenoetrevino/taskr/internal/tui/state"
)

// ============================================================================
// TASK FORM HANDLERS
// ============================================================================

// handleAddTask opens an empty form with the configured default priority.
func (m Model) handleAddTask() (tea.Model, tea.Cmd) {
	m.formValues = &huhforms.TaskFormValues{
		Priority: string(m.config.Priority()),
	}
	m.uiState.SetEditingTaskID(0)
	return m.openTaskForm(false)
}

// handleEditTask opens the form prefilled from the highlighted task.
func (m Model) handleEditTask() (tea.Model, tea.Cmd) {
	task := m.getCurrentTask()
	if task == nil {
		return m, nil
	}

	priority := task.Priority
	if priority.Rank() == 0 {
		priority = m.config.Priority()
	}
	m.formValues = &huhforms.TaskFormValues{
		Title:    task.Title,
		Priority: string(priority),
		DueDate:  task.DueDate,
	}
	m.uiState.SetEditingTaskID(task.ID)
	return m.openTaskForm(true)
}

func (m Model) openTaskForm(isEdit bool) (tea.Model, tea.Cmd) {
	m.taskForm = huhforms.CreateTaskForm(m.formValues, isEdit).
		WithTheme(huhforms.CreateTaskrTheme(m.config.ColorScheme))
	if w := m.uiState.Width(); w > 0 {
		m.taskForm = m.taskForm.WithWidth(formWidth(w))
	}
	m.uiState.SetMode(state.TaskFormMode)
	return m, m.taskForm.Init()
}

// updateTaskForm forwards msg to the form and handles completion.
// esc discards the form without saving.
func (m Model) updateTaskForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && keyMsg.String() == "esc" {
		m.closeTaskForm()
		return m, nil
	}

	model, cmd := m.taskForm.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		m.taskForm = form
	}

	switch m.taskForm.State {
	case huh.StateCompleted:
		m.saveTaskForm()
		m.closeTaskForm()
		return m, nil
	case huh.StateAborted:
		m.closeTaskForm()
		return m, nil
	}
	return m, cmd
}

// saveTaskForm creates or edits a task from the submitted values.
// A "No" on the confirmation discards them.
func (m *Model) saveTaskForm() {
	values := m.formValues
	if values == nil || !values.Confirm {
		m.notificationState.Add(state.LevelInfo, "Changes discarded")
		return
	}

	if id := m.uiState.EditingTaskID(); id != 0 {
		err := m.svc.EditTask(m.ctx, taskservice.UpdateTaskRequest{
			TaskID:   id,
			Title:    &values.Title,
			Priority: &values.Priority,
			DueDate:  &values.DueDate,
		})
		if err != nil {
			m.reportSaveError("updating", err)
			return
		}
		m.reload()
		m.selectTask(id)
		m.notificationState.Add(state.LevelInfo, fmt.Sprintf("Task %d updated", id))
		return
	}

	task, err := m.svc.CreateTask(m.ctx, taskservice.CreateTaskRequest{
		Title:    values.Title,
		Priority: values.Priority,
		DueDate:  values.DueDate,
	})
	if err != nil {
		m.reportSaveError("creating", err)
		return
	}
	m.reload()
	m.selectTask(task.ID)
	m.uiState.EnsureVisible(m.visibleRows())
	m.notificationState.Add(state.LevelInfo, fmt.Sprintf("Task added (ID: %d)", task.ID))
}

func (m *Model) reportSaveError(action string, err error) {
	if taskservice.IsValidationError(err) {
		m.notificationState.Add(state.LevelError, err.Error())
		return
	}
	slog.Error("Error "+action+" task", "error", err)
	m.notificationState.Add(state.LevelError, "Error "+action+" task")
}

func (m *Model) closeTaskForm() {
	m.taskForm = nil
	m.formValues = nil
	m.uiState.SetEditingTaskID(0)
	m.uiState.SetMode(state.NormalMode)
}

// formView returns the form's rendered content. Depending on the huh release
// View yields either a string or a tea.View.
func formView(form *huh.Form) string {
	switch v := any(form.View()).(type) {
	case string:
		return v
	case tea.View:
		return v.Content
	default:
		return ""
	}
}

func formWidth(termWidth int) int {
	return min(max(termWidth/2, 40), 70)
}
