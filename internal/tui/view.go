package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/taskr/internal/due"
	"github.com/thenoetrevino/taskr/internal/models"
	"github.com/thenoetrevino/taskr/internal/tui/state"
)

// Table columns
const (
	colID = iota
	colTitle
	colPriority
	colDue
	colStatus
)

var columnHeaders = []string{"ID", "Title", "Priority", "Due", "Status"}

// Lines used by everything except table rows: title, filter bar, blank line,
// table header and borders, status line and help line.
const chromeLines = 9

// View renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.Content = m.render()
	return view
}

func (m Model) render() string {
	width := m.uiState.Width()
	height := m.uiState.Height()
	if width == 0 {
		width = 80
	}

	switch m.uiState.Mode() {
	case state.TaskFormMode:
		if m.taskForm != nil {
			return m.modal(width, height, formView(m.taskForm))
		}
	case state.HelpMode:
		return m.modal(width, height, m.viewHelp())
	case state.DeleteConfirmMode:
		return m.modal(width, height, m.viewDeleteConfirm())
	}

	sections := []string{
		m.viewHeader(),
	}
	if m.showReminders {
		sections = append(sections, m.viewReminders(width))
	}
	sections = append(sections,
		m.viewTable(width),
		m.viewStatusLine(),
		m.styles.Help.Render(shortHelp(m.config.KeyMappings)),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// modal centers content in a bordered box over the whole screen
func (m Model) modal(width, height int, content string) string {
	box := m.styles.Modal.Render(content)
	if height == 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) viewHeader() string {
	title := m.styles.Title.Render("📝 Task Manager")

	parts := []string{
		"Status: " + m.filterState.StatusLabel(),
		"Priority: " + m.filterState.PriorityLabel(),
		"Sort: " + m.sortState.Label(),
		fmt.Sprintf("%d tasks", len(m.tasks)),
	}
	if m.searchState.IsActive() && m.uiState.Mode() != state.SearchMode {
		parts = append(parts, fmt.Sprintf("Search: %q", m.searchState.Query))
	}
	bar := m.styles.Subtle.Render(strings.Join(parts, "  │  "))

	return title + "\n" + bar + "\n"
}

// viewReminders renders the startup banner listing overdue and due-today tasks
func (m Model) viewReminders(width int) string {
	wrap := max(width-6, 20)

	var b strings.Builder
	if len(m.reminders.Overdue) > 0 {
		b.WriteString(m.styles.Error.Render("⚠️ Overdue tasks:"))
		b.WriteString("\n")
		for _, t := range m.reminders.Overdue {
			b.WriteString(wordwrap.String(fmt.Sprintf("  • %s (due %s)", t.Title, t.DueDate), wrap))
			b.WriteString("\n")
		}
	}
	if len(m.reminders.DueToday) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.styles.Warning.Render("📅 Tasks due today:"))
		b.WriteString("\n")
		for _, t := range m.reminders.DueToday {
			b.WriteString(wordwrap.String("  • "+t.Title, wrap))
			b.WriteString("\n")
		}
	}
	b.WriteString(m.styles.Subtle.Render("press any key to dismiss"))

	return m.styles.Banner.Render(b.String())
}

// visibleRows is how many table rows fit on screen
func (m Model) visibleRows() int {
	height := m.uiState.Height()
	if height == 0 {
		return len(m.tasks)
	}
	return max(height-chromeLines, 1)
}

func (m Model) viewTable(width int) string {
	if len(m.tasks) == 0 {
		msg := "No tasks found."
		if m.searchState.IsActive() {
			msg = "No tasks found for this keyword."
		}
		return m.styles.Subtle.Render(msg) + "\n"
	}

	offset := m.uiState.ScrollOffset()
	end := min(offset+m.visibleRows(), len(m.tasks))
	if offset > end {
		offset = 0
	}
	window := m.tasks[offset:end]

	rows := make([][]string, 0, len(window))
	for _, t := range window {
		rows = append(rows, m.taskRow(t))
	}

	headers := make([]string, len(columnHeaders))
	for i, h := range columnHeaders {
		headers[i] = h
		if int(m.sortState.Column()) == i {
			headers[i] = m.sortState.Label()
		}
	}

	selected := m.uiState.SelectedTask() - offset
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(m.styles.Border).
		Headers(headers...).
		Rows(rows...).
		Width(min(width, 120)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return m.styles.Header
			}
			task := window[row]
			return m.styles.rowStyle(task, col, m.urgency(task), row == selected)
		})

	return t.String()
}

func (m Model) taskRow(t *models.Task) []string {
	dueText := t.DueDate
	switch m.urgency(t) {
	case due.Overdue:
		dueText += " (overdue)"
	case due.DueSoon:
		dueText += " (due soon)"
	}
	return []string{
		strconv.Itoa(t.ID),
		t.Title,
		string(t.Priority),
		dueText,
		string(t.Status),
	}
}

// viewStatusLine shows the active prompt, or the latest notifications
func (m Model) viewStatusLine() string {
	switch m.uiState.Mode() {
	case state.SearchMode:
		return m.styles.SearchLabel.Render("/ ") + m.searchInput.View()
	case state.ExportMode:
		line := m.styles.SearchLabel.Render("Export CSV to: ") + m.exportInput.View()
		if m.notificationState.HasAny() {
			line += "  " + m.renderNotifications()
		}
		return line
	}
	return m.renderNotifications()
}

func (m Model) renderNotifications() string {
	all := m.notificationState.All()
	rendered := make([]string, 0, len(all))
	for _, n := range all {
		rendered = append(rendered, m.styles.notification(n))
	}
	return strings.Join(rendered, "  ")
}

func (m Model) viewDeleteConfirm() string {
	task := m.getCurrentTask()
	if task == nil {
		return ""
	}
	return fmt.Sprintf("%s\n\n%s\n\n%s",
		m.styles.Warning.Render("Delete task?"),
		fmt.Sprintf("[%d] %s", task.ID, task.Title),
		m.styles.Help.Render("y confirm • n cancel"),
	)
}

func (m Model) viewHelp() string {
	entries := helpEntries(m.config.KeyMappings)

	keyWidth := 0
	for _, e := range entries {
		keyWidth = max(keyWidth, lipgloss.Width(e[0]))
	}

	lines := []string{m.styles.Title.Render("Keyboard Shortcuts"), ""}
	for _, e := range entries {
		key := m.styles.SearchLabel.Render(fmt.Sprintf("%-*s", keyWidth, e[0]))
		lines = append(lines, key+"  "+e[1])
	}
	lines = append(lines, "", m.styles.Help.Render("press any key to close"))
	return strings.Join(lines, "\n")
}
