package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskr/internal/config"
	"github.com/thenoetrevino/taskr/internal/due"
	"github.com/thenoetrevino/taskr/internal/models"
	"github.com/thenoetrevino/taskr/internal/tui/state"
)

// styles holds every lipgloss style the TUI renders with, built once from
// the configured color scheme.
type styles struct {
	colors config.ColorScheme

	Title       lipgloss.Style
	Subtle      lipgloss.Style
	Header      lipgloss.Style
	Cell        lipgloss.Style
	Selected    lipgloss.Style
	Border      lipgloss.Style
	Banner      lipgloss.Style
	Modal       lipgloss.Style
	Help        lipgloss.Style
	SearchLabel lipgloss.Style

	Info    lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

func newStyles(colors config.ColorScheme) styles {
	return styles{
		colors: colors,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.Title)),
		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Subtle)),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.Accent)).
			Padding(0, 1),
		Cell: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Normal)).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(colors.SelectedBg)).
			Padding(0, 1),
		Border: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Border)),
		Banner: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colors.WarningFg)).
			Padding(0, 1),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colors.Accent)).
			Padding(1, 2),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Subtle)),
		SearchLabel: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.Accent)),

		Info: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.InfoFg)),
		Warning: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.WarningFg)),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.ErrorFg)),
	}
}

// rowStyle combines urgency (foreground of the due cell and row tint) with
// the priority tier (priority cell color, bold for High). Completed tasks are
// dimmed and never flagged as urgent.
func (s styles) rowStyle(t *models.Task, col int, urgency due.Urgency, selected bool) lipgloss.Style {
	style := s.Cell
	if selected {
		style = s.Selected.Foreground(lipgloss.Color(s.colors.Normal))
	}

	if t.IsCompleted() {
		return style.Foreground(lipgloss.Color(s.colors.Completed)).Strikethrough(col == colTitle)
	}

	switch urgency {
	case due.Overdue:
		style = style.Foreground(lipgloss.Color(s.colors.Overdue))
	case due.DueSoon:
		style = style.Foreground(lipgloss.Color(s.colors.DueSoon))
	}

	if col == colPriority {
		style = style.Foreground(lipgloss.Color(s.priorityColor(t.Priority)))
	}
	if due.PriorityTier(t.Priority) == due.TierHigh {
		style = style.Bold(true)
	}
	return style
}

func (s styles) priorityColor(p models.Priority) string {
	switch due.PriorityTier(p) {
	case due.TierHigh:
		return s.colors.PriorityHigh
	case due.TierMedium:
		return s.colors.PriorityMedium
	case due.TierLow:
		return s.colors.PriorityLow
	default:
		return s.colors.Normal
	}
}

func (s styles) notification(n state.Notification) string {
	switch n.Level {
	case state.LevelError:
		return s.Error.Render("✗ " + n.Message)
	case state.LevelWarning:
		return s.Warning.Render("⚠ " + n.Message)
	default:
		return s.Info.Render("✓ " + n.Message)
	}
}
