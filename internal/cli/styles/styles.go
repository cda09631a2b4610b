package styles

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskr/internal/config"
	"github.com/thenoetrevino/taskr/internal/due"
	"github.com/thenoetrevino/taskr/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 60

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Priority:", "Due:"
	ValueStyle    lipgloss.Style // For field values

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style

	scheme config.ColorScheme
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	scheme = colors

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.InfoFg))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg))

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.WarningFg))
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// BoldColoredText renders bold text with a hex color
func BoldColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// PriorityColor returns the theme color for a priority tier
func PriorityColor(colors config.ColorScheme, p models.Priority) string {
	switch due.PriorityTier(p) {
	case due.TierHigh:
		return colors.PriorityHigh
	case due.TierMedium:
		return colors.PriorityMedium
	case due.TierLow:
		return colors.PriorityLow
	default:
		return colors.Normal
	}
}

// UrgencyColor returns the theme color for an urgency, or "" for none
func UrgencyColor(colors config.ColorScheme, u due.Urgency) string {
	switch u {
	case due.Overdue:
		return colors.Overdue
	case due.DueSoon:
		return colors.DueSoon
	default:
		return ""
	}
}

// RenderPriority renders a priority in its tier color
func RenderPriority(p models.Priority) string {
	return BoldColoredText(string(p), PriorityColor(scheme, p))
}

// RenderStatus renders a status, dimming completed tasks
func RenderStatus(s models.Status) string {
	if s == models.StatusCompleted {
		return ColoredText(string(s), scheme.Completed)
	}
	return ValueStyle.Render(string(s))
}

// RenderDue renders a due date with its urgency, e.g. "2025-01-01 (overdue)"
func RenderDue(dueDate string, u due.Urgency) string {
	text := dueDate
	if text == "" {
		text = "-"
	}
	color := UrgencyColor(scheme, u)
	if color == "" {
		return ValueStyle.Render(text)
	}
	return BoldColoredText(text+" ("+u.String()+")", color)
}

// Field renders a "Label: value" line
func Field(label, value string) string {
	return LabelStyle.Render(label+":") + " " + value
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}
