package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskr/internal/config"
)

// matches reports whether msg is the configured binding.
// A binding of " " is written as a literal space in YAML but reported as "space".
func matches(msg tea.KeyPressMsg, binding string) bool {
	if binding == "" {
		return false
	}
	if binding == " " {
		binding = "space"
	}
	return msg.String() == binding
}

// keyLabel renders a binding for the help screen
func keyLabel(binding string) string {
	if binding == " " {
		return "space"
	}
	return binding
}

// helpEntries lists every normal-mode binding with its description
func helpEntries(km config.KeyMappings) [][2]string {
	return [][2]string{
		{keyLabel(km.PrevTask) + "/↑", "previous task"},
		{keyLabel(km.NextTask) + "/↓", "next task"},
		{keyLabel(km.AddTask), "add task"},
		{keyLabel(km.EditTask), "edit task"},
		{keyLabel(km.ToggleStatus), "toggle complete"},
		{keyLabel(km.DeleteTask), "delete task"},
		{keyLabel(km.Search), "search titles"},
		{keyLabel(km.CycleStatusFilter), "cycle status filter"},
		{keyLabel(km.CyclePriorityFilter), "cycle priority filter"},
		{keyLabel(km.ClearFilters), "clear filters and search"},
		{keyLabel(km.CycleSortColumn), "cycle sort column"},
		{keyLabel(km.ToggleSortDirection), "reverse sort"},
		{keyLabel(km.ExportCSV), "export to CSV"},
		{keyLabel(km.ShowHelp), "toggle help"},
		{keyLabel(km.Quit), "quit"},
	}
}

// shortHelp is the one-line hint shown under the table
func shortHelp(km config.KeyMappings) string {
	parts := []string{
		fmt.Sprintf("%s add", keyLabel(km.AddTask)),
		fmt.Sprintf("%s edit", keyLabel(km.EditTask)),
		fmt.Sprintf("%s toggle", keyLabel(km.ToggleStatus)),
		fmt.Sprintf("%s delete", keyLabel(km.DeleteTask)),
		fmt.Sprintf("%s search", keyLabel(km.Search)),
		fmt.Sprintf("%s help", keyLabel(km.ShowHelp)),
		fmt.Sprintf("%s quit", keyLabel(km.Quit)),
	}
	return strings.Join(parts, " • ")
}
