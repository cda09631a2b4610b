package config

// KeyMappings defines all configurable TUI key bindings
type KeyMappings struct {
	// Tasks
	AddTask      string `yaml:"add_task"`
	EditTask     string `yaml:"edit_task"`
	DeleteTask   string `yaml:"delete_task"`
	ToggleStatus string `yaml:"toggle_status"`
	ExportCSV    string `yaml:"export_csv"`

	// Filtering and sorting
	Search              string `yaml:"search"`
	CycleStatusFilter   string `yaml:"cycle_status_filter"`
	CyclePriorityFilter string `yaml:"cycle_priority_filter"`
	ClearFilters        string `yaml:"clear_filters"`
	CycleSortColumn     string `yaml:"cycle_sort_column"`
	ToggleSortDirection string `yaml:"toggle_sort_direction"`

	// Navigation
	PrevTask string `yaml:"prev_task"`
	NextTask string `yaml:"next_task"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Tasks
		AddTask:      "a",
		EditTask:     "e",
		DeleteTask:   "d",
		ToggleStatus: " ",
		ExportCSV:    "E",

		// Filtering and sorting
		Search:              "/",
		CycleStatusFilter:   "s",
		CyclePriorityFilter: "p",
		ClearFilters:        "c",
		CycleSortColumn:     "o",
		ToggleSortDirection: "O",

		// Navigation
		PrevTask: "k",
		NextTask: "j",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddTask == "" {
		k.AddTask = defaults.AddTask
	}
	if k.EditTask == "" {
		k.EditTask = defaults.EditTask
	}
	if k.DeleteTask == "" {
		k.DeleteTask = defaults.DeleteTask
	}
	if k.ToggleStatus == "" {
		k.ToggleStatus = defaults.ToggleStatus
	}
	if k.ExportCSV == "" {
		k.ExportCSV = defaults.ExportCSV
	}
	if k.Search == "" {
		k.Search = defaults.Search
	}
	if k.CycleStatusFilter == "" {
		k.CycleStatusFilter = defaults.CycleStatusFilter
	}
	if k.CyclePriorityFilter == "" {
		k.CyclePriorityFilter = defaults.CyclePriorityFilter
	}
	if k.ClearFilters == "" {
		k.ClearFilters = defaults.ClearFilters
	}
	if k.CycleSortColumn == "" {
		k.CycleSortColumn = defaults.CycleSortColumn
	}
	if k.ToggleSortDirection == "" {
		k.ToggleSortDirection = defaults.ToggleSortDirection
	}
	if k.PrevTask == "" {
		k.PrevTask = defaults.PrevTask
	}
	if k.NextTask == "" {
		k.NextTask = defaults.NextTask
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
