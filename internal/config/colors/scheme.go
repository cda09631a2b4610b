package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "wave")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// UI element colors
	Border     string `yaml:"border"`
	SelectedBg string `yaml:"selected_bg"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Priority tiers
	PriorityHigh   string `yaml:"priority_high"`
	PriorityMedium string `yaml:"priority_medium"`
	PriorityLow    string `yaml:"priority_low"`

	// Due-date urgency and completion
	Overdue   string `yaml:"overdue"`
	DueSoon   string `yaml:"due_soon"`
	Completed string `yaml:"completed"`

	// Notification colors
	InfoFg    string `yaml:"info_fg"`
	WarningFg string `yaml:"warning_fg"`
	ErrorFg   string `yaml:"error_fg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "wave":
		return Wave()
	default:
		return Default()
	}
}

// fields returns pointers to every color value, for merge and default passes
func (c *ColorScheme) fields() []*string {
	return []*string{
		&c.Accent, &c.Border, &c.SelectedBg,
		&c.Title, &c.Subtle, &c.Normal,
		&c.PriorityHigh, &c.PriorityMedium, &c.PriorityLow,
		&c.Overdue, &c.DueSoon, &c.Completed,
		&c.InfoFg, &c.WarningFg, &c.ErrorFg,
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	base := preset.fields()
	for i, f := range c.fields() {
		if *f == "" {
			*f = *base[i]
		}
	}
}

// MergeFrom overrides values in c with every non-empty value in other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	src := other.fields()
	for i, f := range c.fields() {
		if *src[i] != "" {
			*f = *src[i]
		}
	}
}
