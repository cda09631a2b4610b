package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent:     "#FFFFFF",
		Border:     "#FFFFFF",
		SelectedBg: "#3A3A3A",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		PriorityHigh:   "#FFFFFF",
		PriorityMedium: "#D0D0D0",
		PriorityLow:    "#8A8A8A",

		Overdue:   "#FFFFFF",
		DueSoon:   "#D0D0D0",
		Completed: "#585858",

		InfoFg:    "#FFFFFF",
		WarningFg: "#FFFFFF",
		ErrorFg:   "#FFFFFF",
	}
}
