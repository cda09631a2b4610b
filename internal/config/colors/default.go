package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// UI elements
		Border:     "#5F87D7",
		SelectedBg: "#3A3A3A",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Priority
		PriorityHigh:   "#FF5F5F",
		PriorityMedium: "#FFD700",
		PriorityLow:    "#5FD75F",

		// Urgency
		Overdue:   "#FF0000",
		DueSoon:   "#FFAF00",
		Completed: "#6C6C6C",

		// Notifications
		InfoFg:    "#00AFFF",
		WarningFg: "#FFD700",
		ErrorFg:   "#FF0000",
	}
}
