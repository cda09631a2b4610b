package colors

// Kanagawa Wave palette
var palette = struct {
	sumiInk4, sumiInk6, waveBlue1                   string
	fujiWhite, fujiGray, oniViolet, crystalBlue     string
	springGreen, carpYellow, surimiOrange, peachRed string
	samuraiRed, roninYellow, dragonBlue             string
}{
	sumiInk4:     "#2A2A37",
	sumiInk6:     "#54546D",
	waveBlue1:    "#223249",
	fujiWhite:    "#DCD7BA",
	fujiGray:     "#727169",
	oniViolet:    "#957FB8",
	crystalBlue:  "#7E9CD8",
	springGreen:  "#98BB6C",
	carpYellow:   "#E6C384",
	surimiOrange: "#FFA066",
	peachRed:     "#FF5D62",
	samuraiRed:   "#E82424",
	roninYellow:  "#FF9E3B",
	dragonBlue:   "#658594",
}

// Wave returns the Kanagawa Wave color scheme (dark theme with blue/purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		// Primary accent color
		Accent: palette.oniViolet,

		// UI element colors
		Border:     palette.sumiInk6,
		SelectedBg: palette.waveBlue1,

		// Text colors
		Title:  palette.crystalBlue,
		Subtle: palette.fujiGray,
		Normal: palette.fujiWhite,

		// Priority tiers
		PriorityHigh:   palette.peachRed,
		PriorityMedium: palette.carpYellow,
		PriorityLow:    palette.springGreen,

		// Urgency
		Overdue:   palette.samuraiRed,
		DueSoon:   palette.surimiOrange,
		Completed: palette.sumiInk4,

		// Notification colors
		InfoFg:    palette.dragonBlue,
		WarningFg: palette.roninYellow,
		ErrorFg:   palette.samuraiRed,
	}
}
