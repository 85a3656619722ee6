package theme

// NewCatppuccinMocha creates the default Catppuccin Mocha theme.
// Reference: https://github.com/catppuccin/catppuccin
func NewCatppuccinMocha() *Theme {
	return &Theme{
		Name:   "catppuccin-mocha",
		IsDark: true,

		// Semantic colors
		Primary:   "#cba6f7", // Mauve
		Secondary: "#89b4fa", // Blue
		Tertiary:  "#b4befe", // Lavender

		// Background hierarchy
		BgBase:     "#1e1e2e", // Base
		BgSurface0: "#313244", // Surface0
		BgSurface2: "#585b70", // Surface2
		BgOverlay:  "#6c7086", // Overlay0

		// Foreground hierarchy
		FgMuted:  "#a6adc8", // Subtext0
		FgSubtle: "#bac2de", // Subtext1
		FgBase:   "#cdd6f4", // Text

		// Status colors
		Success: "#a6e3a1", // Green
		Warning: "#f9e2af", // Yellow
		Error:   "#f38ba8", // Red
		Info:    "#89dceb", // Sky
	}
}
