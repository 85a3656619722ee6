package theme

import "charm.land/lipgloss/v2"

// Styles contains the pre-built lipgloss styles for the TUI.
type Styles struct {
	Title   lipgloss.Style // modal and section titles
	Label   lipgloss.Style // form field labels
	Value   lipgloss.Style // emphasized values
	Success lipgloss.Style
	Error   lipgloss.Style

	// Hint bar
	HintKey       lipgloss.Style
	HintDesc      lipgloss.Style
	HintSeparator lipgloss.Style

	// Box is the rounded modal container.
	Box lipgloss.Style
}
