// Package testfixtures holds shared helpers for TUI tests.
package testfixtures

import (
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
)

func init() {
	// Ascii profile disables color output for consistent assertions
	// across CI and platforms.
	lipgloss.Writer.Profile = colorprofile.Ascii
}

// Canonical terminal size for all tests.
const (
	TestTermWidth  = 120
	TestTermHeight = 40
)
