package theme

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// ApplyGradient colors each rune of text with a left-to-right blend
// from startColor to endColor. Multi-line input gets the same gradient
// per line.
func ApplyGradient(text, startColor, endColor string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = gradientLine(line, startColor, endColor)
	}
	return strings.Join(lines, "\n")
}

func gradientLine(line, startColor, endColor string) string {
	runes := []rune(line)
	if len(runes) == 0 {
		return ""
	}
	if len(runes) == 1 {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(startColor)).Render(line)
	}

	var b strings.Builder
	span := float64(len(runes) - 1)
	for i, r := range runes {
		color := InterpolateColor(startColor, endColor, float64(i)/span)
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(string(r)))
	}
	return b.String()
}
