package render

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	primaryColor = lipgloss.Color("99")  // Purple
	successColor = lipgloss.Color("42")  // Green
	errorColor   = lipgloss.Color("196") // Red
	mutedColor   = lipgloss.Color("245") // Gray

	// Title style
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// Detail view styles
	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Bold(true).
			Width(12)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	// Validity markers
	validStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	invalidStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	// Footer and hints
	MutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)

// StatusStyle returns the style for a validity marker.
func StatusStyle(valid bool) lipgloss.Style {
	if valid {
		return validStyle
	}
	return invalidStyle
}
