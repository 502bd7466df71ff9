package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Use these constants instead of inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: project names, module ids, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "integrated" module status.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "skipped" module status and manual-command hints.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for the "failed" status (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (project names, module ids, paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs and commands the user should run.
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (prefixes, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)

	// StyleHint styles follow-up instructions after a non-fatal failure.
	StyleHint = lipgloss.NewStyle().Foreground(ColorYellow)
)

// Styles groups the styles used by the tree renderer.
type Styles struct {
	Bold  lipgloss.Style
	Muted lipgloss.Style
}

var defaultStyles = &Styles{
	Bold:  lipgloss.NewStyle().Bold(true),
	Muted: lipgloss.NewStyle().Foreground(ColorDimGray),
}

// GetStyles returns the default style set.
func GetStyles() *Styles {
	return defaultStyles
}

// Module status constants.
const (
	StatusIntegrated = "integrated"
	StatusSkipped    = "skipped"
	StatusFailed     = "failed"
)

// StatusStyle returns the lipgloss style for a module status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusIntegrated:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusSkipped:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minModuleColumnWidth is the minimum width of the module column before the
// status suffix.
const minModuleColumnWidth = 24

// FormatModuleLine renders a module id with a right-aligned, color-coded status.
//
// Format: m:<id>  <status>
func FormatModuleLine(id, status string) string {
	padding := minModuleColumnWidth - len(id)
	if padding < 2 {
		padding = 2
	}

	prefix := StyleDim.Render("m:")
	styledID := StyleNoun.Render(id)
	styledStatus := StatusStyle(status).Render(status)

	return prefix + styledID + strings.Repeat(" ", padding) + styledStatus
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
