package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color palette using ANSI color codes for terminal compatibility.

// Semantic colors for status indication
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7"  // White/default
	ColorSecondary lipgloss.Color = "4"  // Blue
	ColorMuted     lipgloss.Color = "8"  // Gray (bright black)
	ColorAccent    lipgloss.Color = "14" // Bright cyan, banner accents
)

// GradientColors cycles through the spinner animation.
var GradientColors = []lipgloss.Color{
	ColorAccent, ColorInfo, ColorSecondary, ColorSuccess,
}

// ConfigureColors sets the lipgloss color profile from the environment.
// Honors NO_COLOR and downgrades to plain text when stdout is not a
// terminal, so piped output stays clean.
func ConfigureColors() {
	if os.Getenv("NO_COLOR") != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.NewOutput(os.Stdout).ColorProfile())
}

// DisableColors switches to monochrome output (for --no-color).
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
