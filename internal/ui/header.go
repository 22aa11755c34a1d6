package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"gcssh/internal/util"
)

// HeaderInfo contains information to display in the welcome header.
type HeaderInfo struct {
	Version string // version string (e.g. "v0.1.0")
	Tagline string // e.g. "Secure • Fast • Simple"
}

// DefaultFrameWidth is used when the terminal width cannot be detected.
const DefaultFrameWidth = 80

// FrameWidth returns the usable frame width, capped at the real terminal
// width when stdout is a terminal.
func FrameWidth(preferred int) int {
	if preferred <= 0 {
		preferred = DefaultFrameWidth
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && w < preferred {
		return w
	}
	return preferred
}

// RenderHeader renders the branded welcome header. Clean typography, no
// ASCII art.
func RenderHeader(info HeaderInfo) string {
	titleStyle := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true)
	versionStyle := lipgloss.NewStyle().Foreground(ColorInfo)
	taglineStyle := lipgloss.NewStyle().Foreground(ColorSecondary)
	dividerStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	var output strings.Builder
	output.WriteString(titleStyle.Render("gcssh"))
	if info.Version != "" {
		output.WriteString(" ")
		output.WriteString(versionStyle.Render(info.Version))
	}
	output.WriteString("\n")

	if info.Tagline != "" {
		output.WriteString(taglineStyle.Render(info.Tagline))
		output.WriteString("\n")
	}

	output.WriteString(dividerStyle.Render(strings.Repeat("━", 50)))
	output.WriteString("\n")
	return output.String()
}

// PrintHeader prints the styled header to stdout.
func PrintHeader(info HeaderInfo) {
	fmt.Print(RenderHeader(info))
}

// SectionHeader renders a centered section title between rule lines.
func SectionHeader(title string, width int) string {
	if width < len(title)+4 {
		width = len(title) + 4
	}
	pad := (width - len(title) - 2) / 2
	rule := lipgloss.NewStyle().Foreground(ColorSecondary).
		Render(strings.Repeat("─", pad))
	titleStyled := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).
		Render(title)
	return fmt.Sprintf("\n%s %s %s\n", rule, titleStyled, rule)
}

// CommandBox renders the final connection command inside a rounded border
// so it stands out as the thing to copy.
func CommandBox(command string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSecondary).
		Padding(0, 3)
	commandStyled := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).
		Render(command)
	return boxStyle.Render(commandStyled)
}

// maxInstanceName caps how much of a VM name is shown per catalog line.
const maxInstanceName = 40

// InstanceLine renders one catalog entry for display, numbered from 1.
// Long instance names are truncated so the line stays scannable.
func InstanceLine(index int, name, zone, ip string) string {
	indexStyle := lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(ColorInfo).Bold(true)
	zoneStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	name = util.Truncate(name, maxInstanceName)

	ipDisplay := SymbolNoIP + " no external IP"
	if ip != "" {
		ipDisplay = SymbolGlobe + " " + ip
	}

	return fmt.Sprintf("%s %s %s %s",
		indexStyle.Render(fmt.Sprintf("[%d]", index+1)),
		nameStyle.Render(name),
		zoneStyle.Render("("+zone+")"),
		ipDisplay)
}
