package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Effects renders the cosmetic animations: typing, progress sweeps, and
// framed messages. All animation is skipped when Enabled is false so
// non-interactive runs stay instant.
type Effects struct {
	Out     io.Writer
	Enabled bool

	// TypingDelay is the pause between characters in TypeText.
	TypingDelay time.Duration
}

// NewEffects returns animated effects writing to out.
func NewEffects(out io.Writer, enabled bool, typingDelay time.Duration) *Effects {
	return &Effects{Out: out, Enabled: enabled, TypingDelay: typingDelay}
}

// TypeText prints text one rune at a time, then a newline.
func (e *Effects) TypeText(text string) {
	if !e.Enabled || e.TypingDelay <= 0 {
		fmt.Fprintln(e.Out, text)
		return
	}
	for _, r := range text {
		fmt.Fprint(e.Out, string(r))
		time.Sleep(e.TypingDelay)
	}
	fmt.Fprintln(e.Out)
}

// ProgressBar sweeps a block-character bar from empty to full over the
// given duration. Purely cosmetic; the work it "tracks" already happened.
func (e *Effects) ProgressBar(message string, steps int, duration time.Duration) {
	if steps < 1 {
		steps = 1
	}
	const width = 30
	stepDelay := duration / time.Duration(steps)

	for i := 1; i <= steps; i++ {
		filled := width * i / steps
		pct := float64(i) / float64(steps) * 100
		fmt.Fprintf(e.Out, "\r%s [%s%s] %.1f%%",
			message,
			strings.Repeat("█", filled),
			strings.Repeat(" ", width-filled),
			pct)
		if e.Enabled {
			time.Sleep(stepDelay)
		}
	}
	fmt.Fprintln(e.Out)
}

// FadeIn prints text dimmed, then rewrites it at full intensity. Reduces
// to a plain print when animation is off.
func (e *Effects) FadeIn(text string) {
	if !e.Enabled {
		fmt.Fprintln(e.Out, text)
		return
	}
	muted := lipgloss.NewStyle().Foreground(ColorMuted)
	fmt.Fprint(e.Out, muted.Render(text))
	time.Sleep(150 * time.Millisecond)
	fmt.Fprint(e.Out, "\r"+strings.Repeat(" ", len([]rune(text)))+"\r")
	fmt.Fprintln(e.Out, text)
}

// FramedMessage word-wraps message inside a box of the given width.
func FramedMessage(message string, width int) string {
	if width < 10 {
		width = 10
	}
	inner := width - 4

	var lines []string
	var current string
	for _, word := range strings.Fields(message) {
		// Hard-break words wider than the frame so every line fits.
		for len([]rune(word)) > inner {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			runes := []rune(word)
			lines = append(lines, string(runes[:inner]))
			word = string(runes[inner:])
		}
		switch {
		case current == "":
			current = word
		case len([]rune(current))+1+len([]rune(word)) <= inner:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}

	border := lipgloss.NewStyle().Foreground(ColorSecondary)
	var b strings.Builder
	b.WriteString(border.Render("┌"+strings.Repeat("─", width-2)+"┐") + "\n")
	for _, line := range lines {
		pad := ""
		if n := inner - len([]rune(line)); n > 0 {
			pad = strings.Repeat(" ", n)
		}
		b.WriteString(border.Render("│") + " " + line + pad + " " + border.Render("│") + "\n")
	}
	b.WriteString(border.Render("└" + strings.Repeat("─", width-2) + "┘"))
	return b.String()
}
