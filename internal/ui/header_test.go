package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderHeader(t *testing.T) {
	out := RenderHeader(HeaderInfo{
		Version: "v0.1.0",
		Tagline: "Secure • Fast • Simple",
	})

	assert.Contains(t, out, "gcssh")
	assert.Contains(t, out, "v0.1.0")
	assert.Contains(t, out, "Secure • Fast • Simple")
	assert.Contains(t, out, "━")
}

func TestRenderHeaderWithoutTagline(t *testing.T) {
	out := RenderHeader(HeaderInfo{Version: "v0.1.0"})
	assert.Equal(t, 2, strings.Count(out, "\n"), "title line plus divider")
}

func TestSectionHeader(t *testing.T) {
	out := SectionHeader("Available VMs", 50)
	assert.Contains(t, out, "Available VMs")
	assert.Contains(t, out, "─")
}

func TestCommandBox(t *testing.T) {
	out := CommandBox("ssh dev@34.1.2.3")
	assert.Contains(t, out, "ssh dev@34.1.2.3")
	assert.Contains(t, out, "╭")
	assert.Contains(t, out, "╰")
}

func TestInstanceLine(t *testing.T) {
	t.Run("with external IP", func(t *testing.T) {
		out := InstanceLine(0, "worker-1", "us-central1-a", "34.1.2.3")
		assert.Contains(t, out, "[1]")
		assert.Contains(t, out, "worker-1")
		assert.Contains(t, out, "us-central1-a")
		assert.Contains(t, out, "34.1.2.3")
	})

	t.Run("without external IP", func(t *testing.T) {
		out := InstanceLine(1, "internal", "us-east1-b", "")
		assert.Contains(t, out, "[2]")
		assert.Contains(t, out, "no external IP")
	})

	t.Run("long name truncated", func(t *testing.T) {
		long := strings.Repeat("a", 60)
		out := InstanceLine(2, long, "us-west1-c", "10.0.0.1")
		assert.NotContains(t, out, long)
		assert.Contains(t, out, strings.Repeat("a", 39)+"…")
	})
}

func TestFrameWidthFallsBackToPreferred(t *testing.T) {
	// Test processes have no terminal on stdout, so the preferred width
	// comes straight back.
	assert.Equal(t, 72, FrameWidth(72))
	assert.Equal(t, DefaultFrameWidth, FrameWidth(0))
}
