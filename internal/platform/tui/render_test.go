package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/whack-arcade/internal/core"
)

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "hello")
	s.DrawTextColored(0, 1, "mole", core.ColorYellow)

	lines := strings.Split(RenderScreen(s), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "hello " {
		t.Errorf("default-colored row should be unstyled, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "mole") {
		t.Errorf("line 1 = %q, want it to contain mole", lines[1])
	}
	if w := lipgloss.Width(lines[1]); w != 6 {
		t.Errorf("line 1 printed width = %d, want 6", w)
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(200)).Render("x"); got != "x" {
		t.Errorf("unknown color rendered %q, want plain", got)
	}
}

func TestFit(t *testing.T) {
	if got := fit("Golden Mole", 6); got != "Golde." {
		t.Errorf("fit = %q", got)
	}
	if got := fit("Mole", 10); got != "Mole" {
		t.Errorf("fit = %q", got)
	}
	if got := fit("Mole", 0); got != "" {
		t.Errorf("fit = %q", got)
	}
}
