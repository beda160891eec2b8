package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/lawn-defense/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorGreen)
	s.DrawTextColor(2, 0, "cd", core.ColorGold)
	s.DrawText(0, 1, "xyz")

	out := ansi.Strip(RenderScreen(s))
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "abcd  " || lines[1] != "xyz   " {
		t.Errorf("unexpected output %q", out)
	}
}

func TestPaletteCovered(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorTileB; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for %v", c)
		}
	}
}
