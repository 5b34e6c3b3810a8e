package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(40, 30) {
		t.Error("40 columns should be too small")
	}
	if !IsTooSmall(100, 10) {
		t.Error("10 rows should be too small")
	}
	if IsTooSmall(80, 24) {
		t.Error("80x24 should fit")
	}
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Groups", "seed 7", 80)
	if !strings.Contains(h, "Groups") || !strings.Contains(h, "seed 7") {
		t.Errorf("header missing title or status:\n%s", h)
	}
	if w := lipgloss.Width(h); w < 80 {
		t.Errorf("header width = %d, want at least 80", w)
	}
}

func TestRenderFrame_FillsHeight(t *testing.T) {
	header := RenderHeader("T", "", 80)
	footer := RenderFooter([]KeyHint{{Key: "q", Description: "Quit"}}, 80)
	frame := RenderFrame(header, "body", footer, 80, 24)

	if got := lipgloss.Height(frame); got != 24 {
		t.Errorf("frame height = %d, want 24", got)
	}
}
