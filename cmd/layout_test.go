package cmd

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/wordwebnav/wwn/internal/layout"
)

func TestFill(t *testing.T) {
	tests := []struct {
		label string
		n     int
		want  string
	}{
		{"nav", 0, ""},
		{"nav", 4, "    "},
		{"nav", 7, "  nav  "},
		{"nav", 8, "  nav   "},
	}
	for _, tt := range tests {
		if got := fill(tt.label, tt.n); got != tt.want {
			t.Errorf("fill(%q, %d) = %q, want %q", tt.label, tt.n, got, tt.want)
		}
	}
}

func TestRenderStripWidth(t *testing.T) {
	m := layout.DefaultMetrics()
	for _, width := range []int{200, 1280, 1920} {
		g := m.DefaultSplit(width)
		strip := renderStrip(m, g, width, 80)
		if w := lipgloss.Width(strip); w != 80 {
			t.Errorf("width %d: strip is %d columns, want 80", width, w)
		}
	}
}

func TestRenderStripEmpty(t *testing.T) {
	m := layout.DefaultMetrics()
	if got := renderStrip(m, m.DefaultSplit(0), 0, 80); got != "" {
		t.Errorf("zero-width container should render nothing, got %q", got)
	}
}

func TestRenderStripNarrowerThanNav(t *testing.T) {
	m := layout.DefaultMetrics()
	for _, width := range []int{1, 10, m.NavPadding} {
		g := m.DefaultSplit(width)
		if w := lipgloss.Width(renderStrip(m, g, width, 80)); w != 80 {
			t.Errorf("width %d: strip is %d columns, want 80", width, w)
		}
	}
}
