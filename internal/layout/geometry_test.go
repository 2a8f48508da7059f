package layout

import "testing"

func TestDefaultSplit(t *testing.T) {
	m := DefaultMetrics()
	tests := []struct {
		name  string
		total int
		want  PaneGeometry
	}{
		{"wide", 1000, PaneGeometry{NavWidth: 230, NavTotalWidth: 250, SplitterLeft: 250, DocLeft: 262, DocWidth: 696}},
		{"too narrow", 50, PaneGeometry{NavWidth: 0, NavTotalWidth: 20, SplitterLeft: 20, DocLeft: 32, DocWidth: 0}},
		{"zero", 0, PaneGeometry{NavWidth: 0, NavTotalWidth: 20, SplitterLeft: 20, DocLeft: 32, DocWidth: 0}},
		{"negative treated as zero", -30, PaneGeometry{NavWidth: 0, NavTotalWidth: 20, SplitterLeft: 20, DocLeft: 32, DocWidth: 0}},
		{"fraction floors", 1001, PaneGeometry{NavWidth: 230, NavTotalWidth: 250, SplitterLeft: 250, DocLeft: 262, DocWidth: 697}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.DefaultSplit(tt.total)
			if got != tt.want {
				t.Errorf("DefaultSplit(%d) = %+v, want %+v", tt.total, got, tt.want)
			}
		})
	}
}

func TestDefaultSplitInvariants(t *testing.T) {
	m := DefaultMetrics()
	for total := 0; total <= 3000; total++ {
		g := m.DefaultSplit(total)
		if g.NavWidth < 0 || g.NavTotalWidth < 0 || g.DocWidth < 0 {
			t.Fatalf("total=%d: negative width in %+v", total, g)
		}
		if g.SplitterLeft != g.NavTotalWidth {
			t.Fatalf("total=%d: splitter left %d does not meet nav edge %d", total, g.SplitterLeft, g.NavTotalWidth)
		}
		if g.DocLeft != g.SplitterLeft+m.SplitterWidth {
			t.Fatalf("total=%d: doc left %d, want %d", total, g.DocLeft, g.SplitterLeft+m.SplitterWidth)
		}
		if total >= 74 {
			sum := g.NavTotalWidth + 12 + g.DocWidth + 42
			if sum != total {
				t.Fatalf("total=%d: panes sum to %d", total, sum)
			}
		}
	}
}

func TestDraggedSplit(t *testing.T) {
	m := DefaultMetrics()
	got := m.DraggedSplit(1000, 400)
	want := PaneGeometry{NavWidth: 380, NavTotalWidth: 400, SplitterLeft: 400, DocLeft: 412, DocWidth: 546}
	if got != want {
		t.Errorf("DraggedSplit(1000, 400) = %+v, want %+v", got, want)
	}
}

func TestDraggedSplitSeamless(t *testing.T) {
	m := DefaultMetrics()
	for _, total := range []int{74, 200, 999, 1000, 1920} {
		for split := m.MinSplit(); split <= m.MaxSplit(total); split++ {
			g := m.DraggedSplit(total, split)
			if g.NavTotalWidth != split {
				t.Fatalf("total=%d split=%d: nav total %d", total, split, g.NavTotalWidth)
			}
			if g.DocLeft != split+12 {
				t.Fatalf("total=%d split=%d: doc left %d", total, split, g.DocLeft)
			}
			if g.NavWidth < 0 || g.DocWidth < 0 {
				t.Fatalf("total=%d split=%d: negative width in %+v", total, split, g)
			}
		}
	}
}

func TestDraggedSplitBoundaries(t *testing.T) {
	m := DefaultMetrics()
	total := 1000

	if g := m.DraggedSplit(total, 20); g.NavWidth != 0 {
		t.Errorf("minimum split nav width = %d, want 0", g.NavWidth)
	}
	if g := m.DraggedSplit(total, total-54); g.DocWidth != 0 {
		t.Errorf("maximum split doc width = %d, want 0", g.DocWidth)
	}
	if g := m.DraggedSplit(total, -5); g.NavTotalWidth != 0 || g.NavWidth != 0 {
		t.Errorf("negative split produced %+v", g)
	}
}

func TestCompute(t *testing.T) {
	m := DefaultMetrics()
	if got, want := m.Compute(1000, nil), m.DefaultSplit(1000); got != want {
		t.Errorf("Compute(nil) = %+v, want default %+v", got, want)
	}
	split := 400
	if got, want := m.Compute(1000, &split), m.DraggedSplit(1000, 400); got != want {
		t.Errorf("Compute(&400) = %+v, want %+v", got, want)
	}
}

func TestContainment(t *testing.T) {
	m := DefaultMetrics()
	c := m.Containment(1000, 42)
	want := Containment{MinLeft: 20, MaxLeft: 946, Top: 42}
	if c != want {
		t.Fatalf("Containment = %+v, want %+v", c, want)
	}

	tests := []struct{ in, want int }{
		{-10, 20},
		{20, 20},
		{500, 500},
		{946, 946},
		{2000, 946},
	}
	for _, tt := range tests {
		if got := c.Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestContainmentNarrowContainer(t *testing.T) {
	m := DefaultMetrics()
	c := m.Containment(50, 42)
	for _, x := range []int{-1, 0, 20, 100} {
		if got := c.Clamp(x); got != 20 {
			t.Errorf("Clamp(%d) in narrow container = %d, want 20", x, got)
		}
	}
}

func TestMetricsDocReserved(t *testing.T) {
	if got := DefaultMetrics().DocReserved(); got != 54 {
		t.Errorf("DocReserved = %d, want 54", got)
	}
}

func TestMetricsValidate(t *testing.T) {
	if err := DefaultMetrics().Validate(); err != nil {
		t.Fatalf("default metrics invalid: %v", err)
	}

	bad := DefaultMetrics()
	bad.SplitterWidth = -1
	if err := bad.Validate(); err == nil {
		t.Error("expected error for negative splitter width")
	}

	bad = DefaultMetrics()
	bad.DefaultFraction = 1.5
	if err := bad.Validate(); err == nil {
		t.Error("expected error for fraction above 1")
	}
}
