package layout

import "math"

// PaneGeometry is the derived position of the three body panes. It is
// recomputed on every reconciliation and never stored.
type PaneGeometry struct {
	NavWidth      int // navigation content width, excluding padding
	NavTotalWidth int
	SplitterLeft  int
	DocLeft       int
	DocWidth      int
}

// Containment bounds the splitter's left edge while it is dragged. The
// vertical coordinate is pinned to Top, so the splitter only moves
// horizontally.
type Containment struct {
	MinLeft int
	MaxLeft int
	Top     int
}

// Clamp returns x limited to the containment box. When the container is too
// narrow for both bounds to hold, every position clamps to MinLeft.
func (c Containment) Clamp(x int) int {
	if x > c.MaxLeft {
		x = c.MaxLeft
	}
	if x < c.MinLeft {
		x = c.MinLeft
	}
	return x
}

// DefaultSplit computes the load-time geometry: the navigation pane takes
// DefaultFraction of the container, floored to a whole pixel.
func (m Metrics) DefaultSplit(totalWidth int) PaneGeometry {
	totalWidth = max(0, totalWidth)
	share := int(math.Floor(float64(totalWidth) * m.DefaultFraction))
	navWidth := max(0, share-m.NavPadding)
	navTotal := navWidth + m.NavPadding
	return PaneGeometry{
		NavWidth:      navWidth,
		NavTotalWidth: navTotal,
		SplitterLeft:  navTotal,
		DocLeft:       navTotal + m.SplitterWidth,
		DocWidth:      max(0, totalWidth-navTotal-m.DocReserved()),
	}
}

// DraggedSplit computes the geometry for a splitter whose left edge is at
// splitPosition. The navigation pane ends exactly where the splitter starts.
func (m Metrics) DraggedSplit(totalWidth, splitPosition int) PaneGeometry {
	totalWidth = max(0, totalWidth)
	navTotal := max(0, splitPosition)
	return PaneGeometry{
		NavWidth:      max(0, navTotal-m.NavPadding),
		NavTotalWidth: navTotal,
		SplitterLeft:  navTotal,
		DocLeft:       navTotal + m.SplitterWidth,
		DocWidth:      max(0, totalWidth-navTotal-m.DocReserved()),
	}
}

// Compute returns the dragged geometry for splitPosition, or the default
// split when splitPosition is nil.
func (m Metrics) Compute(totalWidth int, splitPosition *int) PaneGeometry {
	if splitPosition == nil {
		return m.DefaultSplit(totalWidth)
	}
	return m.DraggedSplit(totalWidth, *splitPosition)
}

// Containment returns the drag bounds for a container of the given width
// whose top edge sits topOffset pixels below the viewport top.
func (m Metrics) Containment(totalWidth, topOffset int) Containment {
	return Containment{
		MinLeft: m.MinSplit(),
		MaxLeft: m.MaxSplit(max(0, totalWidth)),
		Top:     topOffset,
	}
}
