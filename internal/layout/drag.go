package layout

import "log/slog"

// DragController resizes the navigation and document panes while the
// splitter is dragged. The drag primitive owns the splitter's position and
// clamps it to Bounds before every step; the controller only derives the
// dependent panes.
type DragController struct {
	metrics   Metrics
	container Container
	panes     Panes
	log       *slog.Logger

	totalWidth int
	bounds     Containment
}

// NewDragController creates a DragController. Call Setup before the first
// gesture.
func NewDragController(m Metrics, c Container, p Panes, log *slog.Logger) *DragController {
	return &DragController{metrics: m, container: c, panes: p, log: orDiscard(log)}
}

// Setup measures the container and computes the drag containment.
func (d *DragController) Setup() Containment {
	d.totalWidth = d.container.ContentWidth()
	d.bounds = d.metrics.Containment(d.totalWidth, d.container.TopOffset())
	d.log.Debug("drag containment", "min_left", d.bounds.MinLeft,
		"max_left", d.bounds.MaxLeft, "top", d.bounds.Top)
	return d.bounds
}

// Begin re-measures the container at the start of a gesture.
func (d *DragController) Begin() Containment {
	return d.Setup()
}

// Bounds returns the containment computed by the last Setup or Begin.
func (d *DragController) Bounds() Containment {
	return d.bounds
}

// Step applies the geometry for a splitter whose left edge is at left.
// The splitter itself is not restyled.
func (d *DragController) Step(left int) PaneGeometry {
	g := d.metrics.DraggedSplit(d.totalWidth, left)
	d.panes.Nav.SetWidth(g.NavWidth)
	d.panes.Doc.SetLeft(g.DocLeft)
	d.panes.Doc.SetWidth(g.DocWidth)
	return g
}
