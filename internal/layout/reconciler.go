package layout

import "log/slog"

// Container measures the region that holds the three body panes.
type Container interface {
	// ContentWidth is the rendered content-box width in whole pixels,
	// excluding border and margin.
	ContentWidth() int
	// TopOffset is the distance from the viewport top in pixels.
	TopOffset() int
}

// Pane is the styling capability of one pane element.
type Pane interface {
	SetWidth(px int)
	SetLeft(px int)
}

// Panes groups the three body pane elements.
type Panes struct {
	Nav      Pane
	Splitter Pane
	Doc      Pane
}

// Reconciler applies the default split once the page's visual content has
// finished loading.
type Reconciler struct {
	metrics   Metrics
	container Container
	panes     Panes
	log       *slog.Logger
}

// NewReconciler creates a Reconciler. A nil logger discards output.
func NewReconciler(m Metrics, c Container, p Panes, log *slog.Logger) *Reconciler {
	return &Reconciler{metrics: m, container: c, panes: p, log: orDiscard(log)}
}

// Reconcile measures the container and writes explicit pixel geometry over
// the stylesheet's percentage defaults. A zero-width container collapses the
// panes; that is not an error.
func (r *Reconciler) Reconcile() PaneGeometry {
	total := r.container.ContentWidth()
	g := r.metrics.DefaultSplit(total)

	r.panes.Nav.SetWidth(g.NavWidth)
	r.panes.Splitter.SetLeft(g.SplitterLeft)
	r.panes.Doc.SetLeft(g.DocLeft)
	r.panes.Doc.SetWidth(g.DocWidth)

	r.log.Debug("reconciled layout", "total_width", total,
		"nav_width", g.NavWidth, "splitter_left", g.SplitterLeft,
		"doc_left", g.DocLeft, "doc_width", g.DocWidth)
	return g
}

func orDiscard(log *slog.Logger) *slog.Logger {
	if log != nil {
		return log
	}
	return slog.New(slog.DiscardHandler)
}
