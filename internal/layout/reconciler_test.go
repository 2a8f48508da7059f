package layout

import "testing"

func TestReconcileAppliesDefaultSplit(t *testing.T) {
	panes, nav, split, doc := newPanes()
	r := NewReconciler(DefaultMetrics(), &fakeContainer{width: 1000, top: 42}, panes, nil)

	g := r.Reconcile()

	if g.NavWidth != 230 || g.SplitterLeft != 250 || g.DocLeft != 262 || g.DocWidth != 696 {
		t.Fatalf("Reconcile geometry = %+v", g)
	}
	if !nav.widthSet || nav.width != 230 {
		t.Errorf("nav width = %d (set=%v), want 230", nav.width, nav.widthSet)
	}
	if nav.leftSet {
		t.Error("nav left should not be written")
	}
	if !split.leftSet || split.left != 250 {
		t.Errorf("splitter left = %d (set=%v), want 250", split.left, split.leftSet)
	}
	if doc.left != 262 || doc.width != 696 {
		t.Errorf("doc left/width = %d/%d, want 262/696", doc.left, doc.width)
	}
}

func TestReconcileIdempotent(t *testing.T) {
	panes, _, _, _ := newPanes()
	r := NewReconciler(DefaultMetrics(), &fakeContainer{width: 1366}, panes, nil)

	first := r.Reconcile()
	second := r.Reconcile()
	if first != second {
		t.Errorf("second Reconcile = %+v, first = %+v", second, first)
	}
}

func TestReconcileZeroWidthCollapses(t *testing.T) {
	panes, nav, _, doc := newPanes()
	r := NewReconciler(DefaultMetrics(), &fakeContainer{}, panes, nil)

	r.Reconcile()
	if nav.width != 0 || doc.width != 0 {
		t.Errorf("zero-width container gave nav=%d doc=%d", nav.width, doc.width)
	}
}
