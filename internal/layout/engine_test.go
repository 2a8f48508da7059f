package layout

import (
	"testing"
	"time"
)

// manualEvents is an EventSource whose handlers are fired by the test.
type manualEvents struct {
	load, resize, dragStart func()
	drag                    func(int)
}

func (e *manualEvents) OnLoad(f func())        { e.load = f }
func (e *manualEvents) OnResize(f func())      { e.resize = f }
func (e *manualEvents) OnDragStart(f func())   { e.dragStart = f }
func (e *manualEvents) OnDrag(f func(left int)) { e.drag = f }

func newTestEngine(width int) (*Engine, *manualEvents, *fakeClock, *countingReloader, *recordingPane, *recordingPane) {
	panes, nav, _, doc := newPanes()
	clock := &fakeClock{}
	reloader := &countingReloader{}
	e := NewEngine(DefaultMetrics(), Deps{
		Container: &fakeContainer{width: width, top: 42},
		Panes:     panes,
		Scheduler: clock,
		Reloader:  reloader,
	})
	src := &manualEvents{}
	e.Register(src)
	return e, src, clock, reloader, nav, doc
}

func TestEngineRegistersAllHandlers(t *testing.T) {
	_, src, _, _, _, _ := newTestEngine(1000)
	if src.load == nil || src.resize == nil || src.dragStart == nil || src.drag == nil {
		t.Fatalf("handlers not registered: %+v", src)
	}
}

func TestEngineLoadThenDrag(t *testing.T) {
	e, src, _, _, nav, doc := newTestEngine(1000)

	src.load()
	if nav.width != 230 || doc.left != 262 || doc.width != 696 {
		t.Fatalf("after load nav=%d doc=%d/%d", nav.width, doc.left, doc.width)
	}
	if b := e.Drag.Bounds(); b.MaxLeft != 946 || b.Top != 42 {
		t.Errorf("bounds after load = %+v", b)
	}

	src.dragStart()
	for _, left := range []int{300, 350, 400} {
		src.drag(left)
	}
	if nav.width != 380 || doc.left != 412 || doc.width != 546 {
		t.Errorf("after drag nav=%d doc=%d/%d", nav.width, doc.left, doc.width)
	}
}

func TestEngineIgnoresDragBeforeLoad(t *testing.T) {
	_, src, _, _, nav, doc := newTestEngine(1000)

	src.dragStart()
	src.drag(400)
	if nav.writes != 0 || doc.writes != 0 {
		t.Errorf("drag before load wrote styles: nav=%d doc=%d", nav.writes, doc.writes)
	}
}

func TestEngineResizeReloads(t *testing.T) {
	e, src, clock, reloader, _, _ := newTestEngine(1000)

	src.load()
	src.resize()
	clock.Advance(50 * time.Millisecond)
	src.resize()
	clock.Advance(100 * time.Millisecond)

	if reloader.n != 1 {
		t.Errorf("reload count = %d, want 1", reloader.n)
	}
	if e.Resize.State() != Reloading {
		t.Errorf("state = %s, want reloading", e.Resize.State())
	}
}
