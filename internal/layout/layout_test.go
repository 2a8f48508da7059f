package layout

import (
	"sort"
	"time"
)

type fakeContainer struct {
	width int
	top   int
}

func (c *fakeContainer) ContentWidth() int { return c.width }
func (c *fakeContainer) TopOffset() int    { return c.top }

// recordingPane remembers the last style written and how many writes it saw.
type recordingPane struct {
	width, left       int
	widthSet, leftSet bool
	writes            int
}

func (p *recordingPane) SetWidth(px int) {
	p.width, p.widthSet = px, true
	p.writes++
}

func (p *recordingPane) SetLeft(px int) {
	p.left, p.leftSet = px, true
	p.writes++
}

func newPanes() (Panes, *recordingPane, *recordingPane, *recordingPane) {
	nav, split, doc := &recordingPane{}, &recordingPane{}, &recordingPane{}
	return Panes{Nav: nav, Splitter: split, Doc: doc}, nav, split, doc
}

// fakeClock is a manual Scheduler. Callbacks run only from Advance.
type fakeClock struct {
	now    time.Duration
	timers []*fakeTimer
}

type fakeTimer struct {
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	t := &fakeTimer{at: c.now + d, f: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward and fires due timers in deadline order.
func (c *fakeClock) Advance(d time.Duration) {
	c.now += d
	due := make([]*fakeTimer, 0, len(c.timers))
	for _, t := range c.timers {
		if !t.stopped && !t.fired && t.at <= c.now {
			due = append(due, t)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].at < due[j].at })
	for _, t := range due {
		t.fired = true
		t.f()
	}
}

func (c *fakeClock) live() int {
	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

type countingReloader struct{ n int }

func (r *countingReloader) Reload() { r.n++ }
