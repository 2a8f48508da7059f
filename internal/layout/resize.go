package layout

import (
	"log/slog"
	"sync"
	"time"
)

// Timer is a pending scheduled callback.
type Timer interface {
	// Stop cancels the callback. It reports whether the call stopped the
	// timer before it fired.
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Reloader replaces the current page instance, preferring the cached copy
// of the page over a network fetch.
type Reloader interface {
	Reload()
}

// ClockScheduler schedules on the runtime timer.
type ClockScheduler struct{}

// AfterFunc implements Scheduler.
func (ClockScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// ResizeState is the resize watcher's lifecycle state.
type ResizeState int

const (
	Idle ResizeState = iota
	PendingReload
	Reloading
)

func (s ResizeState) String() string {
	switch s {
	case Idle:
		return "idle"
	case PendingReload:
		return "pending-reload"
	case Reloading:
		return "reloading"
	default:
		return "unknown"
	}
}

// ResizeWatcher debounces viewport resize events into a single page reload.
// Every resize cancels the pending reload and schedules a new one; once the
// reload has been issued the watcher is finished for this page instance.
type ResizeWatcher struct {
	delay    time.Duration
	sched    Scheduler
	reloader Reloader
	log      *slog.Logger

	mu      sync.Mutex
	pending Timer
	seq     uint64
	state   ResizeState
}

// NewResizeWatcher creates a watcher. A nil scheduler uses ClockScheduler.
func NewResizeWatcher(delay time.Duration, sched Scheduler, reloader Reloader, log *slog.Logger) *ResizeWatcher {
	if sched == nil {
		sched = ClockScheduler{}
	}
	return &ResizeWatcher{
		delay:    delay,
		sched:    sched,
		reloader: reloader,
		log:      orDiscard(log),
	}
}

// OnResize replaces any pending reload with one scheduled delay from now.
func (w *ResizeWatcher) OnResize() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state == Reloading {
		return
	}
	if w.pending != nil {
		w.pending.Stop()
	}
	w.seq++
	seq := w.seq
	w.state = PendingReload
	w.pending = w.sched.AfterFunc(w.delay, func() { w.fire(seq) })
}

// fire reloads unless a later resize superseded this timer. The sequence
// check covers a timer that fired concurrently with its own Stop.
func (w *ResizeWatcher) fire(seq uint64) {
	w.mu.Lock()
	if seq != w.seq || w.state != PendingReload {
		w.mu.Unlock()
		return
	}
	w.pending = nil
	w.state = Reloading
	w.mu.Unlock()

	w.log.Debug("viewport resized, reloading page")
	w.reloader.Reload()
}

// Stop cancels a pending reload and returns the watcher to Idle. It has no
// effect once the reload was issued.
func (w *ResizeWatcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != PendingReload {
		return
	}
	w.seq++
	if w.pending != nil {
		w.pending.Stop()
		w.pending = nil
	}
	w.state = Idle
}

// State returns the current lifecycle state.
func (w *ResizeWatcher) State() ResizeState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}
