package layout

import (
	"log/slog"
	"sync"
)

// EventSource delivers page lifecycle and pointer events. Load fires after
// the page's visual content, including styles and images, has finished
// loading. DragStart and Drag fire for splitter gestures; the position
// passed to Drag is the splitter's left edge after the drag primitive
// clamped it to the containment.
type EventSource interface {
	OnLoad(func())
	OnResize(func())
	OnDragStart(func())
	OnDrag(func(left int))
}

// Engine ties the reconciler, drag controller and resize watcher to an
// event source.
type Engine struct {
	Reconciler *Reconciler
	Drag       *DragController
	Resize     *ResizeWatcher

	log    *slog.Logger
	mu     sync.Mutex
	loaded bool
}

// Deps are the environment capabilities an Engine needs.
type Deps struct {
	Container Container
	Panes     Panes
	Scheduler Scheduler
	Reloader  Reloader
	Logger    *slog.Logger
}

// NewEngine builds an Engine for the given metrics.
func NewEngine(m Metrics, deps Deps) *Engine {
	log := orDiscard(deps.Logger)
	return &Engine{
		Reconciler: NewReconciler(m, deps.Container, deps.Panes, log),
		Drag:       NewDragController(m, deps.Container, deps.Panes, log),
		Resize:     NewResizeWatcher(m.ReloadDelay, deps.Scheduler, deps.Reloader, log),
		log:        log,
	}
}

// Register binds the engine's handlers to src.
func (e *Engine) Register(src EventSource) {
	src.OnLoad(e.HandleLoad)
	src.OnResize(e.HandleResize)
	src.OnDragStart(e.HandleDragStart)
	src.OnDrag(e.HandleDrag)
}

// HandleLoad runs the load-time reconciliation and prepares the drag
// containment.
func (e *Engine) HandleLoad() {
	e.Reconciler.Reconcile()
	e.Drag.Setup()

	e.mu.Lock()
	e.loaded = true
	e.mu.Unlock()
}

// HandleResize schedules the debounced reload.
func (e *Engine) HandleResize() {
	e.Resize.OnResize()
}

// HandleDragStart re-measures the container for a new gesture.
func (e *Engine) HandleDragStart() {
	if !e.isLoaded() {
		e.log.Debug("drag start before load ignored")
		return
	}
	e.Drag.Begin()
}

// HandleDrag applies one drag step.
func (e *Engine) HandleDrag(left int) {
	if !e.isLoaded() {
		return
	}
	e.Drag.Step(left)
}

func (e *Engine) isLoaded() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loaded
}
