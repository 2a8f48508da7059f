//go:build js && wasm

// Package dom binds the layout engine to a browser page when compiled with
// GOOS=js GOARCH=wasm.
package dom

import (
	"math"
	"strconv"
	"strings"
	"syscall/js"

	"github.com/wordwebnav/wwn/internal/layout"
)

// Container measures an element's content box.
type Container struct {
	el js.Value
}

// ContentWidth returns clientWidth minus horizontal padding, floored.
func (c Container) ContentWidth() int {
	style := js.Global().Call("getComputedStyle", c.el)
	w := c.el.Get("clientWidth").Float() - px(style.Get("paddingLeft")) - px(style.Get("paddingRight"))
	if w < 0 {
		return 0
	}
	return int(math.Floor(w))
}

// TopOffset returns the element's top edge relative to the viewport.
func (c Container) TopOffset() int {
	return int(math.Floor(c.el.Call("getBoundingClientRect").Get("top").Float()))
}

// Pane writes pixel style overrides on an element.
type Pane struct {
	el js.Value
}

func (p Pane) SetWidth(v int) { p.el.Get("style").Set("width", strconv.Itoa(v)+"px") }
func (p Pane) SetLeft(v int)  { p.el.Get("style").Set("left", strconv.Itoa(v)+"px") }

// Reloader reloads the page. Browsers serve a plain reload from cache when
// the cached copy is still valid.
type Reloader struct{}

func (Reloader) Reload() {
	js.Global().Get("location").Call("reload")
}

// Events adapts window and pointer events to layout.EventSource. The
// splitter drag primitive lives here: it clamps the pointer position to the
// drag controller's containment, moves the splitter, then reports the new
// left edge.
type Events struct {
	window    js.Value
	container js.Value
	splitter  js.Value
	bounds    func() layout.Containment

	funcs []js.Func
}

// OnLoad runs f on the window load event, or right away when the module
// was instantiated after the page already finished loading.
func (e *Events) OnLoad(f func()) {
	if e.window.Get("document").Get("readyState").String() == "complete" {
		f()
		return
	}
	e.listen(e.window, "load", func(js.Value) { f() })
}

func (e *Events) OnResize(f func()) {
	e.listen(e.window, "resize", func(js.Value) { f() })
}

// OnDragStart registers f for pointerdown on the splitter. The pointer
// listeners for the gesture itself are installed by OnDrag.
func (e *Events) OnDragStart(f func()) {
	e.listen(e.splitter, "pointerdown", func(js.Value) { f() })
}

func (e *Events) OnDrag(f func(left int)) {
	var (
		dragging bool
		grab     float64
	)
	e.listen(e.splitter, "pointerdown", func(ev js.Value) {
		ev.Call("preventDefault")
		dragging = true
		rect := e.splitter.Call("getBoundingClientRect")
		grab = ev.Get("clientX").Float() - rect.Get("left").Float()
		e.splitter.Call("setPointerCapture", ev.Get("pointerId"))
	})
	e.listen(e.splitter, "pointermove", func(ev js.Value) {
		if !dragging {
			return
		}
		origin := e.container.Call("getBoundingClientRect").Get("left").Float()
		x := int(math.Floor(ev.Get("clientX").Float() - origin - grab))
		left := e.bounds().Clamp(x)
		e.splitter.Get("style").Set("left", strconv.Itoa(left)+"px")
		f(left)
	})
	end := func(ev js.Value) {
		if !dragging {
			return
		}
		dragging = false
		e.splitter.Call("releasePointerCapture", ev.Get("pointerId"))
	}
	e.listen(e.splitter, "pointerup", end)
	e.listen(e.splitter, "pointercancel", end)
}

func (e *Events) listen(target js.Value, event string, h func(ev js.Value)) {
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		var ev js.Value
		if len(args) > 0 {
			ev = args[0]
		}
		h(ev)
		return nil
	})
	e.funcs = append(e.funcs, fn)
	target.Call("addEventListener", event, fn)
}

// Bind looks up the page's pane elements and registers a layout engine on
// them. It reports false when any element is missing.
func Bind(m layout.Metrics) (*layout.Engine, bool) {
	doc := js.Global().Get("document")
	lookup := func(id string) js.Value { return doc.Call("getElementById", id) }

	container, nav, splitter, body := lookup(layout.ContainerID), lookup(layout.NavID), lookup(layout.SplitterID), lookup(layout.DocID)
	for _, el := range []js.Value{container, nav, splitter, body} {
		if el.IsNull() || el.IsUndefined() {
			return nil, false
		}
	}

	engine := layout.NewEngine(m, layout.Deps{
		Container: Container{el: container},
		Panes: layout.Panes{
			Nav:      Pane{el: nav},
			Splitter: Pane{el: splitter},
			Doc:      Pane{el: body},
		},
		Reloader: Reloader{},
	})
	engine.Register(&Events{
		window:    js.Global(),
		container: container,
		splitter:  splitter,
		bounds:    engine.Drag.Bounds,
	})
	return engine, true
}

// px parses a computed CSS length such as "20px".
func px(v js.Value) float64 {
	f, err := strconv.ParseFloat(strings.TrimSuffix(v.String(), "px"), 64)
	if err != nil {
		return 0
	}
	return f
}
