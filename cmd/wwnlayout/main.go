//go:build js && wasm

// Command wwnlayout is the WebAssembly build of the page layout engine.
//
//	GOOS=js GOARCH=wasm go build -o wwnlayout.wasm ./cmd/wwnlayout
//
// The page passes its layout budgets as a JSON object in the global
// wwnLayoutMetrics; missing fields keep the defaults.
package main

import (
	"encoding/json"
	"syscall/js"

	"github.com/wordwebnav/wwn/internal/layout"
	"github.com/wordwebnav/wwn/internal/layout/dom"
)

func main() {
	m := layout.DefaultMetrics()
	if raw := js.Global().Get("wwnLayoutMetrics"); raw.Type() == js.TypeObject {
		s := js.Global().Get("JSON").Call("stringify", raw).String()
		if err := json.Unmarshal([]byte(s), &m); err != nil {
			js.Global().Get("console").Call("warn", "wwnlayout: ignoring metrics: "+err.Error())
			m = layout.DefaultMetrics()
		}
	}

	if _, ok := dom.Bind(m); !ok {
		js.Global().Get("console").Call("warn", "wwnlayout: page panes not found")
		return
	}
	select {}
}
