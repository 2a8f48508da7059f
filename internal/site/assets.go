package site

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"text/template"

	"github.com/wordwebnav/wwn/internal/layout"
)

// Asset file names, resolved against a page's scripts_directory_url.
const (
	StylesheetName = "word_web_nav.css"
	ScriptName     = "word_web_nav.js"
	WasmName       = "wwnlayout.wasm"
	WasmExecName   = "wasm_exec.js"
)

// Assets are the rendered stylesheet and script for one set of metrics.
type Assets struct {
	CSS []byte
	JS  []byte
}

type pageIDs struct {
	HeaderBar string
	Container string
	Nav       string
	Splitter  string
	Doc       string
}

var ids = pageIDs{
	HeaderBar: layout.HeaderBarID,
	Container: layout.ContainerID,
	Nav:       layout.NavID,
	Splitter:  layout.SplitterID,
	Doc:       layout.DocID,
}

type assetData struct {
	M             layout.Metrics
	IDs           pageIDs
	NavPct        string
	DocPct        string
	DocReserved   int
	HeaderLine    int
	ReloadDelayMS int64
}

var (
	cssTmpl = template.Must(template.New("css").Parse(cssTemplate))
	jsTmpl  = template.Must(template.New("js").Parse(jsTemplate))
)

// RenderAssets renders word_web_nav.css and word_web_nav.js from m. Both
// files carry the same budgets as the Go engine, so the stylesheet's
// percentage defaults and the script's pixel reconciliation agree.
func RenderAssets(m layout.Metrics) (*Assets, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	data := assetData{
		M:             m,
		IDs:           ids,
		NavPct:        percent(m.DefaultFraction),
		DocPct:        percent(1 - m.DefaultFraction),
		DocReserved:   m.DocReserved(),
		HeaderLine:    max(0, m.HeaderHeight-1),
		ReloadDelayMS: m.ReloadDelay.Milliseconds(),
	}

	var css, js bytes.Buffer
	if err := cssTmpl.Execute(&css, data); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", StylesheetName, err)
	}
	if err := jsTmpl.Execute(&js, data); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", ScriptName, err)
	}
	return &Assets{CSS: css.Bytes(), JS: js.Bytes()}, nil
}

// WriteAssets renders the assets into dir, creating it if needed, and
// returns the written paths.
func WriteAssets(dir string, m layout.Metrics) ([]string, error) {
	a, err := RenderAssets(m)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	files := []struct {
		name string
		data []byte
	}{
		{StylesheetName, a.CSS},
		{ScriptName, a.JS},
	}
	var written []string
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, f.data, 0o644); err != nil {
			return written, fmt.Errorf("writing %s: %w", f.name, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// percent formats a fraction as a CSS percentage number, rounded to four
// decimal places.
func percent(fraction float64) string {
	return strconv.FormatFloat(math.Round(fraction*1e6)/1e4, 'f', -1, 64)
}
