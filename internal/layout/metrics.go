// Package layout positions the three body panes of a WordWebNav page: the
// table-of-contents navigation pane, the splitter, and the document pane.
//
// The geometry functions are pure. Everything that touches a rendering
// environment (measuring the container, writing pane styles, scheduling a
// reload) is injected, so the same engine runs under test, in the browser
// through the dom package, and as the source of the constants baked into the
// generated stylesheet and script.
package layout

import (
	"fmt"
	"time"
)

// Metrics is the canonical set of fixed pixel budgets for a page layout.
// The stylesheet, the page script and the Go engine all derive from one
// Metrics value.
type Metrics struct {
	// NavPadding is the navigation pane's horizontal padding; the pane's
	// total width is its content width plus NavPadding.
	NavPadding int `yaml:"nav_padding" koanf:"nav_padding"`
	// SplitterWidth is the width of the draggable divider.
	SplitterWidth   int `yaml:"splitter_width" koanf:"splitter_width"`
	DocPaddingLeft  int `yaml:"doc_padding_left" koanf:"doc_padding_left"`
	DocPaddingRight int `yaml:"doc_padding_right" koanf:"doc_padding_right"`
	DocBorder       int `yaml:"doc_border" koanf:"doc_border"`
	// HeaderHeight is the header bar's total height, which is also the
	// container's top offset.
	HeaderHeight int `yaml:"header_height" koanf:"header_height"`
	// DefaultFraction is the share of the container given to the
	// navigation pane on load.
	DefaultFraction float64 `yaml:"default_fraction" koanf:"default_fraction"`
	// ReloadDelay is the resize debounce window.
	ReloadDelay time.Duration `yaml:"reload_delay" koanf:"reload_delay"`
}

// DefaultMetrics returns the stock WordWebNav budgets.
func DefaultMetrics() Metrics {
	return Metrics{
		NavPadding:      20,
		SplitterWidth:   12,
		DocPaddingLeft:  20,
		DocPaddingRight: 20,
		DocBorder:       2,
		HeaderHeight:    42,
		DefaultFraction: 0.25,
		ReloadDelay:     100 * time.Millisecond,
	}
}

// DocReserved is the width to the right of the navigation pane that is not
// document content: splitter, document padding and border.
func (m Metrics) DocReserved() int {
	return m.SplitterWidth + m.DocPaddingLeft + m.DocPaddingRight + m.DocBorder
}

// MinSplit is the smallest splitter left edge; it leaves a zero-width
// navigation content box.
func (m Metrics) MinSplit() int {
	return m.NavPadding
}

// MaxSplit is the largest splitter left edge for a container of the given
// width; it leaves a zero-width document pane.
func (m Metrics) MaxSplit(totalWidth int) int {
	return totalWidth - m.DocReserved()
}

// Validate rejects budgets that would make the derived widths meaningless.
func (m Metrics) Validate() error {
	for name, v := range map[string]int{
		"nav_padding":       m.NavPadding,
		"splitter_width":    m.SplitterWidth,
		"doc_padding_left":  m.DocPaddingLeft,
		"doc_padding_right": m.DocPaddingRight,
		"doc_border":        m.DocBorder,
		"header_height":     m.HeaderHeight,
	} {
		if v < 0 {
			return fmt.Errorf("layout %s must be non-negative, got %d", name, v)
		}
	}
	if m.DefaultFraction <= 0 || m.DefaultFraction >= 1 {
		return fmt.Errorf("layout default_fraction must be between 0 and 1, got %v", m.DefaultFraction)
	}
	if m.ReloadDelay < 0 {
		return fmt.Errorf("layout reload_delay must be non-negative, got %s", m.ReloadDelay)
	}
	return nil
}
