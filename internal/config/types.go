package config

import "github.com/wordwebnav/wwn/internal/layout"

// Runtime selects how the generated page runs the layout engine.
type Runtime string

const (
	// RuntimeScript links word_web_nav.js, generated from the same metrics.
	RuntimeScript Runtime = "script"
	// RuntimeWasm loads the WebAssembly build of the Go engine.
	RuntimeWasm Runtime = "wasm"
)

// Config is the wwn tool configuration, corresponding to .wwn.yml.
type Config struct {
	Layout   LayoutConfig `yaml:"layout" koanf:"layout"`
	Batch    BatchConfig  `yaml:"batch" koanf:"batch"`
	Serve    ServeConfig  `yaml:"serve" koanf:"serve"`
	LogLevel string       `yaml:"log_level" koanf:"log_level"`
}

// LayoutConfig holds the pane budgets and the page runtime.
type LayoutConfig struct {
	Runtime Runtime        `yaml:"runtime" koanf:"runtime"`
	Metrics layout.Metrics `yaml:"metrics" koanf:"metrics"`
	// WriteAssets writes word_web_nav.css and word_web_nav.js next to every
	// generated page.
	WriteAssets bool `yaml:"write_assets" koanf:"write_assets"`
}

// BatchConfig controls `wwn batch`.
type BatchConfig struct {
	Pattern        string `yaml:"pattern" koanf:"pattern"`
	MaxConcurrency int    `yaml:"max_concurrency" koanf:"max_concurrency"`
}

// ServeConfig controls the preview server.
type ServeConfig struct {
	Port     int  `yaml:"port" koanf:"port"`
	Watch    bool `yaml:"watch" koanf:"watch"`
	AllowAll bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}
