package config

import "github.com/wordwebnav/wwn/internal/layout"

// DefaultConfigFile is the tool config looked up in the working directory.
const DefaultConfigFile = ".wwn.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			Runtime: RuntimeScript,
			Metrics: layout.DefaultMetrics(),
		},
		Batch: BatchConfig{
			Pattern:        "*.yml",
			MaxConcurrency: 4,
		},
		Serve: ServeConfig{
			Port:  8080,
			Watch: true,
		},
		LogLevel: "info",
	}
}
