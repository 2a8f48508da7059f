package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (WWN_*). Nested keys use a double
// underscore: WWN_SERVE__PORT -> serve.port.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider("WWN_", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "WWN_")), "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validRuntimes = map[Runtime]bool{
	RuntimeScript: true,
	RuntimeWasm:   true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if !validRuntimes[c.Layout.Runtime] {
		return fmt.Errorf("invalid layout.runtime %q: must be one of script, wasm", c.Layout.Runtime)
	}
	if err := c.Layout.Metrics.Validate(); err != nil {
		return err
	}

	if c.Batch.Pattern == "" {
		return fmt.Errorf("batch.pattern is required")
	}
	if !doublestar.ValidatePattern(c.Batch.Pattern) {
		return fmt.Errorf("invalid batch.pattern %q", c.Batch.Pattern)
	}
	if c.Batch.MaxConcurrency < 0 {
		return fmt.Errorf("batch.max_concurrency must be non-negative")
	}

	if c.Serve.Port < 0 || c.Serve.Port > 65535 {
		return fmt.Errorf("serve.port %d out of range", c.Serve.Port)
	}

	return nil
}
