// Package logging provides the shared structured logger for wwn.
//
// All components derive from one slog text handler on stderr so generated
// output on stdout stays clean. The level comes from WWN_LOG_LEVEL (debug,
// info, warn, error) unless SetLevel is called first, which the CLI does for
// --verbose.
//
//	log := logging.New("site")
//	log.Info("wrote page", "path", p)
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	initLogger sync.Once
	baseLogger *slog.Logger
	level      = new(slog.LevelVar)
)

// New returns a logger tagged with component. An empty component returns
// the base logger.
func New(component string) *slog.Logger {
	initLogger.Do(func() {
		level.Set(ParseLevel(os.Getenv("WWN_LOG_LEVEL")))
		baseLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	})
	if component == "" {
		return baseLogger
	}
	return baseLogger.With("component", component)
}

// SetLevel changes the level of every logger returned by New.
func SetLevel(l slog.Level) {
	New("")
	level.Set(l)
}

// NewTo returns a logger writing to w at the given level. Tests use it to
// capture output.
func NewTo(w io.Writer, l slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}

// ParseLevel converts a level name to a slog.Level, defaulting to info.
func ParseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
