package cli

import (
	"io"
	"log/slog"

	charmlog "github.com/charmbracelet/log"
)

// newLogger builds the root logger. JSON output gets JSON logs so the
// streams stay machine-readable; otherwise logs are human-formatted.
func newLogger(c *Config, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}

	if c.Output == "json" {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	}

	charmLevel := charmlog.WarnLevel
	if c.Verbose {
		charmLevel = charmlog.DebugLevel
	}
	handler := charmlog.NewWithOptions(w, charmlog.Options{
		Level:  charmLevel,
		Prefix: "trio",
	})
	return slog.New(handler)
}
