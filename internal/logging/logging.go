// Package logging builds the diagnostic logger used by the CLI.
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// New returns a text logger writing to w at the given level name.
func New(w io.Writer, level string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:     ParseLevel(level),
		Formatter: log.TextFormatter,
		Prefix:    "todolist",
	})
}

// ParseLevel maps a level name to a log.Level, defaulting to warn.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}
