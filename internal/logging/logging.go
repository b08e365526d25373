// Package logging builds the diagnostic logger with charmbracelet/log.
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Options holds configuration for the diagnostic logger.
type Options struct {
	Level           log.Level
	Formatter       log.Formatter
	ReportTimestamp bool
	ReportCaller    bool
	Prefix          string
}

// DefaultOptions returns the options used when nothing is configured.
// Warn keeps normal command output free of diagnostics.
func DefaultOptions() Options {
	return Options{
		Level:           log.WarnLevel,
		Formatter:       log.TextFormatter,
		ReportTimestamp: false,
		ReportCaller:    false,
		Prefix:          "trackr",
	}
}

// New creates a logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       opts.Formatter,
		ReportTimestamp: opts.ReportTimestamp,
		ReportCaller:    opts.ReportCaller,
		Prefix:          opts.Prefix,
	})
}

// FromConfig creates a logger from string configuration values, as they
// come out of TOML files, environment variables or flags.
func FromConfig(w io.Writer, level, format string, timestamps, caller bool) *log.Logger {
	opts := DefaultOptions()
	opts.Level = ParseLevel(level)
	opts.Formatter = ParseFormatter(format)
	opts.ReportTimestamp = timestamps
	opts.ReportCaller = caller
	return New(w, opts)
}

// ParseLevel parses a level name. Unknown names fall back to warn.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.WarnLevel
	}
}

// ParseFormatter parses a formatter name. Unknown names fall back to text.
func ParseFormatter(format string) log.Formatter {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

// Levels lists the level names ParseLevel understands.
func Levels() []string {
	return []string{"debug", "info", "warn", "error", "fatal"}
}

// Formats lists the formatter names ParseFormatter understands.
func Formats() []string {
	return []string{"text", "json", "logfmt"}
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return New(io.Discard, DefaultOptions())
}
