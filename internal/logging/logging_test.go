package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"fatal", log.FatalLevel},
		{"  DEBUG ", log.DebugLevel},
		{"", log.WarnLevel},
		{"verbose", log.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFormatter(t *testing.T) {
	tests := []struct {
		in   string
		want log.Formatter
	}{
		{"text", log.TextFormatter},
		{"json", log.JSONFormatter},
		{"JSON", log.JSONFormatter},
		{"logfmt", log.LogfmtFormatter},
		{"", log.TextFormatter},
		{"xml", log.TextFormatter},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseFormatter(tt.in); got != tt.want {
				t.Errorf("ParseFormatter(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestListsMatchParsers(t *testing.T) {
	for _, name := range Levels() {
		if name != "warn" && ParseLevel(name) == log.WarnLevel {
			t.Errorf("level %q is listed but not parsed", name)
		}
	}
	for _, name := range Formats() {
		if name != "text" && ParseFormatter(name) == log.TextFormatter {
			t.Errorf("format %q is listed but not parsed", name)
		}
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.Level != log.WarnLevel {
		t.Errorf("Level = %v, want warn", opts.Level)
	}
	if opts.Formatter != log.TextFormatter {
		t.Errorf("Formatter = %v, want text", opts.Formatter)
	}
	if opts.Prefix != "trackr" {
		t.Errorf("Prefix = %q, want trackr", opts.Prefix)
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, DefaultOptions())

	logger.Debug("hidden debug")
	logger.Info("hidden info")
	logger.Warn("shown warning", "path", "tasks.json")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains messages below warn: %q", out)
	}
	if !strings.Contains(out, "shown warning") {
		t.Errorf("output missing warning: %q", out)
	}
	if !strings.Contains(out, "tasks.json") {
		t.Errorf("output missing key/value: %q", out)
	}
}

func TestFromConfigJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := FromConfig(&buf, "debug", "json", false, false)

	logger.Debug("Dropped task object", "index", 2)

	var entry map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "Dropped task object" {
		t.Errorf("msg = %v, want %q", entry["msg"], "Dropped task object")
	}
	if entry["index"] != float64(2) {
		t.Errorf("index = %v, want 2", entry["index"])
	}
}

func TestDiscard(t *testing.T) {
	// Must not panic.
	Discard().Error("nothing to see")
}
