package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/nibzard/trackr/internal/logging"
)

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource
	// Files lists the config files that were read, lowest priority first.
	Files []string
}

// Default values.
const (
	DefaultTasksFile = "tasks.json"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Config holds the full configuration for trackr.
type Config struct {
	// TasksFile is the task file path. Relative paths are resolved against
	// WorkDir.
	TasksFile string `toml:"tasks_file"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// Output
	Color  bool `toml:"color"`
	Banner bool `toml:"banner"`
	Quotes bool `toml:"quotes"`

	// WorkDir is the directory relative paths are resolved against.
	WorkDir string `toml:"-"`
}

// configFields returns the list of configurable field names for source tracking.
func configFields() []string {
	return []string{
		"tasks_file",
		"log_level",
		"log_format",
		"log_timestamps",
		"log_caller",
		"color",
		"banner",
		"quotes",
	}
}

// Validate checks values that cannot be checked by the TOML decoder.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.TasksFile) == "" {
		return fmt.Errorf("tasks_file must not be empty")
	}
	if !contains(logging.Levels(), strings.ToLower(c.LogLevel)) && strings.ToLower(c.LogLevel) != "warning" {
		return fmt.Errorf("unknown log_level %q (want one of %s)", c.LogLevel, strings.Join(logging.Levels(), ", "))
	}
	if !contains(logging.Formats(), strings.ToLower(c.LogFormat)) {
		return fmt.Errorf("unknown log_format %q (want one of %s)", c.LogFormat, strings.Join(logging.Formats(), ", "))
	}
	return nil
}

// Values returns the configured values keyed by field name, formatted for display.
func (c *Config) Values() map[string]string {
	return map[string]string{
		"tasks_file":     c.TasksFile,
		"log_level":      c.LogLevel,
		"log_format":     c.LogFormat,
		"log_timestamps": strconv.FormatBool(c.LogTimestamps),
		"log_caller":     strconv.FormatBool(c.LogCaller),
		"color":          strconv.FormatBool(c.Color),
		"banner":         strconv.FormatBool(c.Banner),
		"quotes":         strconv.FormatBool(c.Quotes),
	}
}

// SortedSources returns field names in a stable order for display.
func (cws *ConfigWithSources) SortedSources() []string {
	fields := make([]string, 0, len(cws.Sources))
	for field := range cws.Sources {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
