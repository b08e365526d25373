package config

import (
	"os"
	"strings"
)

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) {
	setString := func(key, field string, target *string) {
		if v := os.Getenv(key); v != "" {
			*target = v
			sources[field] = SourceEnv
		}
	}
	setBool := func(key, field string, target *bool) {
		if v := os.Getenv(key); v != "" {
			*target = boolFromString(v)
			sources[field] = SourceEnv
		}
	}

	setString("TRACKR_FILE", "tasks_file", &cfg.TasksFile)

	// Logging configuration
	setString("TRACKR_LOG_LEVEL", "log_level", &cfg.LogLevel)
	setString("TRACKR_LOG_FORMAT", "log_format", &cfg.LogFormat)
	setBool("TRACKR_LOG_TIMESTAMPS", "log_timestamps", &cfg.LogTimestamps)
	setBool("TRACKR_LOG_CALLER", "log_caller", &cfg.LogCaller)

	// Output
	setBool("TRACKR_COLOR", "color", &cfg.Color)
	if os.Getenv("NO_COLOR") != "" {
		cfg.Color = false
		sources["color"] = SourceEnv
	}
	setBool("TRACKR_BANNER", "banner", &cfg.Banner)
	setBool("TRACKR_QUOTES", "quotes", &cfg.Quotes)
}

func boolFromString(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "1" || s == "true" || s == "yes" || s == "on"
}
