package config

import (
	"flag"
)

// flagFields maps flag names to config field names.
var flagFields = map[string]string{
	"file":           "tasks_file",
	"log-level":      "log_level",
	"log-format":     "log_format",
	"log-timestamps": "log_timestamps",
	"log-caller":     "log_caller",
	"color":          "color",
	"banner":         "banner",
	"quotes":         "quotes",
}

// RegisterFlags defines the global flags on fs, bound to cfg. The current
// values of cfg become the flag defaults.
func RegisterFlags(cfg *Config, fs *flag.FlagSet) {
	fs.StringVar(&cfg.TasksFile, "file", cfg.TasksFile, "Path to the task file")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json, logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Show timestamps in logs")
	fs.BoolVar(&cfg.LogCaller, "log-caller", cfg.LogCaller, "Show caller location in logs")
	fs.BoolVar(&cfg.Color, "color", cfg.Color, "Use colors and emoji styling")
	fs.BoolVar(&cfg.Banner, "banner", cfg.Banner, "Show the banner when run without a command")
	fs.BoolVar(&cfg.Quotes, "quotes", cfg.Quotes, "Print a motivational quote after each change")
}

// parseFlags defines and parses CLI flags, recording every flag that was
// set explicitly.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]ConfigSource) error {
	if fs == nil {
		fs = flag.NewFlagSet("trackr", flag.ContinueOnError)
	}
	RegisterFlags(cfg, fs)

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if field, ok := flagFields[f.Name]; ok {
			sources[field] = SourceFlag
		}
	})
	return nil
}
