package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file (~/.trackr/trackr.toml or OS-specific config dir)
// 3. Project config file (trackr.toml or .trackr.toml in current directory)
// 4. Environment variables
// 5. CLI flags
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cws, err := LoadWithSources(fs, args)
	if err != nil {
		return nil, err
	}
	return cws.Config, nil
}

// LoadWithSources loads configuration and tracks the source of each value.
func LoadWithSources(fs *flag.FlagSet, args []string) (*ConfigWithSources, error) {
	sources := make(map[string]ConfigSource)
	cfg := &Config{}
	var files []string

	// 1. Set defaults (all fields start with default source)
	setDefaults(cfg)
	for _, field := range configFields() {
		sources[field] = SourceDefault
	}

	// 2. Try to load from user config file
	if userConfigFile := findUserConfigFile(); userConfigFile != "" {
		if err := loadConfigFile(cfg, userConfigFile, sources, SourceUserFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", userConfigFile, err)
		}
		files = append(files, userConfigFile)
	}

	// 3. Try to load from project config file (overrides user config)
	if projectConfigFile := findProjectConfigFile(); projectConfigFile != "" {
		if err := loadConfigFile(cfg, projectConfigFile, sources, SourceProjFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", projectConfigFile, err)
		}
		files = append(files, projectConfigFile)
	}

	// 4. Override from environment
	loadFromEnv(cfg, sources)

	// 5. Parse CLI flags (they override everything)
	if err := parseFlags(cfg, fs, args, sources); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	// 6. Compute derived values
	if err := finalizeConfig(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}

	return &ConfigWithSources{
		Config:  cfg,
		Sources: sources,
		Files:   files,
	}, nil
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.TasksFile = DefaultTasksFile
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = false
	cfg.LogCaller = false
	cfg.Color = true
	cfg.Banner = true
	cfg.Quotes = false
}

// loadConfigFile decodes a TOML file over cfg. Only keys present in the
// file are overwritten, and only those are attributed to source.
func loadConfigFile(cfg *Config, path string, sources map[string]ConfigSource, source ConfigSource) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	for _, field := range configFields() {
		if md.IsDefined(field) {
			sources[field] = source
		}
	}
	return nil
}

// finalizeConfig computes derived values and validates the result.
func finalizeConfig(cfg *Config) error {
	if cfg.WorkDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		cfg.WorkDir = wd
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	// Expand ~ and environment variables, then make the path absolute.
	cfg.TasksFile = expandPath(cfg.TasksFile)
	if !filepath.IsAbs(cfg.TasksFile) {
		cfg.TasksFile = filepath.Join(cfg.WorkDir, cfg.TasksFile)
	}

	return nil
}
