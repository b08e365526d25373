// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (~/.trackr/trackr.toml or OS-specific config directory)
// 3. Project config file (trackr.toml or .trackr.toml in the working directory)
// 4. Environment variables (TRACKR_*, NO_COLOR)
// 5. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
//
// User-level config locations:
// - ~/.trackr/trackr.toml (preferred)
// - Windows: %APPDATA%\trackr\trackr.toml
// - macOS: ~/Library/Application Support/trackr/trackr.toml
// - Linux/BSD: $XDG_CONFIG_HOME/trackr/trackr.toml or ~/.config/trackr/trackr.toml
//
// Project-level config locations (overrides user config):
// - ./trackr.toml (preferred)
// - ./.trackr.toml
package config
