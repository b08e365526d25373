package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# trackr configuration file
# Values can be overridden by TRACKR_* environment variables or CLI flags

# Task file (relative to the directory trackr runs in; ~ and $VARS expand)
tasks_file = "tasks.json"

# Diagnostics go to stderr
# log_level: debug, info, warn, error
log_level = "warn"
# log_format: text, json, logfmt
log_format = "text"
log_timestamps = false
log_caller = false

# Colors and emoji styling (NO_COLOR also turns this off)
color = true

# Show the banner when run without a command
banner = true

# Print a motivational quote after each change
quotes = false
`
}
