// Package cmd implements the trackr command line.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/trackr/internal/commands"
	"github.com/nibzard/trackr/internal/config"
	"github.com/nibzard/trackr/internal/logging"
	"github.com/nibzard/trackr/internal/quotes"
	"github.com/nibzard/trackr/internal/taskfile"
	"github.com/nibzard/trackr/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// ErrUsage is returned when a command gets missing or malformed arguments.
var ErrUsage = errors.New("usage error")

// reportedError is an error whose message was already shown to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// IsReported reports whether err was already printed by Run.
func IsReported(err error) bool {
	var re *reportedError
	return errors.As(err, &re)
}

func reported(err error) error {
	return &reportedError{err: err}
}

// Option configures Run.
type Option func(*env)

// WithStdout redirects command output.
func WithStdout(w io.Writer) Option {
	return func(e *env) { e.stdout = w }
}

// WithStderr redirects diagnostics and flag errors.
func WithStderr(w io.Writer) Option {
	return func(e *env) { e.stderr = w }
}

// WithRand sets the source used to pick quotes.
func WithRand(r *rand.Rand) Option {
	return func(e *env) { e.rng = r }
}

// env is everything a subcommand needs.
type env struct {
	stdout io.Writer
	stderr io.Writer
	rng    *rand.Rand

	cfg     *config.Config
	sources *config.ConfigWithSources
	logger  *log.Logger
	store   *taskfile.Store
	svc     *commands.Commands
	out     *ui.Printer
}

var helpEntries = []ui.HelpEntry{
	{Usage: "trackr add <description>", About: "Add a new task"},
	{Usage: "trackr update <id> <new_description>", About: "Update an existing task"},
	{Usage: "trackr delete <id>", About: "Delete a task"},
	{Usage: "trackr mark <id> <status>", About: "Mark task status (todo, in-progress, done)"},
	{Usage: "trackr list [status]", About: "List all tasks or filter by status"},
	{Usage: "trackr stats", About: "Count tasks per status"},
	{Usage: "trackr tui", About: "Browse tasks in an interactive viewer"},
	{Usage: "trackr doctor [-v]", About: "Check config and the task file"},
	{Usage: "trackr quote", About: "Get a motivational quote"},
	{Usage: "trackr init", About: "Write trackr.toml and an empty task file"},
	{Usage: "trackr version", About: "Show version information"},
}

// Run executes the trackr CLI.
func Run(ctx context.Context, args []string, opts ...Option) error {
	e := &env{stdout: os.Stdout, stderr: os.Stderr}
	for _, opt := range opts {
		opt(e)
	}

	// Create a flag set for global options
	fs := flag.NewFlagSet("trackr", flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")
	fs.Usage = func() {
		printFlags(fs, e.stderr)
	}

	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	e.setup(cws)

	if *help {
		e.printHelp(fs)
		return nil
	}
	if *showVersion {
		return e.versionCommand()
	}

	remaining := fs.Args()
	if len(remaining) == 0 {
		if e.cfg.Banner {
			e.out.Banner()
		}
		e.out.Help(helpEntries)
		return nil
	}

	subcommand, rest := remaining[0], remaining[1:]
	e.logger.Debug("Running command", "command", subcommand, "file", e.cfg.TasksFile)

	switch subcommand {
	case "add":
		return e.addCommand(rest)
	case "update":
		return e.updateCommand(rest)
	case "delete":
		return e.deleteCommand(rest)
	case "mark":
		return e.markCommand(rest)
	case "list":
		return e.listCommand(rest)
	case "stats":
		return e.statsCommand()
	case "tui":
		return ui.RunTUI(ctx, e.cfg, e.store)
	case "doctor":
		return e.doctorCommand(rest)
	case "quote":
		e.out.Quote(quotes.Random(e.rng))
		return nil
	case "init":
		return e.initCommand()
	case "version", "--version":
		return e.versionCommand()
	case "help", "--help":
		e.printHelp(fs)
		return nil
	default:
		e.out.Failure("Unknown command: " + subcommand)
		e.out.Help(helpEntries)
		return reported(fmt.Errorf("%w: unknown command: %s", ErrUsage, subcommand))
	}
}

func (e *env) setup(cws *config.ConfigWithSources) {
	e.sources = cws
	e.cfg = cws.Config
	e.logger = logging.FromConfig(e.stderr, e.cfg.LogLevel, e.cfg.LogFormat, e.cfg.LogTimestamps, e.cfg.LogCaller)
	e.store = taskfile.NewStore(e.cfg.TasksFile, taskfile.WithLogger(e.logger))
	e.svc = commands.New(e.store, commands.WithLogger(e.logger))
	e.out = ui.NewPrinter(e.stdout, ui.NewStyles(e.stdout, e.cfg.Color))
}

// usage prints a failure with usage hints and returns a reported ErrUsage.
func (e *env) usage(msg string, hints ...string) error {
	e.out.Failure(msg, hints...)
	return reported(fmt.Errorf("%w: %s", ErrUsage, strings.TrimPrefix(msg, "Error: ")))
}

// failed prints the message for a command error and marks it reported.
func (e *env) failed(err error, saveMsg string) error {
	switch {
	case errors.Is(err, commands.ErrTaskNotFound):
		e.out.Failure("Task not found, meow again!")
	case errors.Is(err, commands.ErrInvalidStatus):
		e.out.Failure("Invalid status! Use: todo, in-progress, or done")
	case errors.Is(err, commands.ErrIDsExhausted):
		e.out.Failure("No task ids left! Delete the task with the highest id first.")
	default:
		e.out.Failure(saveMsg + err.Error())
	}
	return reported(err)
}

func (e *env) cheer() {
	if e.cfg.Quotes {
		e.out.Quote(quotes.Random(e.rng))
	}
}

func parseID(s string) (uint32, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(id), nil
}

func (e *env) invalidID(s string) error {
	e.out.Failure("Error: Invalid task ID! Must be a number.")
	return reported(fmt.Errorf("%w: invalid task id %q", ErrUsage, s))
}

func (e *env) addCommand(args []string) error {
	if len(args) == 0 {
		return e.usage("Error: Please provide a task description!", "Usage: trackr add <description>")
	}

	t, err := e.svc.Add(strings.Join(args, " "))
	if err != nil {
		return e.failed(err, "Oops! Failed to save: ")
	}
	e.out.Added(t)
	e.cheer()
	return nil
}

func (e *env) updateCommand(args []string) error {
	if len(args) < 2 {
		return e.usage("Error: Please provide task ID and new description!", "Usage: trackr update <id> <new_description>")
	}
	id, err := parseID(args[0])
	if err != nil {
		return e.invalidID(args[0])
	}

	t, err := e.svc.Update(id, strings.Join(args[1:], " "))
	if err != nil {
		return e.failed(err, "Failed to save: ")
	}
	e.out.Updated(t)
	e.cheer()
	return nil
}

func (e *env) deleteCommand(args []string) error {
	if len(args) < 1 {
		return e.usage("Error: Please provide a task ID!", "Usage: trackr delete <id>")
	}
	id, err := parseID(args[0])
	if err != nil {
		return e.invalidID(args[0])
	}

	if err := e.svc.Delete(id); err != nil {
		return e.failed(err, "Failed to save: ")
	}
	e.out.Deleted(id)
	e.cheer()
	return nil
}

func (e *env) markCommand(args []string) error {
	if len(args) < 2 {
		return e.usage("Error: Please provide task ID and status!",
			"Usage: trackr mark <id> <status>",
			"Status options: todo, in-progress, done")
	}
	id, err := parseID(args[0])
	if err != nil {
		return e.invalidID(args[0])
	}

	t, err := e.svc.Mark(id, args[1])
	if err != nil {
		return e.failed(err, "Failed to save: ")
	}
	e.out.Marked(t)
	e.cheer()
	return nil
}

func (e *env) listCommand(args []string) error {
	var status string
	if len(args) > 0 {
		status = args[0]
	}

	tasks, err := e.svc.List(status)
	if err != nil {
		return e.failed(err, "")
	}
	e.out.TaskList(tasks)
	return nil
}

func (e *env) statsCommand() error {
	e.out.Stats(e.svc.Stats())
	return nil
}

// initCommand writes an example project config and an empty task file,
// leaving existing files alone.
func (e *env) initCommand() error {
	configPath := config.ProjectConfigPath(e.cfg.WorkDir)
	created := false

	if _, err := os.Stat(configPath); err == nil {
		e.out.Note("  %s already exists, leaving it alone", configPath)
	} else if errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(configPath, []byte(config.ExampleConfig()), 0644); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		e.out.Good("  ✅ Wrote %s", configPath)
		created = true
	} else {
		return fmt.Errorf("stat config: %w", err)
	}

	if _, err := os.Stat(e.store.Path()); err == nil {
		e.out.Note("  %s already exists, leaving it alone", e.store.Path())
	} else if errors.Is(err, os.ErrNotExist) {
		if err := e.store.Save(nil); err != nil {
			return fmt.Errorf("create task file: %w", err)
		}
		e.out.Good("  ✅ Created %s", e.store.Path())
		created = true
	} else {
		return fmt.Errorf("stat task file: %w", err)
	}

	if created {
		e.out.Plain("")
		e.out.Plain("%s", "😸 All set! Try: trackr add \"feed the cat\"")
	}
	return nil
}

// versionCommand prints version information.
func (e *env) versionCommand() error {
	fmt.Fprintf(e.stdout, "trackr version %s\n", Version)
	return nil
}

func (e *env) printHelp(fs *flag.FlagSet) {
	e.out.Help(helpEntries)
	printFlags(fs, e.stdout)
}

// printFlags prints the global options.
func printFlags(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Global Options:")
	out := fs.Output()
	fs.SetOutput(w)
	fs.PrintDefaults()
	fs.SetOutput(out)
	fmt.Fprintln(w)
}
