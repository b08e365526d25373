package taskfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/nibzard/trackr/internal/task"
)

// DefaultFile is the task file name used when none is configured.
const DefaultFile = "tasks.json"

// Logger is the subset of a leveled logger the store reports through.
// *log.Logger from charmbracelet/log satisfies it.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
}

type noopLogger struct{}

func (noopLogger) Debug(interface{}, ...interface{}) {}
func (noopLogger) Warn(interface{}, ...interface{})  {}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger routes the store's diagnostics to l.
func WithLogger(l Logger) StoreOption {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// Store is a handle on one task file. Every Load reads the whole file and
// every Save rewrites it; callers must not share a file between processes
// that write concurrently.
type Store struct {
	path   string
	logger Logger
}

// NewStore returns a store for the task file at path.
func NewStore(path string, opts ...StoreOption) *Store {
	s := &Store{path: path, logger: noopLogger{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the task file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the task file. A missing or unreadable file, or one that cannot
// be decoded, yields an empty list; problems are only logged at debug level.
func (s *Store) Load() []task.Task {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("Cannot read task file, starting empty", "path", s.path, "err", err)
		}
		return make([]task.Task, 0)
	}

	tasks, report := DecodeReport(data)
	if report.Rejected != RejectNone && report.Rejected != RejectEmpty {
		s.logger.Debug("Ignoring task file", "path", s.path, "reason", string(report.Rejected))
	}
	for _, d := range report.Dropped {
		s.logger.Debug("Dropped task object",
			"path", s.path,
			"index", d.Index,
			"missing", strings.Join(d.Missing, ","),
			"text", d.Snippet,
		)
	}
	if report.Unbalanced {
		s.logger.Debug("Unbalanced braces in task file", "path", s.path)
	}
	return tasks
}

// Save encodes tasks and replaces the task file contents, creating the file
// if needed.
func (s *Store) Save(tasks []task.Task) error {
	data := Encode(tasks)

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("open task file: %w", err)
	}
	if _, err := f.WriteString(data); err != nil {
		f.Close()
		return fmt.Errorf("write task file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write task file: %w", err)
	}

	s.logger.Debug("Saved tasks", "path", s.path, "count", len(tasks))
	return nil
}

// Inspection is the result of Inspect.
type Inspection struct {
	Path       string
	Exists     bool
	Size       int64
	Tasks      []task.Task
	Report     Report
	Validation *ValidationResult
}

// Inspect reads the task file for diagnostics. Unlike Load it reports I/O
// errors. A missing file is not an error; Exists is false.
func (s *Store) Inspect() (*Inspection, error) {
	in := &Inspection{Path: s.path}

	info, err := os.Stat(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return in, nil
		}
		return nil, fmt.Errorf("stat task file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("task file %s is a directory", s.path)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}

	in.Exists = true
	in.Size = info.Size()
	in.Tasks, in.Report = DecodeReport(data)
	in.Validation = Validate(data)
	return in, nil
}
