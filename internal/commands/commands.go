// Package commands implements the task operations behind the CLI and TUI.
//
// Every mutation loads the whole task list, changes it and saves it back.
package commands

import (
	"errors"
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/nibzard/trackr/internal/logging"
	"github.com/nibzard/trackr/internal/task"
)

var (
	// ErrTaskNotFound is returned when no task has the requested id.
	ErrTaskNotFound = errors.New("task not found")
	// ErrInvalidStatus is returned for a status other than todo, in-progress or done.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrIDsExhausted is returned by Add when the highest id is already taken.
	ErrIDsExhausted = errors.New("no task ids left")
)

// Store loads and saves the full task list.
type Store interface {
	Load() []task.Task
	Save(tasks []task.Task) error
}

// Option configures Commands.
type Option func(*Commands)

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(c *Commands) {
		if l != nil {
			c.logger = l
		}
	}
}

// Commands runs task operations against a Store.
type Commands struct {
	store  Store
	logger *log.Logger
}

// New creates Commands backed by store.
func New(store Store, opts ...Option) *Commands {
	c := &Commands{store: store, logger: logging.Discard()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// load returns a copy of the stored list. A Store may hand out its own
// backing slice, which must stay untouched when Save fails.
func (c *Commands) load() []task.Task {
	return task.Clone(c.store.Load())
}

// Add appends a todo task with the next free id.
func (c *Commands) Add(description string) (task.Task, error) {
	tasks := c.load()
	if task.Index(tasks, math.MaxUint32) >= 0 {
		return task.Task{}, ErrIDsExhausted
	}

	t := task.New(task.NextID(tasks), description)
	tasks = append(tasks, t)
	if err := c.store.Save(tasks); err != nil {
		return task.Task{}, fmt.Errorf("save: %w", err)
	}

	c.logger.Info("Task added", "id", t.ID)
	return t, nil
}

// Update replaces the description of the first task with id.
func (c *Commands) Update(id uint32, description string) (task.Task, error) {
	tasks := c.load()
	i := task.Index(tasks, id)
	if i < 0 {
		return task.Task{}, fmt.Errorf("%w: #%d", ErrTaskNotFound, id)
	}

	tasks[i].Description = description
	if err := c.store.Save(tasks); err != nil {
		return task.Task{}, fmt.Errorf("save: %w", err)
	}

	c.logger.Info("Task updated", "id", id)
	return tasks[i], nil
}

// Delete removes every task with id. Nothing is saved when none matched.
func (c *Commands) Delete(id uint32) error {
	tasks := c.load()
	kept := tasks[:0:0]
	for _, t := range tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(tasks) {
		return fmt.Errorf("%w: #%d", ErrTaskNotFound, id)
	}

	if err := c.store.Save(kept); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	c.logger.Info("Task deleted", "id", id, "removed", len(tasks)-len(kept))
	return nil
}

// Mark sets the status of the first task with id. The status is checked
// before the task file is read.
func (c *Commands) Mark(id uint32, status string) (task.Task, error) {
	s, ok := task.ParseStatus(status)
	if !ok {
		return task.Task{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	tasks := c.load()
	i := task.Index(tasks, id)
	if i < 0 {
		return task.Task{}, fmt.Errorf("%w: #%d", ErrTaskNotFound, id)
	}

	tasks[i].Status = s
	if err := c.store.Save(tasks); err != nil {
		return task.Task{}, fmt.Errorf("save: %w", err)
	}

	c.logger.Info("Task marked", "id", id, "status", s)
	return tasks[i], nil
}

// List returns all tasks, or only those with status when it is not empty.
func (c *Commands) List(status string) ([]task.Task, error) {
	if status == "" {
		return c.store.Load(), nil
	}

	s, ok := task.ParseStatus(status)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return task.Filter(c.store.Load(), s), nil
}

// Stats returns the number of tasks per status.
func (c *Commands) Stats() map[task.Status]int {
	return task.Counts(c.store.Load())
}
