// Package task defines the task record persisted by trackr.
package task

import "strings"

// Status represents a task status.
type Status uint8

const (
	StatusTodo Status = iota
	StatusInProgress
	StatusDone
)

var statusNames = [...]string{
	StatusTodo:       "todo",
	StatusInProgress: "in-progress",
	StatusDone:       "done",
}

var statusEmoji = [...]string{
	StatusTodo:       "📝",
	StatusInProgress: "⚡",
	StatusDone:       "✨",
}

// Statuses returns every status in display order.
func Statuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusDone}
}

// ParseStatus parses a status string case-insensitively.
// It returns false for anything other than todo, in-progress or done.
func ParseStatus(s string) (Status, bool) {
	switch strings.ToLower(s) {
	case "todo":
		return StatusTodo, true
	case "in-progress":
		return StatusInProgress, true
	case "done":
		return StatusDone, true
	default:
		return 0, false
	}
}

// String returns the lowercase external spelling of the status.
func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// Emoji returns the glyph shown next to the status in listings.
func (s Status) Emoji() string {
	if int(s) < len(statusEmoji) {
		return statusEmoji[s]
	}
	return "❓"
}

// Task represents a single task in the list.
type Task struct {
	ID          uint32
	Description string
	Status      Status
}

// New returns a todo task.
func New(id uint32, description string) Task {
	return Task{ID: id, Description: description, Status: StatusTodo}
}

// WithStatus returns a task with the given status.
func WithStatus(id uint32, description string, status Status) Task {
	return Task{ID: id, Description: description, Status: status}
}

// NextID returns one more than the highest ID in tasks, or 1 for an empty list.
func NextID(tasks []Task) uint32 {
	var max uint32
	for _, t := range tasks {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}

// Index returns the position of the first task with id, or -1.
func Index(tasks []Task, id uint32) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// Filter returns the tasks with the given status, preserving order.
func Filter(tasks []Task, status Status) []Task {
	var matching []Task
	for _, t := range tasks {
		if t.Status == status {
			matching = append(matching, t)
		}
	}
	return matching
}

// Counts returns the number of tasks per status. Every status has an entry.
func Counts(tasks []Task) map[Status]int {
	counts := map[Status]int{
		StatusTodo:       0,
		StatusInProgress: 0,
		StatusDone:       0,
	}
	for _, t := range tasks {
		counts[t.Status]++
	}
	return counts
}

// Clone returns a copy of tasks that can be mutated independently.
func Clone(tasks []Task) []Task {
	if tasks == nil {
		return nil
	}
	out := make([]Task, len(tasks))
	copy(out, tasks)
	return out
}
