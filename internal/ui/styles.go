package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/nibzard/trackr/internal/task"
)

// Styles holds the lipgloss styles shared by the CLI output and the TUI.
type Styles struct {
	Banner  lipgloss.Style
	Tagline lipgloss.Style
	Title   lipgloss.Style
	Success lipgloss.Style
	Detail  lipgloss.Style
	Error   lipgloss.Style
	Hint    lipgloss.Style
	Notice  lipgloss.Style
	Muted   lipgloss.Style
	Quote   lipgloss.Style

	Todo       lipgloss.Style
	InProgress lipgloss.Style
	Done       lipgloss.Style
}

// NewStyles returns styles rendering for w. With color false every style is
// empty and output is plain text.
func NewStyles(w io.Writer, color bool) Styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		plain := r.NewStyle()
		return Styles{
			Banner: plain, Tagline: plain, Title: plain, Success: plain, Detail: plain,
			Error: plain, Hint: plain, Notice: plain, Muted: plain, Quote: plain,
			Todo: plain, InProgress: plain, Done: plain,
		}
	}

	return Styles{
		Banner:  r.NewStyle().Foreground(lipgloss.Color("13")),
		Tagline: r.NewStyle().Foreground(lipgloss.Color("14")),
		Title:   r.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Success: r.NewStyle().Foreground(lipgloss.Color("13")),
		Detail:  r.NewStyle().Foreground(lipgloss.Color("14")),
		Error:   r.NewStyle().Foreground(lipgloss.Color("9")),
		Hint:    r.NewStyle().Foreground(lipgloss.Color("11")),
		Notice:  r.NewStyle().Foreground(lipgloss.Color("11")),
		Muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
		Quote:   r.NewStyle().Foreground(lipgloss.Color("13")).Italic(true),

		Todo:       r.NewStyle().Foreground(lipgloss.Color("15")),
		InProgress: r.NewStyle().Foreground(lipgloss.Color("11")),
		Done:       r.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

// ForStatus returns the style for tasks with status s.
func (s Styles) ForStatus(status task.Status) lipgloss.Style {
	switch status {
	case task.StatusInProgress:
		return s.InProgress
	case task.StatusDone:
		return s.Done
	default:
		return s.Todo
	}
}
