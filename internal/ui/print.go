package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/nibzard/trackr/internal/task"
)

const bannerArt = `
           /\_/\
          ( o.o )
           > ^ <

    ████████╗██████╗  █████╗  ██████╗██╗  ██╗██████╗
    ╚══██╔══╝██╔══██╗██╔══██╗██╔════╝██║ ██╔╝██╔══██╗
       ██║   ██████╔╝███████║██║     █████╔╝ ██████╔╝
       ██║   ██╔══██╗██╔══██║██║     ██╔═██╗ ██╔══██╗
       ██║   ██║  ██║██║  ██║╚██████╗██║  ██╗██║  ██║
       ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝╚═╝  ╚═╝
`

// HelpEntry is one command in the help text.
type HelpEntry struct {
	Usage string
	About string
}

// Printer writes the user-facing CLI output.
type Printer struct {
	w      io.Writer
	styles Styles
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer, styles Styles) *Printer {
	return &Printer{w: w, styles: styles}
}

func (p *Printer) line(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Banner prints the cat and the logo.
func (p *Printer) Banner() {
	p.line("%s", p.styles.Banner.Render(bannerArt))
	p.line("              %s", p.styles.Tagline.Render("stay pawsitive 😸🐾"))
	p.line("")
}

// Help prints the command list.
func (p *Printer) Help(entries []HelpEntry) {
	p.line("%s", p.styles.Title.Render("📝 How to use trackr:"))
	p.line("")
	for _, e := range entries {
		p.line("  %s", p.styles.Hint.Render(e.Usage))
		p.line("    %s", e.About)
		p.line("")
	}
}

// Added reports a new task.
func (p *Printer) Added(t task.Task) {
	p.changed("😸 Task added successfully, slay!", t)
}

// Updated reports a changed description.
func (p *Printer) Updated(t task.Task) {
	p.changed("✨ Task updated, you're killing it!", t)
}

// Marked reports a status change.
func (p *Printer) Marked(t task.Task) {
	p.changed(fmt.Sprintf("%s Task marked as %s! Keep going!", t.Status.Emoji(), t.Status), t)
}

// Deleted reports a removed task.
func (p *Printer) Deleted(id uint32) {
	p.line("")
	p.line("%s", p.styles.Success.Render(fmt.Sprintf("🗑️  Task deleted! Bye bye task #%d", id)))
	p.line("")
}

func (p *Printer) changed(msg string, t task.Task) {
	p.line("")
	p.line("%s", p.styles.Success.Render(msg))
	p.line("%s", p.styles.Detail.Render(fmt.Sprintf("   ID: %d | %s", t.ID, t.Description)))
	p.line("")
}

// Failure prints an error message with optional usage hints below it.
func (p *Printer) Failure(msg string, hints ...string) {
	p.line("")
	p.line("%s", p.styles.Error.Render("😿 "+msg))
	for _, h := range hints {
		p.line("%s", p.styles.Hint.Render("   "+h))
	}
	p.line("")
}

// TaskList prints tasks as a table, one colored row per task.
func (p *Printer) TaskList(tasks []task.Task) {
	if len(tasks) == 0 {
		p.line("")
		p.line("%s", p.styles.Notice.Render("🐾 No tasks found! Time to add some vibes~"))
		p.line("")
		return
	}

	p.line("")
	p.line("%s", p.styles.Title.Render("🐾 Listing your vibes (tasks)..."))
	p.line("")
	p.line("%s", p.styles.Muted.Render(fmt.Sprintf("%-6s %-15s %s", "ID", "STATUS", "DESCRIPTION")))
	p.line("%s", p.styles.Muted.Render(strings.Repeat("─", 60)))
	for _, t := range tasks {
		status := t.Status.Emoji() + " " + t.Status.String()
		row := fmt.Sprintf("%-6d %-15s %s", t.ID, status, t.Description)
		p.line("%s", p.styles.ForStatus(t.Status).Render(row))
	}
	p.line("")
}

// Stats prints the number of tasks per status.
func (p *Printer) Stats(counts map[task.Status]int) {
	parts := make([]string, 0, len(task.Statuses()))
	total := 0
	for _, s := range task.Statuses() {
		parts = append(parts, p.styles.ForStatus(s).Render(fmt.Sprintf("%s %s: %d", s.Emoji(), s, counts[s])))
		total += counts[s]
	}
	p.line("%s  %s", strings.Join(parts, "  "), p.styles.Muted.Render(fmt.Sprintf("(%d total)", total)))
}

// Quote prints a motivational quote.
func (p *Printer) Quote(q string) {
	p.line("%s", p.styles.Quote.Render(q))
	p.line("")
}

// Plain prints an unstyled line.
func (p *Printer) Plain(format string, args ...interface{}) {
	p.line(format, args...)
}

// Heading prints a section title.
func (p *Printer) Heading(title string) {
	p.line("%s", p.styles.Title.Render(title))
}

// Note prints a dimmed line.
func (p *Printer) Note(format string, args ...interface{}) {
	p.line("%s", p.styles.Muted.Render(fmt.Sprintf(format, args...)))
}

// Warn prints a highlighted line.
func (p *Printer) Warn(format string, args ...interface{}) {
	p.line("%s", p.styles.Notice.Render(fmt.Sprintf(format, args...)))
}

// Bad prints a line in the error style.
func (p *Printer) Bad(format string, args ...interface{}) {
	p.line("%s", p.styles.Error.Render(fmt.Sprintf(format, args...)))
}

// Good prints a line in the success style.
func (p *Printer) Good(format string, args ...interface{}) {
	p.line("%s", p.styles.Done.Render(fmt.Sprintf(format, args...)))
}
