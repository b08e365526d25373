// Package ui provides the terminal output and the interactive viewer.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nibzard/trackr/internal/config"
	"github.com/nibzard/trackr/internal/task"
)

// Source loads the task list for display.
type Source interface {
	Load() []task.Task
}

// TUIOption configures the TUI behavior.
type TUIOption func(*tuiModel)

// WithTickInterval sets how often the task file is reloaded.
func WithTickInterval(d time.Duration) TUIOption {
	return func(m *tuiModel) {
		if d > 0 {
			m.tickInterval = d
		}
	}
}

// RunTUI starts the viewer for the tasks in src.
func RunTUI(ctx context.Context, cfg *config.Config, src Source, opts ...TUIOption) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	model := newTUIModel(src, NewStyles(os.Stdout, cfg.Color), cfg.TasksFile, opts...)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Refresh     key.Binding
	Todo        key.Binding
	InProgress  key.Binding
	Done        key.Binding
	ClearFilter key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Refresh:     key.NewBinding(key.WithKeys("r", "f5"), key.WithHelp("r", "refresh")),
		Todo:        key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "todo")),
		InProgress:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "in-progress")),
		Done:        key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "done")),
		ClearFilter: key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "clear filter")),
		Help:        key.NewBinding(key.WithKeys("h", "?"), key.WithHelp("h/?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Refresh, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Refresh},
		{k.Todo, k.InProgress, k.Done, k.ClearFilter},
		{k.Help, k.Quit},
	}
}

type tuiModel struct {
	src          Source
	path         string
	styles       Styles
	keys         keyMap
	help         help.Model
	table        table.Model
	tasks        []task.Task
	counts       map[task.Status]int
	filter       task.Status
	filtered     bool
	tickInterval time.Duration
	loadedAt     time.Time
}

type tickMsg time.Time

func newTUIModel(src Source, styles Styles, path string, opts ...TUIOption) *tuiModel {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "STATUS", Width: 15},
		{Title: "DESCRIPTION", Width: 50},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	ts.Selected = ts.Selected.
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color("62"))
	t.SetStyles(ts)

	m := &tuiModel{
		src:          src,
		path:         path,
		styles:       styles,
		keys:         defaultKeyMap(),
		help:         help.New(),
		table:        t,
		tickInterval: 2 * time.Second,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *tuiModel) Init() tea.Cmd {
	m.refresh()
	return tickCmd(m.tickInterval)
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Todo):
			m.setFilter(task.StatusTodo)
			return m, nil
		case key.Matches(msg, m.keys.InProgress):
			m.setFilter(task.StatusInProgress)
			return m, nil
		case key.Matches(msg, m.keys.Done):
			m.setFilter(task.StatusDone)
			return m, nil
		case key.Matches(msg, m.keys.ClearFilter):
			m.filtered = false
			m.applyFilter()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tickMsg:
		m.refresh()
		return m, tickCmd(m.tickInterval)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *tuiModel) View() string {
	var b strings.Builder
	writeTitle(&b, m.styles)
	writeOverview(&b, m.styles, m.counts)

	if m.filtered {
		b.WriteString(fmt.Sprintf("Filter: %s %s (0 to clear)\n\n", m.filter.Emoji(), m.filter))
	}

	if len(m.table.Rows()) == 0 {
		b.WriteString(m.styles.Notice.Render("🐾 No tasks found! Time to add some vibes~"))
		b.WriteString("\n\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n\n")
		if t, ok := m.selected(); ok {
			b.WriteString(m.styles.ForStatus(t.Status).Render(fmt.Sprintf("#%d %s", t.ID, t.Description)))
			b.WriteString("\n\n")
		}
	}

	writeFooter(&b, m.styles, m.path, m.loadedAt, m.tickInterval)
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *tuiModel) refresh() {
	m.tasks = m.src.Load()
	m.counts = task.Counts(m.tasks)
	m.loadedAt = time.Now()
	m.applyFilter()
}

func (m *tuiModel) setFilter(s task.Status) {
	m.filter = s
	m.filtered = true
	m.applyFilter()
}

func (m *tuiModel) visible() []task.Task {
	if !m.filtered {
		return m.tasks
	}
	return task.Filter(m.tasks, m.filter)
}

func (m *tuiModel) applyFilter() {
	visible := m.visible()
	rows := make([]table.Row, 0, len(visible))
	for _, t := range visible {
		rows = append(rows, table.Row{
			strconv.FormatUint(uint64(t.ID), 10),
			t.Status.Emoji() + " " + t.Status.String(),
			flatten(t.Description),
		})
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

func (m *tuiModel) selected() (task.Task, bool) {
	visible := m.visible()
	i := m.table.Cursor()
	if i < 0 || i >= len(visible) {
		return task.Task{}, false
	}
	return visible[i], true
}

func (m *tuiModel) resize(width, height int) {
	// Title, overview, filter, detail, footer and help take about 14 lines.
	m.table.SetHeight(max(height-14, 3))
	desc := max(width-6-15-8, 20)
	m.table.SetColumns([]table.Column{
		{Title: "ID", Width: 6},
		{Title: "STATUS", Width: 15},
		{Title: "DESCRIPTION", Width: desc},
	})
	m.help.Width = width
}

// flatten keeps a description on one table row.
func flatten(s string) string {
	return strings.NewReplacer("\r\n", " ⏎ ", "\n", " ⏎ ", "\r", " ", "\t", " ").Replace(s)
}

func writeTitle(b *strings.Builder, st Styles) {
	title := "trackr 😸"
	b.WriteString(st.Title.Render(title) + "\n")
	b.WriteString(st.Muted.Render(strings.Repeat("=", lipgloss.Width(title))) + "\n\n")
}

func writeOverview(b *strings.Builder, st Styles, counts map[task.Status]int) {
	parts := make([]string, 0, 3)
	for _, s := range task.Statuses() {
		parts = append(parts, st.ForStatus(s).Render(fmt.Sprintf("%s %s: %d", s.Emoji(), s, counts[s])))
	}
	b.WriteString("  " + strings.Join(parts, "   ") + "\n\n")
}

func writeFooter(b *strings.Builder, st Styles, path string, loadedAt time.Time, interval time.Duration) {
	b.WriteString(st.Muted.Render(fmt.Sprintf("%s | loaded %s | refreshing every %s",
		path, loadedAt.Format("15:04:05"), interval)))
	b.WriteString("\n")
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
