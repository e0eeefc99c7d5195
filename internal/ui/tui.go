// Package ui provides an optional terminal interface for browsing a task
// list.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	todotxt "github.com/nibzard/todotxt-go"
)

type filter int

const (
	filterAll filter = iota
	filterIncomplete
	filterComplete
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	priorityStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	completeStyle = lipgloss.NewStyle().Faint(true)
	contextStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	projectStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// RunTUI starts the task list viewer over the given todo.txt file. The
// file is re-read on a steady tick and on demand, so edits made elsewhere
// show up while the viewer is open.
func RunTUI(ctx context.Context, path string) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	model := newTUIModel(path)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

type tuiModel struct {
	path         string
	loadErr      error
	tasks        []todotxt.Task
	filter       filter
	showHelp     bool
	tickInterval time.Duration
}

type tickMsg time.Time

func newTUIModel(path string) *tuiModel {
	return &tuiModel{
		path:         path,
		tickInterval: time.Second,
	}
}

func (m *tuiModel) Init() tea.Cmd {
	m.refresh()
	return tickCmd(m.tickInterval)
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r", "f5":
			m.refresh()
			return m, nil
		case "h", "?":
			m.showHelp = !m.showHelp
			return m, nil
		case "1":
			m.filter = filterIncomplete
			return m, nil
		case "2":
			m.filter = filterComplete
			return m, nil
		case "0":
			m.filter = filterAll
			return m, nil
		}
	case tickMsg:
		m.refresh()
		return m, tickCmd(m.tickInterval)
	}

	return m, nil
}

func (m *tuiModel) View() string {
	var b strings.Builder
	writeTitle(&b, m.path)

	if m.showHelp {
		writeHelp(&b)
		writeFooter(&b, m.tickInterval)
		return b.String()
	}

	if m.loadErr != nil {
		b.WriteString(errorStyle.Render("Error reading task list:") + "\n")
		b.WriteString("  " + m.loadErr.Error() + "\n\n")
		writeFooter(&b, m.tickInterval)
		return b.String()
	}

	shown := m.filteredTasks()
	writeOverview(&b, m.tasks, m.filter)
	writeTasks(&b, shown)
	writeFooter(&b, m.tickInterval)
	return b.String()
}

func (m *tuiModel) refresh() {
	data, err := os.ReadFile(m.path)
	if err != nil {
		m.loadErr = err
		m.tasks = nil
		return
	}
	m.loadErr = nil
	// Clone decouples each task from the file buffer, which is replaced
	// on every refresh.
	m.tasks = m.tasks[:0]
	it := todotxt.Tasks(string(data))
	for task, ok := it.Next(); ok; task, ok = it.Next() {
		m.tasks = append(m.tasks, task.Clone())
	}
}

func (m *tuiModel) filteredTasks() []todotxt.Task {
	if m.filter == filterAll {
		return m.tasks
	}
	var filtered []todotxt.Task
	for _, task := range m.tasks {
		if task.IsComplete() == (m.filter == filterComplete) {
			filtered = append(filtered, task)
		}
	}
	return filtered
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func writeTitle(b *strings.Builder, path string) {
	b.WriteString(titleStyle.Render("todotxt — "+path) + "\n\n")
}

func writeOverview(b *strings.Builder, tasks []todotxt.Task, f filter) {
	complete := 0
	for _, task := range tasks {
		if task.IsComplete() {
			complete++
		}
	}
	b.WriteString(fmt.Sprintf("  Open: %d  Done: %d\n", len(tasks)-complete, complete))
	switch f {
	case filterIncomplete:
		b.WriteString("  Filter: open (0 to clear)\n")
	case filterComplete:
		b.WriteString("  Filter: done (0 to clear)\n")
	}
	b.WriteString("\n")
}

func writeTasks(b *strings.Builder, tasks []todotxt.Task) {
	if len(tasks) == 0 {
		b.WriteString("  No tasks.\n\n")
		return
	}
	for _, task := range tasks {
		b.WriteString(formatTask(task))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func formatTask(task todotxt.Task) string {
	var b strings.Builder
	b.WriteString("  ")
	if task.IsComplete() {
		b.WriteString("x ")
	} else {
		b.WriteString("· ")
	}
	if p := task.Priority(); p != nil {
		b.WriteString(priorityStyle.Render(p.String()) + " ")
	}
	if d := task.CreationDate(); d != nil {
		b.WriteString(d.String() + " ")
	}

	line := renderDescription(task)
	if task.IsComplete() {
		line = completeStyle.Render(line)
	}
	b.WriteString(line)
	return b.String()
}

// renderDescription styles the tag words of a description in place,
// driven by the tag iterator's spans.
func renderDescription(task todotxt.Task) string {
	description := task.Description()

	var b strings.Builder
	last := 0
	tags := task.Tags()
	for tag, ok := tags.Next(); ok; tag, ok = tags.Next() {
		b.WriteString(description[last:tag.Start])
		word := tag.In(description)
		switch tag.Kind {
		case todotxt.TagContext:
			b.WriteString(contextStyle.Render(word))
		case todotxt.TagProject:
			b.WriteString(projectStyle.Render(word))
		default:
			b.WriteString(word)
		}
		last = tag.End
	}
	b.WriteString(description[last:])
	return b.String()
}

func writeHelp(b *strings.Builder) {
	b.WriteString("Keyboard Shortcuts\n\n")
	b.WriteString("  q, ctrl+c    Quit\n")
	b.WriteString("  r, F5        Refresh now\n")
	b.WriteString("  h, ?         Toggle this help screen\n")
	b.WriteString("  1            Show open tasks only\n")
	b.WriteString("  2            Show done tasks only\n")
	b.WriteString("  0            Clear filter\n\n")
}

func writeFooter(b *strings.Builder, interval time.Duration) {
	b.WriteString(fmt.Sprintf("Press h for help | q to quit | Refreshing every %s\n", interval))
}

// IsTTY returns true if the writer is a terminal.
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
