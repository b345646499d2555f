package receipt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ItemStartedMsg marks the item now being sent to FBS.
type ItemStartedMsg struct {
	ID string
}

// ItemFinishedMsg carries the outcome of the current item.
type ItemFinishedMsg struct {
	Item Item
}

// DoneMsg ends the program.
type DoneMsg struct{}

// Progress shows a running FBS session: the items answered so far and a
// spinner on the item in flight, e.g. "Checkout 2/3 5011".
type Progress struct {
	spinner  spinner.Model
	styles   styles
	label    string
	total    int
	started  int
	current  string
	finished []Item
	done     bool
}

// NewProgress returns the view of a session of total items. A total below
// two shows the label alone.
func NewProgress(label string, total int) Progress {
	s := newStyles()
	return Progress{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(s.spinner)),
		styles:  s,
		label:   label,
		total:   total,
	}
}

func (p Progress) Init() tea.Cmd {
	return p.spinner.Tick
}

func (p Progress) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd
	case ItemStartedMsg:
		p.started++
		p.current = msg.ID
		return p, nil
	case ItemFinishedMsg:
		p.finished = append(p.finished, msg.Item)
		p.current = ""
		return p, nil
	case DoneMsg:
		p.done = true
		return p, tea.Quit
	default:
		return p, nil
	}
}

// View is empty once done; the receipt is printed afterwards.
func (p Progress) View() string {
	if p.done {
		return ""
	}

	lines := make([]string, 0, len(p.finished)+1)
	for _, item := range p.finished {
		lines = append(lines, itemLine(item, RenderOptions{}, p.styles))
	}

	status := []string{p.spinner.View(), p.label}
	if p.total > 1 && p.started > 0 {
		status = append(status, p.styles.counter.Render(fmt.Sprintf("%d/%d", p.started, p.total)))
	}
	if p.current != "" {
		status = append(status, p.styles.item.Render(p.current))
	}
	lines = append(lines, strings.Join(status, " "))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Finished returns the items answered so far.
func (p Progress) Finished() []Item {
	return p.finished
}
