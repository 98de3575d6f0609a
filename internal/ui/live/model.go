package live

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model renders a live grading console UI using Bubble Tea.
type Model struct {
	state   State
	table   table.Model
	spinner spinner.Model
	events  <-chan Event
	now     time.Time
	noColor bool
}

// Options configures the live UI model.
type Options struct {
	NoColor bool
}

// NewModel constructs a live UI model for an event stream.
func NewModel(events <-chan Event, opts Options) Model {
	t := table.New(
		table.WithColumns(defaultColumns()),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	if !opts.NoColor {
		s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	}
	return Model{
		table:   t,
		spinner: s,
		events:  events,
		now:     time.Now(),
		noColor: opts.NoColor,
	}
}

// Init starts the spinner and waits for the first event.
func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForEvent(m.events), m.spinner.Tick)
}

// Update consumes UI events and spinner ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetWidth(typed.Width)
		m.table.SetHeight(maxInt(typed.Height-4, 1))
		return m, nil
	case EventMsg:
		m.state = Reduce(m.state, typed.Event)
		m.table.SetRows(rowsForState(m.state))
		return m, waitForEvent(m.events)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(typed)
		m.now = time.Now()
		return m, cmd
	}
	return m, nil
}

// View renders the live UI.
func (m Model) View() string {
	header := renderHeader(m.state, m.now, m.spinner.View(), m.noColor)
	summary := renderSummary(m.state, m.noColor)
	footer := renderFooter(m.state, m.noColor)
	return lipgloss.JoinVertical(lipgloss.Left, header, summary, m.table.View(), footer)
}

// EventMsg wraps a UI event for Bubble Tea.
type EventMsg struct {
	Event Event
}

// waitForEvent blocks until a UI event is available.
func waitForEvent(events <-chan Event) tea.Cmd {
	return func() tea.Msg {
		if events == nil {
			return nil
		}
		event, ok := <-events
		if !ok {
			return tea.Quit()
		}
		return EventMsg{Event: event}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// renderHeader renders the run header line.
func renderHeader(state State, now time.Time, spinnerView string, noColor bool) string {
	elapsed := ""
	if !state.StartedAt.IsZero() {
		elapsed = now.Sub(state.StartedAt).Round(100 * time.Millisecond).String()
	}
	line := "Grading " + state.RunID
	if state.Root != "" {
		line += " | Root: " + state.Root
	}
	if state.Phase != "" {
		line += " | Phase: " + state.Phase
	}
	if elapsed != "" {
		line += " | Elapsed: " + elapsed
	}
	if !state.Finished {
		line = spinnerView + " " + line
	}
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderSummary renders the status counts line.
func renderSummary(state State, noColor bool) string {
	counts := state.Counts
	line := fmt.Sprintf("Selected: %d Extracted: %d Incomplete: %d",
		counts.Selected, counts.Extracted, counts.Incomplete)
	return stylize(line, noColor, lipgloss.Color("242"))
}

// renderFooter renders the final score once the run has finished.
func renderFooter(state State, noColor bool) string {
	if !state.Finished {
		return ""
	}
	line := fmt.Sprintf("Score: %.2f / %.2f", state.Awarded, state.Max)
	return stylize(line, noColor, lipgloss.Color("244"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
