package ui

import (
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/newsbrief/internal/digest"
)

// fetchDoneMsg carries the aggregation result back into the program.
type fetchDoneMsg struct {
	items []digest.Item
}

// spinnerModel shows a spinner until the aggregation finishes.
type spinnerModel struct {
	spinner     spinner.Model
	run         func() []digest.Item
	items       []digest.Item
	interrupted bool
	done        bool
}

func newSpinnerModel(run func() []digest.Item) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Line
	return spinnerModel{spinner: s, run: run}
}

func (m spinnerModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg { return fetchDoneMsg{items: m.run()} },
	)
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fetchDoneMsg:
		m.items = msg.items
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			m.interrupted = true
			return m, tea.Quit
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m spinnerModel) View() string {
	if m.done || m.interrupted {
		return ""
	}
	return SpinnerMessage.Render("Fetching news feeds...") + " " + m.spinner.View()
}

// FetchWithSpinner runs the aggregation behind an animated spinner.
// The spinner is cosmetic: it draws on stderr, never alters results,
// and any program failure falls back to calling run directly.
// interrupted reports a user cancel (Ctrl-C), which callers treat as
// a clean exit.
func FetchWithSpinner(run func() []digest.Item) (items []digest.Item, interrupted bool) {
	p := tea.NewProgram(newSpinnerModel(run), tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return run(), false
	}

	m, ok := final.(spinnerModel)
	if !ok {
		return run(), false
	}
	if m.interrupted {
		return nil, true
	}
	return m.items, false
}
