// Package quiz renders an interactive quiz session using Bubble Tea. The
// model pulls all session state from the engine; keystrokes translate into
// engine operations and the next view is re-read after each one.
package quiz

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"examen/internal/session"
)

// screen identifies which of the UI screens is active.
type screen int

const (
	screenQuestion screen = iota
	screenFeedback
	screenResults
)

// Options configures the interactive UI.
type Options struct {
	// Immediate shows correctness after every submission instead of only in
	// the final review.
	Immediate bool
	NoColor   bool
	// TickInterval drives the elapsed-time header refresh.
	TickInterval time.Duration
}

// Model is the Bubble Tea model for a quiz session.
type Model struct {
	engine *session.Engine
	opts   Options

	screen   screen
	view     session.View
	cursor   int
	selected map[int]struct{}
	notice   string

	lastView   session.View
	lastRecord session.AnswerRecord

	result session.Result
	table  table.Model

	startedAt time.Time
	now       time.Time
	width     int
	err       error
}

// NewModel constructs a model for a started engine.
func NewModel(engine *session.Engine, opts Options) Model {
	if opts.TickInterval <= 0 {
		opts.TickInterval = time.Second
	}
	model := Model{
		engine:    engine,
		opts:      opts,
		startedAt: time.Now(),
		now:       time.Now(),
		width:     80,
	}
	return model.syncView()
}

// Init starts the elapsed-time ticker.
func (m Model) Init() tea.Cmd {
	return tick(m.opts.TickInterval)
}

// tickMsg carries a clock tick for the header.
type tickMsg time.Time

// tick emits a periodic tick message.
func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update consumes keystrokes and timer ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		if m.screen == screenResults {
			m.table.SetWidth(typed.Width)
			m.table.SetColumns(columnsForWidth(typed.Width))
		}
		return m, nil
	case tickMsg:
		m.now = time.Time(typed)
		return m, tick(m.opts.TickInterval)
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

// handleKey dispatches a keystroke to the active screen.
func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.screen {
	case screenQuestion:
		return m.handleQuestionKey(key)
	case screenFeedback:
		return m.handleFeedbackKey(key)
	case screenResults:
		return m.handleResultsKey(key)
	}
	return m, nil
}

// handleQuestionKey applies a keystroke while a question is on screen.
func (m Model) handleQuestionKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.view.Question.Options)-1 {
			m.cursor++
		}
	case " ":
		m = m.toggle(m.cursor)
	case "enter":
		return m.submit()
	case "s":
		return m.skip()
	case "left", "p":
		if err := m.engine.Retreat(); err != nil {
			return m.fail(err)
		}
		return m.syncView(), nil
	case "right", "n":
		if err := m.engine.Advance(); err != nil {
			return m.fail(err)
		}
		return m.afterMove()
	case "f":
		if err := m.engine.FinishNow(); err != nil {
			return m.fail(err)
		}
		return m.showResults()
	case "q":
		return m, tea.Quit
	default:
		if index, ok := digitIndex(key.String()); ok && index < len(m.view.Question.Options) {
			m = m.toggle(index)
			m.cursor = index
		}
	}
	return m, nil
}

// handleFeedbackKey waits for acknowledgement before moving on.
func (m Model) handleFeedbackKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q":
		return m, tea.Quit
	default:
		if err := m.engine.Advance(); err != nil {
			return m.fail(err)
		}
		return m.afterMove()
	}
}

// handleResultsKey scrolls the review table or quits.
func (m Model) handleResultsKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q", "enter", "esc":
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(key)
	return m, cmd
}

// toggle flips an option in the working selection. Single-select questions
// replace the selection instead of accumulating.
func (m Model) toggle(index int) Model {
	selected := make(map[int]struct{}, len(m.selected)+1)
	for k := range m.selected {
		selected[k] = struct{}{}
	}
	if _, ok := selected[index]; ok {
		delete(selected, index)
	} else {
		if !m.view.MultiSelect {
			selected = map[int]struct{}{}
		}
		selected[index] = struct{}{}
	}
	m.selected = selected
	return m
}

// submit records the working selection and either shows feedback or moves on.
func (m Model) submit() (tea.Model, tea.Cmd) {
	record, err := m.engine.Submit(selectedIndices(m.selected))
	if err != nil {
		var choiceErr *session.ChoiceError
		if errors.As(err, &choiceErr) {
			m.notice = err.Error()
			return m, nil
		}
		return m.fail(err)
	}
	if m.opts.Immediate {
		m.lastView = m.view
		m.lastRecord = record
		m.screen = screenFeedback
		return m, nil
	}
	if err := m.engine.Advance(); err != nil {
		return m.fail(err)
	}
	return m.afterMove()
}

// skip records a skip and moves on without feedback.
func (m Model) skip() (tea.Model, tea.Cmd) {
	if _, err := m.engine.Submit(nil); err != nil {
		return m.fail(err)
	}
	if err := m.engine.Advance(); err != nil {
		return m.fail(err)
	}
	return m.afterMove()
}

// afterMove refreshes the view or switches to results when the run is done.
func (m Model) afterMove() (tea.Model, tea.Cmd) {
	if m.engine.Status() == session.Completed {
		return m.showResults()
	}
	return m.syncView(), nil
}

// syncView re-reads the current question and seeds the selection from any
// prior answer so revisits start from what was chosen before.
func (m Model) syncView() Model {
	view, err := m.engine.CurrentView()
	if err != nil {
		m.err = err
		return m
	}
	m.screen = screenQuestion
	m.view = view
	m.cursor = 0
	m.selected = make(map[int]struct{}, len(view.Chosen))
	for _, index := range view.Chosen {
		m.selected[index] = struct{}{}
	}
	return m
}

// showResults builds the review table and switches screens.
func (m Model) showResults() (tea.Model, tea.Cmd) {
	result, err := m.engine.Result()
	if err != nil {
		return m.fail(err)
	}
	m.result = result
	m.table = newReviewTable(m.engine.Run(), result, m.width, m.opts.NoColor)
	m.screen = screenResults
	return m, nil
}

// fail stores a fatal engine error and quits.
func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	m.err = err
	return m, tea.Quit
}

// Err returns the fatal error, if any, after the program exits.
func (m Model) Err() error {
	return m.err
}

// selectedIndices returns the working selection as a slice; order does not
// matter because the engine normalizes it.
func selectedIndices(selected map[int]struct{}) []int {
	if len(selected) == 0 {
		return nil
	}
	indices := make([]int, 0, len(selected))
	for index := range selected {
		indices = append(indices, index)
	}
	return indices
}

// digitIndex maps the keys 1-9 to option indices.
func digitIndex(key string) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}
	return int(key[0] - '1'), true
}
