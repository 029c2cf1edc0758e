package quiz

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"examen/internal/session"
)

// Run drives a started engine through the interactive UI and returns the
// result. Quitting mid-run finishes the session early so a result always
// exists.
func Run(engine *session.Engine, opts Options) (session.Result, error) {
	program := tea.NewProgram(NewModel(engine, opts), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return session.Result{}, fmt.Errorf("run ui: %w", err)
	}
	if model, ok := final.(Model); ok && model.Err() != nil {
		return session.Result{}, model.Err()
	}
	if engine.Status() == session.InProgress {
		if err := engine.FinishNow(); err != nil {
			return session.Result{}, err
		}
	}
	return engine.Result()
}
