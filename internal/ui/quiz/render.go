package quiz

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"examen/internal/session"
)

// View renders the active screen.
func (m Model) View() string {
	if m.err != nil {
		return stylize("error: "+m.err.Error(), m.opts.NoColor, lipgloss.Color("196")) + "\n"
	}
	switch m.screen {
	case screenFeedback:
		return m.renderFeedback()
	case screenResults:
		return m.renderResults()
	default:
		return m.renderQuestion()
	}
}

// renderQuestion renders the question screen.
func (m Model) renderQuestion() string {
	header := m.renderHeader()
	prompt := m.view.Question.Prompt
	sections := []string{header, "", prompt}
	if m.view.Question.Code != "" {
		sections = append(sections, stylize(indentCode(m.view.Question.Code), m.opts.NoColor, lipgloss.Color("252")))
	}
	if m.view.MultiSelect {
		hint := "(select " + fmtInt(len(m.view.Question.CorrectIndices)) + " options)"
		sections = append(sections, stylize(hint, m.opts.NoColor, lipgloss.Color("246")))
	}
	sections = append(sections, "")
	for index, option := range m.view.Question.Options {
		sections = append(sections, m.renderOption(index, option))
	}
	sections = append(sections, "", m.renderFooter())
	if m.notice != "" {
		sections = append(sections, stylize(m.notice, m.opts.NoColor, lipgloss.Color("220")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

// renderOption renders one option row with cursor and selection markers.
func (m Model) renderOption(index int, option string) string {
	cursor := "  "
	if index == m.cursor {
		cursor = "> "
	}
	marker := "[ ]"
	if _, ok := m.selected[index]; ok {
		marker = "[x]"
	}
	line := cursor + marker + " " + fmtInt(index+1) + ") " + option
	if index == m.cursor {
		return stylize(line, m.opts.NoColor, lipgloss.Color("33"))
	}
	return line
}

// renderHeader renders the progress and elapsed-time line.
func (m Model) renderHeader() string {
	elapsed := m.now.Sub(m.startedAt).Round(time.Second)
	if elapsed < 0 {
		elapsed = 0
	}
	line := "Question " + fmtInt(m.view.Index+1) + " of " + fmtInt(m.view.Total) +
		" | Elapsed: " + elapsed.String()
	if m.view.Answered {
		line += " | answered"
	}
	return stylize(line, m.opts.NoColor, lipgloss.Color("33"))
}

// renderFooter renders the key help line.
func (m Model) renderFooter() string {
	help := "1-9/space select · enter submit · s skip · ←/→ navigate · f finish · q quit"
	return stylize(help, m.opts.NoColor, lipgloss.Color("242"))
}

// renderFeedback renders the post-submission feedback screen.
func (m Model) renderFeedback() string {
	var verdict string
	if m.lastRecord.Correct {
		verdict = stylize("Correct!", m.opts.NoColor, lipgloss.Color("42"))
	} else if m.lastRecord.Skipped() {
		verdict = stylize("Skipped.", m.opts.NoColor, lipgloss.Color("246"))
	} else {
		verdict = stylize("Incorrect.", m.opts.NoColor, lipgloss.Color("220"))
	}
	sections := []string{m.renderHeader(), "", m.lastView.Question.Prompt, "", verdict}
	if !m.lastRecord.Correct {
		answer := "Correct answer: " + formatAnswerText(m.lastView.Question.Options, m.lastView.Question.CorrectIndices)
		sections = append(sections, stylize(answer, m.opts.NoColor, lipgloss.Color("42")))
	}
	if m.lastView.Question.Explanation != "" {
		sections = append(sections, "", stylize(m.lastView.Question.Explanation, m.opts.NoColor, lipgloss.Color("244")))
	}
	sections = append(sections, "", stylize("press any key to continue", m.opts.NoColor, lipgloss.Color("242")))
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

// renderResults renders the final score and the review table.
func (m Model) renderResults() string {
	score := "Score: " + fmtInt(m.result.Score) + "/" + fmtInt(m.result.Total) +
		" (" + formatPercentage(m.result.Percentage()) + ") in " + formatElapsed(m.result.ElapsedSeconds)
	header := stylize(score, m.opts.NoColor, scoreColor(m.result))
	footer := stylize("↑/↓ scroll · q quit", m.opts.NoColor, lipgloss.Color("242"))
	return lipgloss.JoinVertical(lipgloss.Left, header, "", m.table.View(), "", footer) + "\n"
}

// scoreColor picks the summary color from the outcome.
func scoreColor(result session.Result) lipgloss.Color {
	if result.Total > 0 && result.Score == result.Total {
		return lipgloss.Color("42")
	}
	if result.Score == 0 {
		return lipgloss.Color("220")
	}
	return lipgloss.Color("33")
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
