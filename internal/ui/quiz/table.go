package quiz

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"examen/internal/question"
	"examen/internal/session"
)

// newReviewTable builds the per-question review for the results screen.
func newReviewTable(run []question.Question, result session.Result, width int, noColor bool) table.Model {
	t := table.New(
		table.WithColumns(columnsForWidth(width)),
		table.WithRows(reviewRows(run, result)),
		table.WithFocused(true),
		table.WithHeight(tableHeight(len(result.Answers))),
	)
	t.SetStyles(tableStyles(noColor))
	return t
}

// tableStyles returns table styles for the results screen.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("33"))
	return styles
}

// tableHeight keeps short reviews compact.
func tableHeight(rows int) int {
	if rows < 1 {
		return 1
	}
	if rows > 12 {
		return 12
	}
	return rows
}

// columnsForWidth sizes the review columns for a terminal width.
func columnsForWidth(width int) []table.Column {
	questionWidth := width - 4 - 10 - 18 - 18 - 8
	if questionWidth < 16 {
		questionWidth = 16
	}
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Question", Width: questionWidth},
		{Title: "Outcome", Width: 10},
		{Title: "Your answer", Width: 18},
		{Title: "Correct", Width: 18},
	}
}

// reviewRows converts answer records into table rows. Unvisited questions
// have no record and therefore no row.
func reviewRows(run []question.Question, result session.Result) []table.Row {
	rows := make([]table.Row, 0, len(result.Answers))
	for _, record := range result.Answers {
		if record.Index < 0 || record.Index >= len(run) {
			continue
		}
		entry := run[record.Index]
		rows = append(rows, table.Row{
			fmtInt(record.Index + 1),
			truncate(entry.Prompt, 40),
			outcomeLabel(record),
			truncate(formatAnswerText(entry.Options, record.Chosen), 18),
			truncate(formatAnswerText(entry.Options, entry.CorrectIndices), 18),
		})
	}
	return rows
}

// outcomeLabel maps a record to its review label.
func outcomeLabel(record session.AnswerRecord) string {
	if record.Correct {
		return "correct"
	}
	if record.Skipped() {
		return "skipped"
	}
	return "incorrect"
}
