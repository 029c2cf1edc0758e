package plain

import (
	"fmt"
	"strconv"
	"strings"

	"examen/internal/question"
	"examen/internal/session"
)

type commandKind int

const (
	commandAnswer commandKind = iota
	commandSkip
	commandPrev
	commandFinish
)

type command struct {
	kind    commandKind
	choices []int
}

// parseCommand interprets one input line. Selections are 1-based option
// numbers separated by commas or spaces.
func parseCommand(line string) (command, error) {
	trimmed := strings.TrimSpace(strings.ToLower(line))
	switch trimmed {
	case "s", "skip":
		return command{kind: commandSkip}, nil
	case "p", "prev", "previous":
		return command{kind: commandPrev}, nil
	case "f", "finish":
		return command{kind: commandFinish}, nil
	case "":
		return command{}, fmt.Errorf("enter option numbers, s, p, or f")
	}

	fields := strings.FieldsFunc(trimmed, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	choices := make([]int, 0, len(fields))
	for _, field := range fields {
		number, err := strconv.Atoi(field)
		if err != nil {
			return command{}, fmt.Errorf("not an option number: %q", field)
		}
		choices = append(choices, number-1)
	}
	if len(choices) == 0 {
		return command{}, fmt.Errorf("enter option numbers, s, p, or f")
	}
	return command{kind: commandAnswer, choices: choices}, nil
}

// indentCode prefixes every code line for display.
func indentCode(code string) string {
	lines := strings.Split(code, "\n")
	for i, line := range lines {
		lines[i] = "    " + line
	}
	return strings.Join(lines, "\n")
}

// formatAnswerText joins option texts for a set of indices.
func formatAnswerText(options []string, indices []int) string {
	parts := make([]string, 0, len(indices))
	for _, index := range indices {
		if index < 0 || index >= len(options) {
			continue
		}
		parts = append(parts, fmt.Sprintf("%d) %s", index+1, options[index]))
	}
	return strings.Join(parts, ", ")
}

// reviewLines renders the per-question outcome list for the final summary.
func reviewLines(run []question.Question, result session.Result) []string {
	lines := make([]string, 0, len(result.Answers))
	for _, record := range result.Answers {
		if record.Index < 0 || record.Index >= len(run) {
			continue
		}
		entry := run[record.Index]
		label := "incorrect"
		if record.Correct {
			label = "correct"
		} else if record.Skipped() {
			label = "skipped"
		}
		line := fmt.Sprintf("%d. [%s] %s", record.Index+1, label, entry.Prompt)
		if !record.Correct {
			if !record.Skipped() {
				line += fmt.Sprintf(" | your answer: %s", formatAnswerText(entry.Options, record.Chosen))
			}
			line += fmt.Sprintf(" | correct: %s", formatAnswerText(entry.Options, entry.CorrectIndices))
		}
		lines = append(lines, line)
	}
	return lines
}

// containsIndex reports membership in a selection.
func containsIndex(indices []int, index int) bool {
	for _, candidate := range indices {
		if candidate == index {
			return true
		}
	}
	return false
}
