package quiz

import (
	"fmt"
	"strconv"
	"strings"
)

// fmtInt converts an int to string.
func fmtInt(value int) string {
	return strconv.Itoa(value)
}

// formatPercentage renders a percentage with one decimal place.
func formatPercentage(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

// formatElapsed renders elapsed seconds with one decimal place.
func formatElapsed(seconds float64) string {
	return fmt.Sprintf("%.1fs", seconds)
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
		parts = append(parts, fmtInt(index+1)+") "+options[index])
	}
	return strings.Join(parts, ", ")
}

// truncate shortens text to fit a table column.
func truncate(text string, limit int) string {
	normalized := strings.Join(strings.Fields(text), " ")
	if limit <= 3 || len(normalized) <= limit {
		return normalized
	}
	return normalized[:limit-3] + "..."
}
