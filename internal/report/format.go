package report

import "fmt"

// formatPercentage returns a percentage string for report output.
func formatPercentage(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// formatElapsed renders elapsed seconds for display.
func formatElapsed(seconds float64) string {
	return fmt.Sprintf("%.1fs", seconds)
}

// outcomeLabel returns the display label for a review outcome.
func outcomeLabel(review QuestionReview) string {
	switch {
	case review.Skipped:
		return "Skipped"
	case review.Correct:
		return "Correct"
	default:
		return "Incorrect"
	}
}
