package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// RenderHTML renders the report page into a string.
func RenderHTML(result Result) (string, error) {
	var builder strings.Builder
	if err := reportPage(result).Render(context.Background(), &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}

// reportPage builds the full HTML document for a saved result.
func reportPage(result Result) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!DOCTYPE html><html><head><meta charset=\"utf-8\"><title>Quiz report "+templ.EscapeString(result.RunID)+"</title>"+reportStyles+"</head><body>"); err != nil {
			return err
		}
		if err := summarySection(result).Render(ctx, w); err != nil {
			return err
		}
		for number, review := range result.Questions {
			if err := reviewSection(number+1, review).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}

// summarySection renders the score header.
func summarySection(result Result) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			"<h1>Quiz report</h1><p class=\"meta\">Run %s | Bank %s</p><p class=\"summary\">Score %d/%d (%s) in %s</p>",
			templ.EscapeString(result.RunID),
			templ.EscapeString(result.Bank),
			result.Score,
			result.Total,
			formatPercentage(result.Percentage),
			formatElapsed(result.ElapsedSeconds),
		)
		return err
	})
}

// reviewSection renders one answered question with its outcome.
func reviewSection(number int, review QuestionReview) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, "<div class=\"question %s\"><h2>%d. %s</h2>",
			outcomeClass(review), number, templ.EscapeString(review.Question)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "<p class=\"outcome\">%s</p>", templ.EscapeString(outcomeLabel(review))); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "<ol class=\"options\">"); err != nil {
			return err
		}
		for index, option := range review.Options {
			class := optionClass(review, index)
			if _, err := fmt.Fprintf(w, "<li class=%q>%s</li>", class, templ.EscapeString(option)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</ol>"); err != nil {
			return err
		}
		if review.Explanation != "" {
			if _, err := fmt.Fprintf(w, "<p class=\"explanation\">%s</p>", templ.EscapeString(review.Explanation)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</div>")
		return err
	})
}

// outcomeClass maps a review to its CSS class.
func outcomeClass(review QuestionReview) string {
	switch {
	case review.Skipped:
		return "skipped"
	case review.Correct:
		return "correct"
	default:
		return "incorrect"
	}
}

// optionClass marks options that were correct or chosen.
func optionClass(review QuestionReview, index int) string {
	correct := containsIndex(review.CorrectIndices, index)
	chosen := containsIndex(review.Chosen, index)
	switch {
	case correct && chosen:
		return "option hit"
	case correct:
		return "option missed"
	case chosen:
		return "option wrong"
	default:
		return "option"
	}
}

func containsIndex(indices []int, index int) bool {
	for _, candidate := range indices {
		if candidate == index {
			return true
		}
	}
	return false
}

const reportStyles = `<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; }
.meta { color: #666; }
.summary { font-size: 1.2rem; }
.question { border-left: 4px solid #ccc; padding-left: 1rem; margin: 1.5rem 0; }
.question.correct { border-color: #2a2; }
.question.incorrect { border-color: #c22; }
.question.skipped { border-color: #999; }
.option.hit { color: #2a2; font-weight: bold; }
.option.missed { color: #2a2; }
.option.wrong { color: #c22; text-decoration: line-through; }
.explanation { background: #f6f6f6; padding: 0.5rem; }
</style>`
