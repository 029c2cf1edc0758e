package report

import (
	"time"

	"examen/internal/question"
	"examen/internal/session"
)

// Build assembles a persistable result from a completed session. The run
// slice must be the session's run in order; questions never visited are
// excluded from the review but stay in the total.
func Build(runID, bankPath string, run []question.Question, outcome session.Result, finishedAt time.Time) Result {
	reviews := make([]QuestionReview, 0, len(outcome.Answers))
	for _, record := range outcome.Answers {
		if record.Index < 0 || record.Index >= len(run) {
			continue
		}
		entry := run[record.Index]
		reviews = append(reviews, QuestionReview{
			ID:             entry.ID,
			Question:       entry.Prompt,
			Options:        entry.Options,
			Chosen:         record.Chosen,
			CorrectIndices: entry.CorrectIndices,
			Correct:        record.Correct,
			Skipped:        record.Skipped(),
			Explanation:    entry.Explanation,
		})
	}

	elapsed := time.Duration(outcome.ElapsedSeconds * float64(time.Second))
	return Result{
		RunID:          runID,
		Bank:           bankPath,
		StartedAt:      finishedAt.Add(-elapsed),
		FinishedAt:     finishedAt,
		Score:          outcome.Score,
		Total:          outcome.Total,
		Percentage:     outcome.Percentage(),
		ElapsedSeconds: outcome.ElapsedSeconds,
		Questions:      reviews,
	}
}
