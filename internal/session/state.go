package session

import (
	"time"

	"examen/internal/question"
)

// Status identifies the lifecycle state of a quiz session.
type Status int

const (
	// NotStarted means no run has been built yet.
	NotStarted Status = iota
	// InProgress means questions are being presented.
	InProgress
	// Completed means the position has reached the end of the run.
	Completed
)

// String returns a display label for the status.
func (status Status) String() string {
	switch status {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// AnswerRecord stores the outcome for one question in the run. Chosen is nil
// when the question was skipped; it is never an empty non-nil slice.
type AnswerRecord struct {
	Index   int
	Chosen  []int
	Correct bool
}

// Skipped reports whether the record holds no selection.
func (record AnswerRecord) Skipped() bool {
	return record.Chosen == nil
}

// state is the single unit of ownership for one run. Nothing outside the
// engine mutates it.
type state struct {
	run       []question.Question
	position  int
	answers   []AnswerRecord
	score     int
	startedAt time.Time
}

// recount returns the number of correct answer records. The cached score
// must always agree with it.
func (s *state) recount() int {
	count := 0
	for _, record := range s.answers {
		if record.Correct {
			count++
		}
	}
	return count
}
