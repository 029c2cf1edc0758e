package report

import "time"

// Result is the persisted outcome of one quiz session.
type Result struct {
	RunID          string           `json:"run_id"`
	Bank           string           `json:"bank"`
	StartedAt      time.Time        `json:"started_at"`
	FinishedAt     time.Time        `json:"finished_at"`
	Score          int              `json:"score"`
	Total          int              `json:"total"`
	Percentage     float64          `json:"percentage"`
	ElapsedSeconds float64          `json:"elapsed_seconds"`
	Questions      []QuestionReview `json:"questions"`
}

// QuestionReview records the outcome for one visited question. Chosen is
// null in JSON when the question was skipped.
type QuestionReview struct {
	ID             string   `json:"id,omitempty"`
	Question       string   `json:"question"`
	Options        []string `json:"options"`
	Chosen         []int    `json:"chosen"`
	CorrectIndices []int    `json:"correct_indices"`
	Correct        bool     `json:"correct"`
	Skipped        bool     `json:"skipped"`
	Explanation    string   `json:"explanation,omitempty"`
}
