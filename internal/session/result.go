package session

// Result aggregates a completed session. Answers holds a record for every
// position that was submitted or skipped; trailing questions never visited
// have no record but still count toward Total.
type Result struct {
	Score          int
	Total          int
	ElapsedSeconds float64
	Answers        []AnswerRecord
}

// Percentage returns the score as a percentage of the run length.
func (result Result) Percentage() float64 {
	if result.Total == 0 {
		return 0
	}
	return float64(result.Score) / float64(result.Total) * 100
}

// Result returns the final score, the run length, and the elapsed time. It
// is only valid once the session is completed.
func (engine *Engine) Result() (Result, error) {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	if engine.status != Completed {
		return Result{}, &StateError{Op: "result", Status: engine.status}
	}

	elapsed := 0.0
	if !engine.state.startedAt.IsZero() {
		elapsed = engine.clock.Now().Sub(engine.state.startedAt).Seconds()
	}
	answers := make([]AnswerRecord, len(engine.state.answers))
	copy(answers, engine.state.answers)
	return Result{
		Score:          engine.state.score,
		Total:          len(engine.state.run),
		ElapsedSeconds: elapsed,
		Answers:        answers,
	}, nil
}
