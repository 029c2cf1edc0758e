package session

import "examen/internal/question"

// View is the renderer-facing snapshot of the current question. Renderers
// pull views and feed selections back; the engine never calls out.
type View struct {
	Index       int
	Total       int
	Question    question.Question
	MultiSelect bool
	Answered    bool
	Chosen      []int
}
