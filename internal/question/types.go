package question

// Question is a single multiple-choice entry loaded from a question bank.
// CorrectIndices is normalized during load: sorted, deduplicated, and
// guaranteed to reference valid options.
type Question struct {
	ID             string   `json:"id,omitempty" yaml:"id,omitempty"`
	Prompt         string   `json:"question" yaml:"question"`
	Code           string   `json:"code,omitempty" yaml:"code,omitempty"`
	Options        []string `json:"options" yaml:"options"`
	CorrectIndices IndexSet `json:"answer_index" yaml:"answer_index"`
	Explanation    string   `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

// MultiSelect reports whether the question expects more than one selection.
func (q Question) MultiSelect() bool {
	return len(q.CorrectIndices) > 1
}
