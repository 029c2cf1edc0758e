package question

import (
	"fmt"
	"strings"
)

// Issue captures a single validation problem in a question bank.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues. The whole bank is
// rejected when any entry is malformed; broken entries are never skipped
// silently.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question bank validation failed: %s", strings.Join(parts, "; "))
}

// NotFoundError reports a question bank file that does not exist.
type NotFoundError struct {
	Path string
}

// Error returns a readable message for a missing bank.
func (err *NotFoundError) Error() string {
	return fmt.Sprintf("question bank %q not found", err.Path)
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Normalize validates a loaded bank and returns it with trimmed prompts and
// normalized correct-index sets. Option text is left untouched because
// options may be code snippets with significant leading whitespace.
func Normalize(questions []Question) ([]Question, error) {
	collector := &issueCollector{}
	if len(questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}

	seenIDs := map[string]struct{}{}
	for i, entry := range questions {
		prefix := fmt.Sprintf("questions[%d]", i)

		entry.ID = strings.TrimSpace(entry.ID)
		if entry.ID != "" {
			if _, exists := seenIDs[entry.ID]; exists {
				collector.add(prefix+".id", fmt.Sprintf("duplicate id %q", entry.ID))
			} else {
				seenIDs[entry.ID] = struct{}{}
			}
		}

		entry.Prompt = strings.TrimSpace(entry.Prompt)
		if entry.Prompt == "" {
			collector.add(prefix+".question", "is required")
		}

		if len(entry.Options) == 0 {
			collector.add(prefix+".options", "must include at least one entry")
		} else {
			for optionIndex, option := range entry.Options {
				if strings.TrimSpace(option) == "" {
					collector.add(fmt.Sprintf("%s.options[%d]", prefix, optionIndex), "is required")
				}
			}
		}

		entry.CorrectIndices = entry.CorrectIndices.Normalize()
		if len(entry.CorrectIndices) == 0 {
			collector.add(prefix+".answer_index", "must include at least one entry")
		} else {
			for _, index := range entry.CorrectIndices {
				if index < 0 || index >= len(entry.Options) {
					collector.add(prefix+".answer_index", fmt.Sprintf("index %d is out of range for %d options", index, len(entry.Options)))
				}
			}
		}

		entry.Explanation = strings.TrimSpace(entry.Explanation)
		questions[i] = entry
	}

	if err := collector.result(); err != nil {
		return nil, err
	}
	return questions, nil
}
