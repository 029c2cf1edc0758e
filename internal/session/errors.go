package session

import (
	"errors"
	"fmt"
)

// ErrEmptyRun reports that no questions remain after shuffling and limiting.
var ErrEmptyRun = errors.New("session: run has no questions")

// StateError reports an operation invoked in the wrong lifecycle state.
type StateError struct {
	Op     string
	Status Status
}

// Error returns a readable message for a lifecycle violation.
func (err *StateError) Error() string {
	return fmt.Sprintf("session: %s is invalid while %s", err.Op, err.Status)
}

// ChoiceError reports a submitted index outside the current question's
// options.
type ChoiceError struct {
	Index   int
	Options int
}

// Error returns a readable message for an out-of-range selection.
func (err *ChoiceError) Error() string {
	return fmt.Sprintf("session: choice %d is out of range for %d options", err.Index, err.Options)
}
