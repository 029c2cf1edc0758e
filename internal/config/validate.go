package config

import (
	"fmt"
	"strings"
)

// ValidationError reports one or more config validation issues.
type ValidationError struct {
	Issues []string
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	return fmt.Sprintf("config validation failed: %s", strings.Join(err.Issues, "; "))
}

// Validate checks a normalized config.
func Validate(cfg *Config) error {
	var issues []string
	if cfg.Version == 0 {
		issues = append(issues, "version: is required")
	} else if cfg.Version != 1 {
		issues = append(issues, fmt.Sprintf("version: unsupported version %d", cfg.Version))
	}
	if cfg.Quiz.Limit < 0 {
		issues = append(issues, fmt.Sprintf("quiz.limit: must not be negative, got %d", cfg.Quiz.Limit))
	}
	switch cfg.Quiz.Feedback {
	case FeedbackImmediate, FeedbackEnd:
	default:
		issues = append(issues, fmt.Sprintf("quiz.feedback: invalid value %q (expected immediate|end)", cfg.Quiz.Feedback))
	}
	switch cfg.UI.Mode {
	case UIModeAuto, UIModeLive, UIModePlain:
	default:
		issues = append(issues, fmt.Sprintf("ui.mode: invalid value %q (expected auto|live|plain)", cfg.UI.Mode))
	}
	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
