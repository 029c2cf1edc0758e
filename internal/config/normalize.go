package config

import "strings"

// Normalize trims fields and fills defaults so validation and callers see a
// canonical config.
func Normalize(cfg *Config) {
	cfg.Quiz.Questions = strings.TrimSpace(cfg.Quiz.Questions)
	if cfg.Quiz.Questions == "" {
		cfg.Quiz.Questions = DefaultBankFile
	}
	cfg.Quiz.Feedback = strings.ToLower(strings.TrimSpace(cfg.Quiz.Feedback))
	if cfg.Quiz.Feedback == "" {
		cfg.Quiz.Feedback = FeedbackImmediate
	}
	cfg.UI.Mode = strings.ToLower(strings.TrimSpace(cfg.UI.Mode))
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = UIModeAuto
	}
	cfg.Output.Dir = strings.TrimSpace(cfg.Output.Dir)
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = DefaultOutputDir
	}
}
