package config

// Config is the examen configuration schema.
type Config struct {
	Version int          `yaml:"version"`
	Quiz    QuizConfig   `yaml:"quiz"`
	UI      UIConfig     `yaml:"ui"`
	Output  OutputConfig `yaml:"output"`
}

// QuizConfig selects the question bank and run options.
type QuizConfig struct {
	// Questions is the bank path, relative to the config directory's parent.
	Questions string `yaml:"questions"`
	Shuffle   bool   `yaml:"shuffle"`
	// Limit truncates the run; 0 means unbounded.
	Limit int `yaml:"limit"`
	// Feedback is "immediate" (show correctness after each submit) or "end".
	Feedback string `yaml:"feedback"`
}

// UIConfig selects how sessions are presented.
type UIConfig struct {
	// Mode is auto, live, or plain.
	Mode    string `yaml:"mode"`
	NoColor bool   `yaml:"no_color"`
}

// OutputConfig controls result artifacts.
type OutputConfig struct {
	Dir  string `yaml:"dir"`
	Save *bool  `yaml:"save"`
}

// SaveResults reports whether result artifacts should be written. It
// defaults to true when the field is omitted.
func (cfg Config) SaveResults() bool {
	if cfg.Output.Save == nil {
		return true
	}
	return *cfg.Output.Save
}

// Feedback mode values accepted by QuizConfig.Feedback.
const (
	FeedbackImmediate = "immediate"
	FeedbackEnd       = "end"
)

// UI mode values accepted by UIConfig.Mode.
const (
	UIModeAuto  = "auto"
	UIModeLive  = "live"
	UIModePlain = "plain"
)
