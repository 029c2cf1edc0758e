package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"

	"examen/internal/cli"
)

// featureState holds scenario state for cucumber CLI tests.
type featureState struct {
	projectDir    string
	previousWD    string
	previousStdin *os.File
	stdout        bytes.Buffer
	stderr        bytes.Buffer
	exitCode      int
	initialized   bool
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a project with a valid question bank$`, state.aProjectWithValidBank)
	ctx.Step(`^an empty project directory$`, state.anEmptyProjectDirectory)
	ctx.Step(`^the question bank is invalid$`, state.theQuestionBankIsInvalid)
	ctx.Step(`^I will answer with:$`, state.iWillAnswerWith)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the output lists these commands:$`, state.theOutputListsCommands)
	ctx.Step(`^the output contains "([^"]*)"$`, state.theOutputContains)
	ctx.Step(`^the exit code is zero$`, state.theExitCodeIsZero)
	ctx.Step(`^the exit code is non-zero$`, state.theExitCodeIsNonZero)
	ctx.Step(`^the error message mentions "([^"]*)"$`, state.theErrorMessageMentions)
}

// reset clears buffers and resets state before each scenario.
func (s *featureState) reset() {
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
	s.initialized = false
}

// cleanup restores stdin, the working directory, and temporary files.
func (s *featureState) cleanup() {
	if s.previousStdin != nil {
		os.Stdin = s.previousStdin
		s.previousStdin = nil
	}
	if s.previousWD != "" {
		_ = os.Chdir(s.previousWD)
		s.previousWD = ""
	}
	if s.projectDir != "" {
		_ = os.RemoveAll(s.projectDir)
		s.projectDir = ""
	}
}

// anEmptyProjectDirectory creates a bare temp project and chdirs into it.
func (s *featureState) anEmptyProjectDirectory() error {
	if s.initialized {
		return nil
	}
	dir, err := os.MkdirTemp("", "examen-feature-*")
	if err != nil {
		return fmt.Errorf("create temp project: %w", err)
	}
	s.projectDir = dir
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working dir: %w", err)
	}
	s.previousWD = wd
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("chdir: %w", err)
	}
	s.initialized = true
	return nil
}

// aProjectWithValidBank scaffolds a config and a three-question bank.
func (s *featureState) aProjectWithValidBank() error {
	if err := s.anEmptyProjectDirectory(); err != nil {
		return err
	}
	configPath := filepath.Join(s.projectDir, ".examen", "config.yml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(validConfigYAML()), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return s.writeBank(validBankYAML())
}

// theQuestionBankIsInvalid replaces the bank with a malformed one.
func (s *featureState) theQuestionBankIsInvalid() error {
	return s.writeBank(invalidBankYAML())
}

// iWillAnswerWith scripts stdin for the next command.
func (s *featureState) iWillAnswerWith(script *godog.DocString) error {
	reader, writer, err := os.Pipe()
	if err != nil {
		return fmt.Errorf("create stdin pipe: %w", err)
	}
	content := script.Content
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	if _, err := writer.WriteString(content); err != nil {
		return fmt.Errorf("write stdin script: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close stdin writer: %w", err)
	}
	if s.previousStdin == nil {
		s.previousStdin = os.Stdin
	}
	os.Stdin = reader
	return nil
}

// iRunCommand runs the CLI in-process and records the exit code.
func (s *featureState) iRunCommand(command string) error {
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "examen" {
		args = args[1:]
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}

func (s *featureState) theOutputListsCommands(table *godog.Table) error {
	output := s.stdout.String()
	for _, row := range table.Rows {
		for _, cell := range row.Cells {
			command := strings.TrimSpace(cell.Value)
			if command == "" {
				continue
			}
			if !strings.Contains(output, command) {
				return fmt.Errorf("expected command %q in output", command)
			}
		}
	}
	return nil
}

func (s *featureState) theOutputContains(expected string) error {
	if !strings.Contains(s.stdout.String(), expected) {
		return fmt.Errorf("expected %q in output, got:\n%s", expected, s.stdout.String())
	}
	return nil
}

func (s *featureState) theExitCodeIsZero() error {
	if s.exitCode != 0 {
		return fmt.Errorf("expected zero exit code, got %d (stderr: %s)", s.exitCode, s.stderr.String())
	}
	return nil
}

func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected non-zero exit code")
	}
	return nil
}

func (s *featureState) theErrorMessageMentions(expected string) error {
	if !strings.Contains(s.stderr.String(), expected) {
		return fmt.Errorf("expected %q in error output, got %q", expected, s.stderr.String())
	}
	return nil
}

// writeBank writes the question bank referenced by the scenario config.
func (s *featureState) writeBank(contents string) error {
	if s.projectDir == "" {
		return fmt.Errorf("project dir is not set")
	}
	bankPath := filepath.Join(s.projectDir, "questions.yml")
	if err := os.WriteFile(bankPath, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("write bank: %w", err)
	}
	return nil
}

func validConfigYAML() string {
	return `version: 1
quiz:
  questions: "questions.yml"
  feedback: "end"

ui:
  mode: "auto"
  no_color: true
`
}

func validBankYAML() string {
	return `- id: q1
  question: "Pick a"
  options: ["a", "b", "c"]
  answer_index: 0

- id: q2
  question: "Pick a & c"
  options: ["a", "b", "c"]
  answer_index: [0, 2]

- id: q3
  question: "Pick b"
  options: ["a", "b", "c"]
  answer_index: 1
`
}

func invalidBankYAML() string {
	return `- id: q1
  question: "No options"
  options: []
  answer_index: 0

- id: q2
  question: "Out of range"
  options: ["a", "b"]
  answer_index: [0, 5]
`
}
