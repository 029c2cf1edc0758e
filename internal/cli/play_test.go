package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const playTestBank = `- id: q1
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

// scaffoldProject writes a config and bank under a temp root and returns the
// root and config path.
func scaffoldProject(t *testing.T) (string, string) {
	t.Helper()
	root := t.TempDir()
	configDir := filepath.Join(root, ".examen")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	configPath := filepath.Join(configDir, "config.yml")
	payload := "version: 1\nquiz:\n  questions: \"bank.yml\"\n"
	if err := os.WriteFile(configPath, []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "bank.yml"), []byte(playTestBank), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	return root, configPath
}

// playArgs prefixes the common play arguments for a scaffolded project.
func playArgs(configPath string, extra ...string) []string {
	args := []string{"play", "--config", configPath, "--ui", "plain", "--no-color"}
	return append(args, extra...)
}

// TestPlayScriptedSessionSavesArtifacts verifies a full plain-mode session
// scores, saves, and reports artifact paths.
func TestPlayScriptedSessionSavesArtifacts(t *testing.T) {
	root, configPath := scaffoldProject(t)
	playInput = strings.NewReader("1\n1,3\ns\n")
	t.Cleanup(func() { playInput = nil })

	var stdout, stderr bytes.Buffer
	code := Run(playArgs(configPath), &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected ok exit, got %d (stderr: %s)", code, stderr.String())
	}
	output := stdout.String()
	if !strings.Contains(output, "Score: 2/3") {
		t.Fatalf("expected score line, got:\n%s", output)
	}
	if !strings.Contains(output, "Results: ") || !strings.Contains(output, "Report: ") {
		t.Fatalf("expected artifact paths, got:\n%s", output)
	}

	resultsDir := filepath.Join(root, ".examen", "results")
	entries, err := os.ReadDir(resultsDir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected one run dir, got %v (err: %v)", entries, err)
	}
	runDir := filepath.Join(resultsDir, entries[0].Name())
	for _, name := range []string{"results.json", "report.html"} {
		if _, err := os.Stat(filepath.Join(runDir, name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
}

// TestPlayNoSave verifies --no-save leaves no artifacts behind.
func TestPlayNoSave(t *testing.T) {
	root, configPath := scaffoldProject(t)
	playInput = strings.NewReader("1\n1\n1\n")
	t.Cleanup(func() { playInput = nil })

	var stdout, stderr bytes.Buffer
	code := Run(playArgs(configPath, "--no-save"), &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected ok exit, got %d (stderr: %s)", code, stderr.String())
	}
	if strings.Contains(stdout.String(), "Results: ") {
		t.Fatalf("expected no artifact paths, got:\n%s", stdout.String())
	}
	if _, err := os.Stat(filepath.Join(root, ".examen", "results")); !os.IsNotExist(err) {
		t.Fatalf("expected no results dir, stat err: %v", err)
	}
}

// TestPlayLimitOverride verifies --limit trims the run.
func TestPlayLimitOverride(t *testing.T) {
	_, configPath := scaffoldProject(t)
	playInput = strings.NewReader("1\n")
	t.Cleanup(func() { playInput = nil })

	var stdout, stderr bytes.Buffer
	code := Run(playArgs(configPath, "--limit", "1", "--no-save"), &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected ok exit, got %d (stderr: %s)", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Question 1 of 1") {
		t.Fatalf("expected limited run, got:\n%s", stdout.String())
	}
	if !strings.Contains(stdout.String(), "Score: 1/1") {
		t.Fatalf("expected full score, got:\n%s", stdout.String())
	}
}

// TestPlaySeedIsDeterministic verifies seeded shuffles replay identically.
func TestPlaySeedIsDeterministic(t *testing.T) {
	_, configPath := scaffoldProject(t)

	play := func() string {
		playInput = strings.NewReader("s\ns\ns\n")
		t.Cleanup(func() { playInput = nil })
		var stdout, stderr bytes.Buffer
		code := Run(playArgs(configPath, "--shuffle", "--seed", "7", "--no-save"), &stdout, &stderr)
		if code != ExitOK {
			t.Fatalf("expected ok exit, got %d (stderr: %s)", code, stderr.String())
		}
		return stdout.String()
	}

	trimScore := func(output string) string {
		if at := strings.Index(output, "Score:"); at >= 0 {
			return output[:at]
		}
		return output
	}
	first := play()
	second := play()
	if trimScore(first) != trimScore(second) {
		t.Fatalf("expected identical seeded runs:\n%s\n---\n%s", first, second)
	}
}

// TestPlayInvalidUIMode verifies bad --ui values fail with usage.
func TestPlayInvalidUIMode(t *testing.T) {
	_, configPath := scaffoldProject(t)
	var stdout, stderr bytes.Buffer
	code := Run([]string{"play", "--config", configPath, "--ui", "fancy"}, &stdout, &stderr)
	if code != ExitUsage {
		t.Fatalf("expected usage exit, got %d", code)
	}
	if !strings.Contains(stderr.String(), "invalid ui mode") {
		t.Fatalf("expected ui mode error, got %q", stderr.String())
	}
}

// TestPlayMissingBank verifies a missing bank fails before any session.
func TestPlayMissingBank(t *testing.T) {
	root, configPath := scaffoldProject(t)
	if err := os.Remove(filepath.Join(root, "bank.yml")); err != nil {
		t.Fatalf("remove bank: %v", err)
	}
	var stdout, stderr bytes.Buffer
	code := Run(playArgs(configPath), &stdout, &stderr)
	if code != ExitError {
		t.Fatalf("expected error exit, got %d", code)
	}
	if !strings.Contains(stderr.String(), "not found") {
		t.Fatalf("expected not-found message, got %q", stderr.String())
	}
}

// TestPlayEmptyBank verifies a bank with no questions is rejected.
func TestPlayEmptyBank(t *testing.T) {
	root := t.TempDir()
	configDir := filepath.Join(root, ".examen")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	configPath := filepath.Join(configDir, "config.yml")
	payload := "version: 1\nquiz:\n  questions: \"bank.yml\"\n"
	if err := os.WriteFile(configPath, []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "bank.yml"), []byte("[]\n"), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := Run(playArgs(configPath), &stdout, &stderr)
	if code != ExitError {
		t.Fatalf("expected error exit, got %d", code)
	}
}
