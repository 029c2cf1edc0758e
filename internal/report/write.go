package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Paths locates the artifacts written for one run.
type Paths struct {
	Dir string
}

// ResultsPath returns the results JSON location.
func (paths Paths) ResultsPath() string {
	return filepath.Join(paths.Dir, "results.json")
}

// ReportPath returns the HTML report location.
func (paths Paths) ReportPath() string {
	return filepath.Join(paths.Dir, "report.html")
}

// Write persists the results JSON and the HTML report under
// <outputDir>/<run-id>/.
func Write(outputDir string, result Result) (Paths, error) {
	paths := Paths{Dir: filepath.Join(outputDir, result.RunID)}
	if err := os.MkdirAll(paths.Dir, 0o755); err != nil {
		return Paths{}, fmt.Errorf("create run dir: %w", err)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return Paths{}, fmt.Errorf("encode results: %w", err)
	}
	if err := os.WriteFile(paths.ResultsPath(), append(data, '\n'), 0o644); err != nil {
		return Paths{}, fmt.Errorf("write results: %w", err)
	}

	html, err := RenderHTML(result)
	if err != nil {
		return Paths{}, fmt.Errorf("render report: %w", err)
	}
	if err := os.WriteFile(paths.ReportPath(), []byte(html), 0o644); err != nil {
		return Paths{}, fmt.Errorf("write report: %w", err)
	}
	return paths, nil
}

// Load reads a results JSON file back.
func Load(path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read results: %w", err)
	}
	var result Result
	if err := json.Unmarshal(data, &result); err != nil {
		return Result{}, fmt.Errorf("parse results: %w", err)
	}
	return result, nil
}
