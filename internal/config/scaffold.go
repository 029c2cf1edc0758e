package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfigTemplate = `version: 1
quiz:
  questions: %q
  shuffle: false
  limit: 0
  feedback: "immediate"

ui:
  mode: "auto"
  no_color: false

output:
  dir: ".examen/results"
  save: true
`

const sampleBank = `- id: sets
  question: "Which call removes an arbitrary element from a set?"
  options: ["s.pop()", "s.remove()", "s.discard()"]
  answer_index: 0
  explanation: "remove() and discard() need a specific element."

- id: imports
  question: "Which statements import the path helpers? (pick 2)"
  options: ["import os.path", "include os.path", "from os import path"]
  answer_index: [0, 2]

- id: slices
  question: "What does this print?"
  code: "data = [1, 2, 3]\nprint(data[::-1])"
  options: ["[3, 2, 1]", "[1, 2, 3]", "a TypeError"]
  answer_index: 0
`

// Scaffold writes the default config and, when the bank file is missing, a
// starter question bank. The config references bankFile relative to the
// project root. It reports whether the bank file was written.
func Scaffold(configPath, bankPath, bankFile string) (bool, error) {
	if configPath == "" {
		return false, fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(configPath); err == nil {
		if info.IsDir() {
			return false, fmt.Errorf("config path %q is a directory", configPath)
		}
		return false, fmt.Errorf("config file already exists at %q", configPath)
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	if bankFile == "" {
		bankFile = DefaultBankFile
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return false, fmt.Errorf("create config dir: %w", err)
	}
	content := fmt.Sprintf(defaultConfigTemplate, bankFile)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		return false, fmt.Errorf("write config file: %w", err)
	}

	if bankPath == "" {
		return false, nil
	}
	if _, err := os.Stat(bankPath); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat bank file: %w", err)
	}
	if err := os.WriteFile(bankPath, []byte(sampleBank), 0o644); err != nil {
		return false, fmt.Errorf("write bank file: %w", err)
	}
	return true, nil
}
