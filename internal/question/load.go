package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads, parses, and validates a question bank file. The bank is a list
// of question objects in JSON or YAML, dispatched on the file extension.
func Load(path string) ([]Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	questions, err := parseBank(data, path)
	if err != nil {
		return nil, err
	}
	normalized, err := Normalize(questions)
	if err != nil {
		return nil, err
	}
	return normalized, nil
}

func parseBank(data []byte, path string) ([]Question, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		return parseJSONBank(data)
	}
	return parseYAMLBank(data)
}

func parseJSONBank(data []byte) ([]Question, error) {
	var questions []Question
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&questions); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return questions, nil
}

func parseYAMLBank(data []byte) ([]Question, error) {
	var questions []Question
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&questions); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return questions, nil
}
