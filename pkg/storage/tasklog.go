package storage

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/felixgeelhaar/taskburn/pkg/domain"
	"gopkg.in/yaml.v3"
)

// DecodeTaskLog decodes a YAML or JSON task document and validates it
// against the task log schema. A bare list of records is accepted as a
// document without task metadata.
func DecodeTaskLog(data []byte, ext string) (*domain.TaskLog, error) {
	var doc interface{}
	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal task log: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal task log: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported task log format %q", ext)
	}

	if list, ok := doc.([]interface{}); ok {
		doc = map[string]interface{}{"logs": list}
	}

	if err := validateTaskLog(doc); err != nil {
		return nil, err
	}

	normalized, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize task log: %w", err)
	}
	var log domain.TaskLog
	if err := json.Unmarshal(normalized, &log); err != nil {
		return nil, fmt.Errorf("failed to unmarshal task log: %w", err)
	}
	return &log, nil
}
