package storage

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const taskLogSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["logs"],
  "properties": {
    "task": { "type": "string" },
    "title": { "type": "string" },
    "logs": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["start_time", "end_time", "recorded_at", "progress"],
        "properties": {
          "id": { "type": "string" },
          "start_time": { "type": "string", "minLength": 1 },
          "end_time": { "type": "string", "minLength": 1 },
          "recorded_at": { "type": "string", "minLength": 1 },
          "progress": { "type": "number" }
        }
      }
    }
  }
}`

var (
	taskLogSchemaLoader = gojsonschema.NewStringLoader(taskLogSchemaJSON)
)

// SchemaError reports every schema violation found in a task document.
type SchemaError struct {
	Path   string
	Issues []string
}

func (e *SchemaError) Error() string {
	where := "task log"
	if e.Path != "" {
		where = e.Path
	}
	return fmt.Sprintf("invalid %s: %s", where, strings.Join(e.Issues, "; "))
}

func validateTaskLog(doc interface{}) error {
	result, err := gojsonschema.Validate(taskLogSchemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("failed to validate task log: %w", err)
	}
	if result.Valid() {
		return nil
	}

	issues := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		issues = append(issues, desc.String())
	}
	return &SchemaError{Issues: issues}
}
