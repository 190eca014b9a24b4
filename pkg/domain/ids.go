package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// idPattern matches valid ID formats: alphanumeric with dots, hyphens or underscores
var idPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// TaskID represents a validated task identifier.
type TaskID struct {
	value string
}

// NewTaskID creates a new TaskID from a string value.
// Returns an error if the value is invalid.
func NewTaskID(value string) (TaskID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return TaskID{}, fmt.Errorf("task ID cannot be empty")
	}
	if !idPattern.MatchString(value) || strings.Contains(value, "..") {
		return TaskID{}, fmt.Errorf("invalid task ID format: %s", value)
	}
	return TaskID{value: value}, nil
}

// MustTaskID creates a TaskID or panics if invalid. Use only in tests.
func MustTaskID(value string) TaskID {
	id, err := NewTaskID(value)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the string representation of the TaskID.
func (id TaskID) String() string {
	return id.value
}

// IsZero returns true if the TaskID is empty.
func (id TaskID) IsZero() bool {
	return id.value == ""
}
