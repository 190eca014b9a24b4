package cli

import (
	"errors"
	"fmt"

	"github.com/felixgeelhaar/taskburn/pkg/domain/burndown"
	"github.com/felixgeelhaar/taskburn/pkg/domain/calendar"
	"github.com/felixgeelhaar/taskburn/pkg/storage"
)

// CLIError wraps domain errors with user-facing messages and actionable hints.
type CLIError struct {
	Message  string
	Hint     string
	Err      error
	ExitCode int
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a CLIError with a default exit code of 1.
func NewCLIError(msg, hint string, err error) *CLIError {
	return &CLIError{
		Message:  msg,
		Hint:     hint,
		Err:      err,
		ExitCode: 1,
	}
}

// MapError converts known domain errors into CLIErrors with actionable hints.
// Unmapped errors are returned as-is.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	var schemaErr *storage.SchemaError
	if errors.As(err, &schemaErr) {
		return &CLIError{
			Message:  "task log does not match the expected format",
			Hint:     "Each log needs start_time, end_time, recorded_at and a numeric progress",
			Err:      err,
			ExitCode: 2,
		}
	}

	var dateErr *calendar.InvalidDateError
	if errors.As(err, &dateErr) {
		hint := "Use ISO-8601 dates such as 2024-03-04 or 2024-03-04T09:00:00Z"
		if dateErr.Field != "" {
			hint = fmt.Sprintf("Fix the %s value. %s", dateErr.Field, hint)
		}
		return &CLIError{Message: "invalid date", Hint: hint, Err: err, ExitCode: 2}
	}

	switch {
	case errors.Is(err, storage.ErrNotInitialized):
		return NewCLIError("workspace not initialized", "Run 'taskburn init' to create .taskburn/", err)
	case errors.Is(err, storage.ErrTaskNotFound):
		return NewCLIError("task not found", "Run 'taskburn tasks' to list available tasks", err)
	case errors.Is(err, burndown.ErrEmptyInput):
		return NewCLIError("task has no progress logs", "Record at least one progress entry in the task log", err)
	}

	return err
}
