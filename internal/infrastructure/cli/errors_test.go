package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/felixgeelhaar/taskburn/pkg/domain/burndown"
	"github.com/felixgeelhaar/taskburn/pkg/domain/calendar"
	"github.com/felixgeelhaar/taskburn/pkg/storage"
)

func TestCLIError(t *testing.T) {
	t.Run("Error with cause", func(t *testing.T) {
		cause := errors.New("root cause")
		e := NewCLIError("something failed", "try this", cause)
		if e.Error() != "something failed: root cause" {
			t.Fatalf("unexpected: %s", e.Error())
		}
		if e.ExitCode != 1 {
			t.Fatalf("expected exit code 1, got %d", e.ExitCode)
		}
	})

	t.Run("Error without cause", func(t *testing.T) {
		e := NewCLIError("something failed", "try this", nil)
		if e.Error() != "something failed" {
			t.Fatalf("unexpected: %s", e.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("root")
		e := NewCLIError("msg", "", cause)
		if !errors.Is(e, cause) {
			t.Fatal("errors.Is should match wrapped cause")
		}
	})
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantHint string
		wantCode int
		wantCLI  bool
	}{
		{
			name: "nil returns nil",
			err:  nil,
		},
		{
			name:     "ErrNotInitialized",
			err:      storage.ErrNotInitialized,
			wantHint: "Run 'taskburn init' to create .taskburn/",
			wantCode: 1,
			wantCLI:  true,
		},
		{
			name:     "wrapped ErrTaskNotFound",
			err:      fmt.Errorf("%w: api-1", storage.ErrTaskNotFound),
			wantHint: "Run 'taskburn tasks' to list available tasks",
			wantCode: 1,
			wantCLI:  true,
		},
		{
			name:     "ErrEmptyInput",
			err:      fmt.Errorf("burndown for x: %w", burndown.ErrEmptyInput),
			wantHint: "Record at least one progress entry in the task log",
			wantCode: 1,
			wantCLI:  true,
		},
		{
			name:     "InvalidDateError",
			err:      fmt.Errorf("log 2: %w", &calendar.InvalidDateError{Field: "recorded_at", Value: "x"}),
			wantHint: "Fix the recorded_at value. Use ISO-8601 dates such as 2024-03-04 or 2024-03-04T09:00:00Z",
			wantCode: 2,
			wantCLI:  true,
		},
		{
			name:     "SchemaError",
			err:      &storage.SchemaError{Path: "a.yaml", Issues: []string{"logs: is required"}},
			wantHint: "Each log needs start_time, end_time, recorded_at and a numeric progress",
			wantCode: 2,
			wantCLI:  true,
		},
		{
			name: "unmapped error passes through",
			err:  errors.New("something else"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MapError(tt.err)
			if tt.err == nil {
				if result != nil {
					t.Fatal("expected nil")
				}
				return
			}
			if !tt.wantCLI {
				if result != tt.err {
					t.Fatal("unmapped error should pass through unchanged")
				}
				return
			}
			var cliErr *CLIError
			if !errors.As(result, &cliErr) {
				t.Fatalf("expected CLIError, got %T", result)
			}
			if cliErr.Hint != tt.wantHint {
				t.Fatalf("hint = %q, want %q", cliErr.Hint, tt.wantHint)
			}
			if cliErr.ExitCode != tt.wantCode {
				t.Fatalf("exit code = %d, want %d", cliErr.ExitCode, tt.wantCode)
			}
			if !errors.Is(cliErr, tt.err) {
				t.Fatal("CLIError should wrap original error")
			}
		})
	}
}
