package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/felixgeelhaar/taskburn/pkg/domain/burndown"
	"github.com/felixgeelhaar/taskburn/pkg/domain/calendar"
)

// LogRecord is a progress log entry as it appears in a task document.
type LogRecord struct {
	ID         string  `json:"id,omitempty" yaml:"id,omitempty"`
	StartTime  string  `json:"start_time" yaml:"start_time"`
	EndTime    string  `json:"end_time" yaml:"end_time"`
	RecordedAt string  `json:"recorded_at" yaml:"recorded_at"`
	Progress   float64 `json:"progress" yaml:"progress"`
}

// TaskLog is a task's progress history as stored on disk.
type TaskLog struct {
	Task  string      `json:"task" yaml:"task"`
	Title string      `json:"title,omitempty" yaml:"title,omitempty"`
	Logs  []LogRecord `json:"logs" yaml:"logs"`
}

// Entries converts the records into progress logs. Timestamps without an
// offset are read in loc.
func (t *TaskLog) Entries(loc *time.Location) ([]burndown.ProgressLog, error) {
	out := make([]burndown.ProgressLog, 0, len(t.Logs))
	for i, rec := range t.Logs {
		start, err := parseField(rec.StartTime, "start_time", loc)
		if err != nil {
			return nil, fmt.Errorf("log %d: %w", i, err)
		}
		end, err := parseField(rec.EndTime, "end_time", loc)
		if err != nil {
			return nil, fmt.Errorf("log %d: %w", i, err)
		}
		at, err := parseField(rec.RecordedAt, "recorded_at", loc)
		if err != nil {
			return nil, fmt.Errorf("log %d: %w", i, err)
		}
		out = append(out, burndown.ProgressLog{
			ID:         rec.ID,
			TaskStart:  start,
			TaskEnd:    end,
			RecordedAt: at,
			Progress:   rec.Progress,
		})
	}
	return out, nil
}

func parseField(value, field string, loc *time.Location) (time.Time, error) {
	t, err := calendar.ParseTime(value, loc)
	if err != nil {
		var dateErr *calendar.InvalidDateError
		if errors.As(err, &dateErr) {
			dateErr.Field = field
		}
		return time.Time{}, err
	}
	return t, nil
}

