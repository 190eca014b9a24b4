// Package burndown computes ideal and actual remaining-work series for a single task.
package burndown

import (
	"errors"
	"time"
)

// ErrEmptyInput indicates a burn-down was requested for a task with no logs.
var ErrEmptyInput = errors.New("no progress logs to compute a burn-down from")

// ProgressLog is one progress report for a task. Every entry of a task
// carries a copy of the same task window.
type ProgressLog struct {
	ID         string    `json:"id,omitempty"`
	TaskStart  time.Time `json:"task_start"`
	TaskEnd    time.Time `json:"task_end"`
	RecordedAt time.Time `json:"recorded_at"`
	Progress   float64   `json:"progress"` // cumulative percent complete at RecordedAt
}

// Point is a single point on a remaining-work curve.
type Point struct {
	Timestamp time.Time `json:"timestamp"`
	Remaining float64   `json:"remaining"` // percent of work left
}

// Result holds the ideal and actual remaining-work series for a task.
type Result struct {
	Ideal          []Point `json:"ideal"`
	Actual         []Point `json:"actual"`
	IdealVelocity  float64 `json:"ideal_velocity"`  // percent of work per working day
	ActualVelocity float64 `json:"actual_velocity"` // percent of work per working day
}

// Latest returns the most recent actual point.
func (r Result) Latest() (Point, bool) {
	if len(r.Actual) == 0 {
		return Point{}, false
	}
	return r.Actual[len(r.Actual)-1], true
}

// Progress returns the completion percentage at the latest actual point.
func (r Result) Progress() float64 {
	p, ok := r.Latest()
	if !ok {
		return 0
	}
	done := 100 - p.Remaining
	if done < 0 {
		return 0
	}
	return done
}

// Window returns the task window spanned by the ideal series.
func (r Result) Window() (start, end time.Time) {
	if len(r.Ideal) == 0 {
		return time.Time{}, time.Time{}
	}
	return r.Ideal[0].Timestamp, r.Ideal[len(r.Ideal)-1].Timestamp
}
