package burndown

import (
	"sort"

	"github.com/felixgeelhaar/taskburn/pkg/domain/calendar"
)

// Projector turns progress logs into burn-down series, measuring time in
// working days on its calendar.
type Projector struct {
	cal calendar.DayClassifier
}

// NewProjector creates a projector that measures time on cal.
func NewProjector(cal calendar.DayClassifier) *Projector {
	if cal == nil {
		cal = calendar.Default()
	}
	return &Projector{cal: cal}
}

// Compute computes a burn-down on the default business calendar.
func Compute(logs []ProgressLog) (*Result, error) {
	return NewProjector(calendar.Default()).Compute(logs)
}

// Compute builds the ideal and actual series and their velocities.
//
// The chronologically first log is a seed row and is discarded whenever more
// than one log exists. All values are rounded to one decimal and never
// negative.
func (p *Projector) Compute(logs []ProgressLog) (*Result, error) {
	if len(logs) == 0 {
		return nil, ErrEmptyInput
	}
	for _, l := range logs {
		if err := validate(l); err != nil {
			return nil, err
		}
	}

	sorted := make([]ProgressLog, len(logs))
	copy(sorted, logs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RecordedAt.Before(sorted[j].RecordedAt)
	})
	if len(sorted) > 1 {
		sorted = sorted[1:]
	}

	last := sorted[len(sorted)-1]
	ideal := dedupe(p.Project([]ProgressLog{
		{TaskStart: last.TaskStart, TaskEnd: last.TaskEnd, RecordedAt: last.TaskStart, Progress: 0},
		{TaskStart: last.TaskStart, TaskEnd: last.TaskEnd, RecordedAt: last.TaskEnd, Progress: 100},
	}))

	actual := make([]Point, 0, len(sorted))
	for _, l := range sorted {
		actual = append(actual, Point{Timestamp: l.RecordedAt, Remaining: 100 - l.Progress})
	}
	actual = dedupe(actual)

	idealVelocity := p.velocity(ideal)
	actualVelocity := 0.0
	if len(actual) > 2 {
		actualVelocity = p.velocity(actual)
	}

	return &Result{
		Ideal:          normalize(ideal),
		Actual:         normalize(actual),
		IdealVelocity:  round(idealVelocity),
		ActualVelocity: round(actualVelocity),
	}, nil
}

// Project folds ordered samples into a remaining-work curve that starts at
// 100% on the task start and decays linearly, in working days, toward zero
// at the task end. Each accepted sample re-anchors the decay: its slope
// depends on the remaining work and remaining time as of the previous point.
// Samples recorded outside the task window are skipped. The returned points
// are neither rounded nor deduplicated.
func (p *Projector) Project(samples []ProgressLog) []Point {
	if len(samples) == 0 {
		return nil
	}

	first := samples[0]
	prior := Point{Timestamp: first.TaskStart, Remaining: 100}
	points := []Point{prior}

	for _, s := range samples {
		if s.RecordedAt.Before(s.TaskStart) || s.RecordedAt.After(s.TaskEnd) {
			continue
		}

		next := Point{Timestamp: s.RecordedAt, Remaining: prior.Remaining}
		duration := calendar.WorkingDaysBetween(p.cal, prior.Timestamp, s.TaskEnd)
		if duration > 0 {
			rate := prior.Remaining / duration
			elapsed := calendar.WorkingDaysBetween(p.cal, prior.Timestamp, s.RecordedAt)
			next.Remaining = prior.Remaining - rate*elapsed
		}

		points = append(points, next)
		prior = next
	}
	return points
}

// velocity is the total work done over the total working time of a series.
func (p *Projector) velocity(points []Point) float64 {
	if len(points) < 2 {
		return 0
	}

	var work, days float64
	for i := 1; i < len(points); i++ {
		work += (100 - points[i].Remaining) - (100 - points[i-1].Remaining)
		days += calendar.WorkingDaysBetween(p.cal, points[i-1].Timestamp, points[i].Timestamp)
	}
	if days == 0 {
		return 0
	}
	return work / days
}

func validate(l ProgressLog) error {
	switch {
	case l.TaskStart.IsZero():
		return &calendar.InvalidDateError{Field: "task_start", Value: l.ID}
	case l.TaskEnd.IsZero():
		return &calendar.InvalidDateError{Field: "task_end", Value: l.ID}
	case l.RecordedAt.IsZero():
		return &calendar.InvalidDateError{Field: "recorded_at", Value: l.ID}
	}
	return nil
}
