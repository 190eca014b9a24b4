package burndown

import (
	"time"

	"github.com/felixgeelhaar/taskburn/pkg/domain/calendar"
)

// Status indicates how the latest actual point compares to the ideal curve.
type Status string

const (
	// StatusAhead indicates less work remains than the ideal curve expects.
	StatusAhead Status = "ahead"
	// StatusOnTrack indicates the actual and ideal curves are within tolerance.
	StatusOnTrack Status = "on_track"
	// StatusBehind indicates more work remains than the ideal curve expects.
	StatusBehind Status = "behind"
	// StatusUnknown indicates there is no actual data to compare.
	StatusUnknown Status = "unknown"
)

// StatusTolerance is the gap, in percentage points of remaining work, within
// which a task counts as on track.
const StatusTolerance = 5.0

// Assessment compares the latest actual point against the ideal curve.
type Assessment struct {
	Status        Status    `json:"status"`
	At            time.Time `json:"at"`
	Actual        float64   `json:"actual_remaining"`
	Expected      float64   `json:"expected_remaining"`
	Gap           float64   `json:"gap"` // actual minus expected; positive means behind
	WorkingDaysTo float64   `json:"working_days_to_end"`
}

// Assess compares the latest actual point of r with the ideal curve at the
// same instant.
func (p *Projector) Assess(r *Result) Assessment {
	if r == nil {
		return Assessment{Status: StatusUnknown}
	}
	latest, ok := r.Latest()
	if !ok || len(r.Ideal) == 0 {
		return Assessment{Status: StatusUnknown}
	}

	expected := round(p.remainingAt(r.Ideal, latest.Timestamp))
	_, end := r.Window()
	a := Assessment{
		At:            latest.Timestamp,
		Actual:        latest.Remaining,
		Expected:      expected,
		Gap:           latest.Remaining - expected,
		WorkingDaysTo: calendar.WorkingDaysBetween(p.cal, latest.Timestamp, end),
	}
	switch {
	case a.Gap > StatusTolerance:
		a.Status = StatusBehind
	case a.Gap < -StatusTolerance:
		a.Status = StatusAhead
	default:
		a.Status = StatusOnTrack
	}
	return a
}

// remainingAt interpolates a series at t in working days. Instants outside
// the series are clamped to its ends.
func (p *Projector) remainingAt(points []Point, t time.Time) float64 {
	if len(points) == 0 {
		return 0
	}
	if !t.After(points[0].Timestamp) {
		return points[0].Remaining
	}
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		if t.After(b.Timestamp) {
			continue
		}
		span := calendar.WorkingDaysBetween(p.cal, a.Timestamp, b.Timestamp)
		if span <= 0 {
			return b.Remaining
		}
		frac := calendar.WorkingDaysBetween(p.cal, a.Timestamp, t) / span
		return a.Remaining + (b.Remaining-a.Remaining)*frac
	}
	return points[len(points)-1].Remaining
}
