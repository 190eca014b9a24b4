package burndown

import (
	"testing"
	"time"
)

func TestAssess(t *testing.T) {
	start, end := day(2024, time.March, 4), day(2024, time.March, 18)
	tests := []struct {
		name     string
		progress float64
		want     Status
	}{
		{"on track", 40, StatusOnTrack},
		{"behind", 10, StatusBehind},
		{"ahead", 80, StatusAhead},
	}

	p := NewProjector(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := p.Compute([]ProgressLog{
				entry(start, end, start, 0),
				entry(start, end, day(2024, time.March, 8), tt.progress),
			})
			if err != nil {
				t.Fatalf("Compute failed: %v", err)
			}

			a := p.Assess(result)
			if a.Status != tt.want {
				t.Errorf("Status = %s, want %s (%+v)", a.Status, tt.want, a)
			}
			if a.Expected != 60 {
				t.Errorf("Expected = %v, want 60", a.Expected)
			}
			if a.WorkingDaysTo != 6 {
				t.Errorf("WorkingDaysTo = %v, want 6", a.WorkingDaysTo)
			}
		})
	}
}

func TestAssess_NoData(t *testing.T) {
	p := NewProjector(everyDay{})
	if got := p.Assess(nil).Status; got != StatusUnknown {
		t.Fatalf("Assess(nil) = %s", got)
	}
	if got := p.Assess(&Result{}).Status; got != StatusUnknown {
		t.Fatalf("Assess(empty) = %s", got)
	}
}

func TestResult_Progress(t *testing.T) {
	r := Result{Actual: []Point{{Remaining: 70}, {Remaining: 25}}}
	if got := r.Progress(); got != 75 {
		t.Fatalf("Progress() = %v, want 75", got)
	}
	if got := (Result{}).Progress(); got != 0 {
		t.Fatalf("empty Progress() = %v, want 0", got)
	}
}
