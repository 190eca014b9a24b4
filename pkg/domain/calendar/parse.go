package calendar

import (
	"errors"
	"strings"
	"time"
)

var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
}

var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTime parses an ISO-8601 timestamp or date. Values without an offset
// are read in loc, or UTC when loc is nil.
func ParseTime(s string, loc *time.Location) (time.Time, error) {
	value := strings.TrimSpace(s)
	if value == "" {
		return time.Time{}, &InvalidDateError{Err: errors.New("empty value")}
	}
	if loc == nil {
		loc = time.UTC
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	var lastErr error
	for _, layout := range localLayouts {
		t, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, &InvalidDateError{Value: value, Err: lastErr}
}
