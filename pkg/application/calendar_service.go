package application

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/felixgeelhaar/taskburn/pkg/domain/calendar"
)

// CalendarService exposes business calendar queries on string inputs.
type CalendarService struct {
	cal    *calendar.Calendar
	logger *slog.Logger
}

func NewCalendarService(cal *calendar.Calendar, logger *slog.Logger) *CalendarService {
	if cal == nil {
		cal = calendar.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CalendarService{cal: cal, logger: logger}
}

func (s *CalendarService) parse(field, value string) (time.Time, error) {
	t, err := calendar.ParseTime(value, s.cal.Location())
	if err != nil {
		var dateErr *calendar.InvalidDateError
		if errors.As(err, &dateErr) {
			dateErr.Field = field
		}
		return time.Time{}, err
	}
	return t, nil
}

// Classify describes the civil day of date.
func (s *CalendarService) Classify(date string) (calendar.DayInfo, error) {
	t, err := s.parse("date", date)
	if err != nil {
		return calendar.DayInfo{}, err
	}
	return s.cal.Classify(t), nil
}

// IsBusinessDay reports whether date is a working day. Unparseable input is
// never a business day.
func (s *CalendarService) IsBusinessDay(date string) bool {
	t, err := s.parse("date", date)
	if err != nil {
		s.logger.Debug("treating invalid date as non-business day", "value", date, "error", err)
		return false
	}
	return s.cal.IsBusinessDay(t)
}

// AddBusinessDays moves n business days forward from date.
func (s *CalendarService) AddBusinessDays(date string, n int) (time.Time, error) {
	t, err := s.parse("date", date)
	if err != nil {
		return time.Time{}, err
	}
	return s.cal.AddBusinessDays(t, n)
}

// SubtractBusinessDays moves n business days back from date.
func (s *CalendarService) SubtractBusinessDays(date string, n int) (time.Time, error) {
	t, err := s.parse("date", date)
	if err != nil {
		return time.Time{}, err
	}
	return s.cal.SubtractBusinessDays(t, n)
}

// BusinessHours counts the business hours from one instant to another.
func (s *CalendarService) BusinessHours(from, to string) (int, error) {
	t1, err := s.parse("from", from)
	if err != nil {
		return 0, err
	}
	t2, err := s.parse("to", to)
	if err != nil {
		return 0, err
	}
	return s.cal.BusinessHoursBetween(t1, t2)
}

// DaysAndHours summarises the business time between two instants. It
// returns nil when either input is missing or invalid.
func (s *CalendarService) DaysAndHours(from, to string) *calendar.BusinessSpan {
	t1, err := s.parse("from", from)
	if err != nil {
		return nil
	}
	t2, err := s.parse("to", to)
	if err != nil {
		return nil
	}
	return s.cal.BusinessDaysAndHours(t1, t2)
}

// Holidays returns the holiday table for year, optionally restricted to one
// scope. An empty scope returns every holiday.
func (s *CalendarService) Holidays(year int, scope calendar.Scope) ([]calendar.Holiday, error) {
	if year < 1583 || year > 9999 {
		return nil, fmt.Errorf("year %d outside the Gregorian range", year)
	}
	if scope != "" && !scope.IsValid() {
		names := make([]string, 0, len(calendar.AllScopes()))
		for _, sc := range calendar.AllScopes() {
			names = append(names, string(sc))
		}
		return nil, fmt.Errorf("unknown holiday scope %q (expected %s)", scope, strings.Join(names, ", "))
	}

	all := calendar.HolidaysForYear(year)
	if scope == "" {
		return all, nil
	}
	filtered := make([]calendar.Holiday, 0, len(all))
	for _, h := range all {
		if h.Scope == scope {
			filtered = append(filtered, h)
		}
	}
	return filtered, nil
}
