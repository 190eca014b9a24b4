package calendar

import (
	"fmt"
	"math"
	"sync"
	"time"
)

// DayClassifier decides whether a calendar day is a working day.
type DayClassifier interface {
	IsBusinessDay(t time.Time) bool
}

// DayInfo describes how a single calendar day is classified.
type DayInfo struct {
	Date     time.Time `json:"date"`
	Weekend  bool      `json:"weekend"`
	Holiday  *Holiday  `json:"holiday,omitempty"`
	Business bool      `json:"business"`
}

// BusinessSpan is the business time between two instants.
type BusinessSpan struct {
	Hours   int    `json:"hours"`
	Message string `json:"message"`
}

type dayKey struct {
	year  int
	month time.Month
	day   int
}

// Calendar classifies days against the holiday table. Holiday sets are
// computed once per year and reused; a Calendar is safe for concurrent use.
type Calendar struct {
	loc *time.Location

	mu    sync.Mutex
	years map[int]map[dayKey]Holiday
}

// Option configures a Calendar.
type Option func(*Calendar)

// WithLocation makes the calendar take civil dates in loc instead of in the
// location carried by each instant.
func WithLocation(loc *time.Location) Option {
	return func(c *Calendar) {
		c.loc = loc
	}
}

// New creates a calendar.
func New(opts ...Option) *Calendar {
	c := &Calendar{years: make(map[int]map[dayKey]Holiday)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Location returns the location civil dates are taken in, or nil when each
// instant's own location is used.
func (c *Calendar) Location() *time.Location {
	return c.loc
}

func (c *Calendar) local(t time.Time) time.Time {
	if c.loc != nil {
		return t.In(c.loc)
	}
	return t
}

func (c *Calendar) key(t time.Time) dayKey {
	y, m, d := c.local(t).Date()
	return dayKey{year: y, month: m, day: d}
}

func (c *Calendar) holidays(year int) map[dayKey]Holiday {
	c.mu.Lock()
	defer c.mu.Unlock()

	if set, ok := c.years[year]; ok {
		return set
	}
	set := make(map[dayKey]Holiday)
	for _, h := range HolidaysForYear(year) {
		y, m, d := h.Date.Date()
		set[dayKey{year: y, month: m, day: d}] = h
	}
	c.years[year] = set
	return set
}

// IsHoliday reports the holiday falling on t's civil date, if any.
func (c *Calendar) IsHoliday(t time.Time) (Holiday, bool) {
	if t.IsZero() {
		return Holiday{}, false
	}
	k := c.key(t)
	h, ok := c.holidays(k.year)[k]
	return h, ok
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func (c *Calendar) IsWeekend(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	switch c.local(t).Weekday() {
	case time.Saturday, time.Sunday:
		return true
	default:
		return false
	}
}

// IsBusinessDay reports whether t is neither a weekend day nor a holiday.
func (c *Calendar) IsBusinessDay(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	if c.IsWeekend(t) {
		return false
	}
	_, holiday := c.IsHoliday(t)
	return !holiday
}

// Classify returns the classification of t's civil date.
func (c *Calendar) Classify(t time.Time) DayInfo {
	y, m, d := c.local(t).Date()
	info := DayInfo{
		Date:     time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Weekend:  c.IsWeekend(t),
		Business: c.IsBusinessDay(t),
	}
	if h, ok := c.IsHoliday(t); ok {
		info.Holiday = &h
	}
	return info
}

// AddBusinessDays moves n business days away from t, one calendar day at a
// time, backwards when n is negative. The starting day is never counted.
func (c *Calendar) AddBusinessDays(t time.Time, n int) (time.Time, error) {
	if t.IsZero() {
		return time.Time{}, &InvalidDateError{Field: "date"}
	}
	if n == math.MinInt {
		return time.Time{}, fmt.Errorf("%w: %d", ErrDayCountOutOfRange, n)
	}
	step := 1
	remaining := n
	if n < 0 {
		step = -1
		remaining = -n
	}

	cur := t
	for remaining > 0 {
		cur = cur.AddDate(0, 0, step)
		if c.IsBusinessDay(cur) {
			remaining--
		}
	}
	return cur, nil
}

// SubtractBusinessDays is AddBusinessDays(t, -n).
func (c *Calendar) SubtractBusinessDays(t time.Time, n int) (time.Time, error) {
	return c.AddBusinessDays(t, -n)
}

// BusinessHoursBetween counts the hour slots between t1 and t2 that fall on
// business days. Any hour of a business day counts. The result is negative
// when t2 is before t1.
func (c *Calendar) BusinessHoursBetween(t1, t2 time.Time) (int, error) {
	if t1.IsZero() {
		return 0, &InvalidDateError{Field: "from"}
	}
	if t2.IsZero() {
		return 0, &InvalidDateError{Field: "to"}
	}
	if t1.Equal(t2) {
		return 0, nil
	}

	lower, upper, sign := t1, t2, 1
	if t2.Before(t1) {
		lower, upper, sign = t2, t1, -1
	}

	hours := 0
	for cur := lower; cur.Before(upper); cur = cur.Add(time.Hour) {
		if c.IsBusinessDay(cur) {
			hours++
		}
	}
	return sign * hours, nil
}

// BusinessDaysAndHours returns the business hours between start and end
// together with a "{d} dias e {h} horas" summary. It returns nil when either
// instant is missing.
func (c *Calendar) BusinessDaysAndHours(start, end time.Time) *BusinessSpan {
	if start.IsZero() || end.IsZero() {
		return nil
	}
	hours, err := c.BusinessHoursBetween(start, end)
	if err != nil {
		return nil
	}

	days := int(math.Floor(float64(hours) / 24))
	rest := hours % 24

	var msg string
	switch {
	case days == 0:
		msg = fmt.Sprintf("%d horas", rest)
	case rest == 0:
		msg = fmt.Sprintf("%d dias", days)
	default:
		msg = fmt.Sprintf("%d dias e %d horas", days, rest)
	}
	return &BusinessSpan{Hours: hours, Message: msg}
}

// WorkingDaysBetween measures the interval from a to b in working days.
func (c *Calendar) WorkingDaysBetween(a, b time.Time) float64 {
	return WorkingDaysBetween(c, a, b)
}

type locator interface {
	Location() *time.Location
}

// WorkingDaysBetween returns the elapsed days from a to b minus the part of
// the span that falls on non-working days. Days are scanned from a's civil
// date up to b; a non-working day only removes its overlap with [a, b), so
// midnight-aligned spans lose exactly one day per non-working day. The
// result is negative when b is before a.
func WorkingDaysBetween(c DayClassifier, a, b time.Time) float64 {
	if a.Equal(b) {
		return 0
	}
	if b.Before(a) {
		return -WorkingDaysBetween(c, b, a)
	}
	if l, ok := c.(locator); ok && l.Location() != nil {
		a, b = a.In(l.Location()), b.In(l.Location())
	}

	raw := b.Sub(a)
	var off time.Duration

	y, m, d := a.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, a.Location())
	for day.Before(b) {
		next := day.AddDate(0, 0, 1)
		if !c.IsBusinessDay(day) {
			lo, hi := day, next
			if lo.Before(a) {
				lo = a
			}
			if hi.After(b) {
				hi = b
			}
			off += hi.Sub(lo)
		}
		day = next
	}

	return (raw - off).Hours() / 24
}
