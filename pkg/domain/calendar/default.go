package calendar

import "time"

var defaultCalendar = New()

// Default returns the process-wide calendar used by the package-level helpers.
func Default() *Calendar {
	return defaultCalendar
}

// IsHoliday reports the holiday on t's civil date using the default calendar.
func IsHoliday(t time.Time) (Holiday, bool) {
	return defaultCalendar.IsHoliday(t)
}

// IsWeekend reports whether t falls on a weekend.
func IsWeekend(t time.Time) bool {
	return defaultCalendar.IsWeekend(t)
}

// IsBusinessDay reports whether t is a business day on the default calendar.
func IsBusinessDay(t time.Time) bool {
	return defaultCalendar.IsBusinessDay(t)
}

func AddBusinessDays(t time.Time, n int) (time.Time, error) {
	return defaultCalendar.AddBusinessDays(t, n)
}

func SubtractBusinessDays(t time.Time, n int) (time.Time, error) {
	return defaultCalendar.SubtractBusinessDays(t, n)
}

func BusinessHoursBetween(t1, t2 time.Time) (int, error) {
	return defaultCalendar.BusinessHoursBetween(t1, t2)
}

func BusinessDaysAndHours(start, end time.Time) *BusinessSpan {
	return defaultCalendar.BusinessDaysAndHours(start, end)
}
