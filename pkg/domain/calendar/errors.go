package calendar

import "errors"

// ErrInvalidDate indicates a missing or unparseable date was given to an
// operation that cannot degrade to a default answer.
var ErrInvalidDate = errors.New("invalid date")

// ErrDayCountOutOfRange indicates a business day count that cannot be walked.
var ErrDayCountOutOfRange = errors.New("business day count out of range")

// InvalidDateError provides details about which input could not be used.
type InvalidDateError struct {
	Field string
	Value string
	Err   error
}

func (e *InvalidDateError) Error() string {
	msg := "invalid date"
	if e.Field != "" {
		msg += " for " + e.Field
	}
	if e.Value != "" {
		msg += " " + `"` + e.Value + `"`
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InvalidDateError) Unwrap() error {
	return e.Err
}

// Is allows errors.Is to work with InvalidDateError.
func (e *InvalidDateError) Is(target error) bool {
	return target == ErrInvalidDate
}
