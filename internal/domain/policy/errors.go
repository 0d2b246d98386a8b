package policy

import "errors"

// Policy domain errors
var (
	// ErrPolicyNotFound aborts a whole payroll computation: without a night
	// window and weekend set no day can be classified, so the engine never
	// guesses defaults.
	ErrPolicyNotFound = errors.New("work policy not configured for this company")

	ErrInvalidOvertimeMode = errors.New("invalid overtime mode")
	ErrHolidayExists       = errors.New("a holiday already exists on this date")
	ErrHolidayNotFound     = errors.New("holiday not found")
)
