package timesheet

import (
	"time"

	"github.com/cmlabs-hris/timesheet-engine-go/internal/domain/timesheet"
)

// Normalize converts an anchored wall-clock record into an absolute
// [start, end) pair. Records may arrive from the previous day or depart into
// the next one; both adjustments are applied before validation.
//
// A record with start == end and endsNextDay set denotes a full 24-hour
// interval (the "24h duty" template), never a zero-length one.
func Normalize(date time.Time, start, end timesheet.ClockTime, startsPrevDay, endsNextDay bool) (time.Time, time.Time, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	absStart := start.On(day)
	if startsPrevDay {
		absStart = start.On(day.AddDate(0, 0, -1))
	}

	absEnd := end.On(day)
	switch {
	case endsNextDay:
		absEnd = end.On(day.AddDate(0, 0, 1))
	case !startsPrevDay && end < start:
		// An unflagged end before the start means the shift ran past
		// midnight, e.g. 22:00-06:00 recorded without the next-day marker.
		// An unflagged start == end stays zero-length and fails below; only
		// the explicit next-day marker denotes the 24-hour duty shape.
		absEnd = end.On(day.AddDate(0, 0, 1))
	}

	if !absEnd.After(absStart) {
		return time.Time{}, time.Time{}, timesheet.ErrInvalidInterval
	}

	return absStart, absEnd, nil
}
