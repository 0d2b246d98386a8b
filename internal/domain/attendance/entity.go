package attendance

import (
	"time"

	"github.com/cmlabs-hris/timesheet-engine-go/internal/domain/timesheet"
)

// Attendance is one raw check-in/check-out record. ClockOut stays nil until
// the employee checks out; the record is then "incomplete" and contributes
// zero classified hours while remaining visible in listings.
type Attendance struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Date       time.Time // the working day the record is anchored to
	ClockIn    *time.Time
	ClockOut   *time.Time
	Note       *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
}

// EndsNextDay reports whether the checkout landed on the calendar day after
// the anchor date.
func (a Attendance) EndsNextDay() bool {
	if a.ClockOut == nil {
		return false
	}
	return a.ClockOut.YearDay() != a.Date.YearDay() || a.ClockOut.Year() != a.Date.Year()
}

// Interval lifts the record into the engine's input shape.
func (a Attendance) Interval() timesheet.WorkInterval {
	w := timesheet.WorkInterval{
		EmployeeID: a.EmployeeID,
		Date:       a.Date,
		Source:     timesheet.SourceAttendance,
	}
	if a.ClockIn != nil {
		ct := timesheet.NewClockTime(a.ClockIn.Hour(), a.ClockIn.Minute())
		w.Start = &ct
	}
	if a.ClockOut != nil {
		ct := timesheet.NewClockTime(a.ClockOut.Hour(), a.ClockOut.Minute())
		w.End = &ct
		w.EndsNextDay = a.EndsNextDay()
	}
	return w
}
