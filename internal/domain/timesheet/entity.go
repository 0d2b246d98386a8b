package timesheet

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/timesheet-engine-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ClockTime is a wall-clock time of day stored as minutes after midnight.
// It carries no date or timezone; records anchor it to a calendar day.
type ClockTime int

func NewClockTime(hour, minute int) ClockTime {
	return ClockTime(hour*60 + minute)
}

// ParseClockTime parses strictly "15:04" formatted values. time.Parse is
// too lenient here; the wire format requires both fields zero-padded.
func ParseClockTime(s string) (ClockTime, error) {
	if !validator.IsValidClockTime(s) {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	hour := int(s[0]-'0')*10 + int(s[1]-'0')
	minute := int(s[3]-'0')*10 + int(s[4]-'0')
	return NewClockTime(hour, minute), nil
}

func (c ClockTime) Hour() int   { return int(c) / 60 }
func (c ClockTime) Minute() int { return int(c) % 60 }

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// On anchors the clock time to a calendar day, keeping the day's location.
func (c ClockTime) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), c.Hour(), c.Minute(), 0, 0, date.Location())
}

func (c ClockTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

func (c *ClockTime) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid clock time %s", s)
	}
	parsed, err := ParseClockTime(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// RecordSource selects which raw records a computation reads.
// A computation uses exactly one source for the whole period.
type RecordSource string

const (
	SourceShift      RecordSource = "shift"
	SourceAttendance RecordSource = "attendance"
)

var RecordSourceValues = []string{
	string(SourceShift),
	string(SourceAttendance),
}

// WorkInterval is one raw time record for an employee on an anchor day,
// already lifted out of its storage shape (shift row or attendance pair).
// Start or End may be nil when an attendance record is incomplete; such a
// record contributes no classified hours but stays visible in listings.
type WorkInterval struct {
	EmployeeID        string
	Date              time.Time // anchor calendar day, midnight
	Start             *ClockTime
	End               *ClockTime
	StartsPreviousDay bool
	EndsNextDay       bool
	IsDayOff          bool
	Source            RecordSource

	// CarryOver marks the day-1 portion of a midnight-crossing record dated
	// in the previous period. Its break deduction already happened in the
	// record's own period, so the portion is summed without another one.
	CarryOver bool
	// Clipped marks a record whose tail past the period boundary was cut;
	// the cut portion reappears as a CarryOver interval next period.
	Clipped bool

	// Hour fields stored at shift-write time. Kept as a cache only; the
	// engine always reclassifies from the raw times.
	CachedTotalHours *decimal.Decimal
	CachedNightHours *decimal.Decimal
}

// Complete reports whether the record has both ends of its interval.
func (w WorkInterval) Complete() bool {
	return w.Start != nil && w.End != nil
}

// DayState classifies one employee-day. The states are mutually exclusive.
type DayState string

const (
	DayWorked DayState = "worked"
	DayOff    DayState = "day_off"
	DayLeave  DayState = "leave"
	DayAbsent DayState = "absent"
	// DayRest is a configured non-working day (weekend or full holiday)
	// without any record. It carries no required hours and is not absence.
	DayRest DayState = "rest"
)

// DailyEntry is the classified result for one employee-day. Entries are
// derived on every computation and never persisted except inside snapshots.
type DailyEntry struct {
	Date       time.Time
	State      DayState
	Hours      decimal.Decimal
	NightHours decimal.Decimal
	IsWeekend  bool
	IsHoliday  bool
	IsDayOff   bool
	StartTime  *ClockTime
	EndTime    *ClockTime
	Note       string
}

// EmployeePayroll is the computation output for one employee over a period.
type EmployeePayroll struct {
	EmployeeID       string
	EmployeeName     string
	WorkedDays       int
	TotalWorkedHours decimal.Decimal
	RequiredHours    decimal.Decimal
	OvertimeHours    decimal.Decimal
	NightHours       decimal.Decimal
	WeekendHours     decimal.Decimal
	HolidayHours     decimal.Decimal
	DayOffCount      int
	DailyEntries     []DailyEntry
}

// PayrollSnapshot is a saved copy of a whole computation, stored verbatim
// and re-hydrated for display without recomputation.
type PayrollSnapshot struct {
	ID        string
	CompanyID string
	Year      int
	Month     time.Month
	Source    RecordSource
	Rows      []EmployeePayroll
	CreatedBy string
	CreatedAt time.Time
}
