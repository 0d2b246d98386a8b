package policy

import (
	"time"

	"github.com/cmlabs-hris/timesheet-engine-go/internal/domain/timesheet"
	"github.com/shopspring/decimal"
)

// OvertimeMode selects how excess hours are accounted.
type OvertimeMode string

const (
	// OvertimeDaily attributes overtime per calendar day against the daily target.
	OvertimeDaily OvertimeMode = "daily"
	// OvertimeMonthly computes a single remainder against the period target.
	OvertimeMonthly OvertimeMode = "monthly"
)

var OvertimeModeValues = []string{
	string(OvertimeDaily),
	string(OvertimeMonthly),
}

// WorkPolicy holds the organization rules a computation classifies against.
// It is loaded once per computation and treated as immutable for its duration.
type WorkPolicy struct {
	ID                     string
	CompanyID              string
	DailyWorkHours         decimal.Decimal
	WeeklyWorkHours        decimal.Decimal
	MonthlyWorkHoursTarget decimal.Decimal
	BreakMinutes           int
	NightStart             timesheet.ClockTime
	NightEnd               timesheet.ClockTime
	WeekendDays            []time.Weekday
	OvertimeMode           OvertimeMode
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// NightWindowWraps reports whether the night window spans midnight,
// e.g. 20:00-06:00. A zero-width window (start == end) never wraps.
func (p WorkPolicy) NightWindowWraps() bool {
	return p.NightEnd <= p.NightStart && p.NightStart != p.NightEnd
}

// IsWeekend checks a date against the configured weekend day set.
func (p WorkPolicy) IsWeekend(date time.Time) bool {
	for _, d := range p.WeekendDays {
		if date.Weekday() == d {
			return true
		}
	}
	return false
}

// MonthlyTarget returns the period target, deriving it from the daily target
// when no explicit monthly target is configured.
func (p WorkPolicy) MonthlyTarget(workdaysInMonth int) decimal.Decimal {
	if !p.MonthlyWorkHoursTarget.IsZero() {
		return p.MonthlyWorkHoursTarget
	}
	return p.DailyWorkHours.Mul(decimal.NewFromInt(int64(workdaysInMonth)))
}

// Holiday is one calendar entry. At most one exists per (company, date).
type Holiday struct {
	ID               string
	CompanyID        string
	Date             time.Time
	Name             string
	IsHalfDay        bool
	HalfDayWorkHours *decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// HolidayCalendar indexes holidays by calendar day for classification.
type HolidayCalendar map[string]Holiday

func NewHolidayCalendar(holidays []Holiday) HolidayCalendar {
	cal := make(HolidayCalendar, len(holidays))
	for _, h := range holidays {
		cal[h.Date.Format("2006-01-02")] = h
	}
	return cal
}

// Lookup returns the holiday on the given date, if any.
func (c HolidayCalendar) Lookup(date time.Time) (Holiday, bool) {
	h, ok := c[date.Format("2006-01-02")]
	return h, ok
}
