package shift

import (
	"time"

	"github.com/cmlabs-hris/timesheet-engine-go/internal/domain/timesheet"
	"github.com/shopspring/decimal"
)

// Shift is a scheduled work assignment written by the scheduling UI. The
// TotalHours/NightHours columns are filled at write time; payroll treats
// them as a cache and always reclassifies from the raw times.
type Shift struct {
	ID           string
	EmployeeID   string
	CompanyID    string
	Date         time.Time
	Start        timesheet.ClockTime
	End          timesheet.ClockTime
	SpansNextDay bool
	IsDayOff     bool
	TotalHours   *decimal.Decimal
	NightHours   *decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Interval lifts the shift row into the engine's input shape.
func (s Shift) Interval() timesheet.WorkInterval {
	start := s.Start
	end := s.End
	return timesheet.WorkInterval{
		EmployeeID:       s.EmployeeID,
		Date:             s.Date,
		Start:            &start,
		End:              &end,
		EndsNextDay:      s.SpansNextDay,
		IsDayOff:         s.IsDayOff,
		Source:           timesheet.SourceShift,
		CachedTotalHours: s.TotalHours,
		CachedNightHours: s.NightHours,
	}
}
