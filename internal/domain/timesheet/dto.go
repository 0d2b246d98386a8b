package timesheet

import (
	"slices"
	"time"

	"github.com/cmlabs-hris/timesheet-engine-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// TIMESHEET DTOs
// ========================================

type ComputeTimesheetRequest struct {
	Year   int    `json:"year"`
	Month  int    `json:"month"`
	Source string `json:"source"`
}

func (r *ComputeTimesheetRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if !slices.Contains(RecordSourceValues, r.Source) {
		errs = append(errs, validator.ValidationError{
			Field:   "source",
			Message: "source must be one of: shift, attendance",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SaveSnapshotRequest struct {
	Year   int    `json:"year"`
	Month  int    `json:"month"`
	Source string `json:"source"`
}

func (r *SaveSnapshotRequest) Validate() error {
	compute := ComputeTimesheetRequest{Year: r.Year, Month: r.Month, Source: r.Source}
	return compute.Validate()
}

// ========================================
// SNAPSHOT WIRE FORMAT
// ========================================
// These shapes are persisted verbatim by the snapshot store and re-hydrated
// for display without recomputation, so the field names are part of the
// storage contract and must stay stable.

type DailyEntrySnapshot struct {
	Date       string  `json:"date"`
	StartTime  *string `json:"startTime"`
	EndTime    *string `json:"endTime"`
	Hours      string  `json:"hours"`
	NightHours string  `json:"nightHours"`
	IsWeekend  bool    `json:"isWeekend"`
	IsHoliday  bool    `json:"isHoliday"`
	IsDayOff   bool    `json:"isDayOff"`
	Note       string  `json:"note"`
}

type EmployeePayrollSnapshot struct {
	EmployeeID       string               `json:"employeeId"`
	EmployeeName     string               `json:"employeeName"`
	WorkedDays       int                  `json:"workedDays"`
	TotalWorkedHours string               `json:"totalWorkedHours"`
	RequiredHours    string               `json:"requiredHours"`
	OvertimeHours    string               `json:"overtimeHours"`
	NightHours       string               `json:"nightHours"`
	WeekendHours     string               `json:"weekendHours"`
	HolidayHours     string               `json:"holidayHours"`
	DayOffCount      int                  `json:"dayOffCount"`
	DailyEntries     []DailyEntrySnapshot `json:"dailyEntries"`
}

// MarshalPayroll converts a computed row into its snapshot wire form.
func MarshalPayroll(p EmployeePayroll) EmployeePayrollSnapshot {
	entries := make([]DailyEntrySnapshot, 0, len(p.DailyEntries))
	for _, e := range p.DailyEntries {
		entries = append(entries, DailyEntrySnapshot{
			Date:       e.Date.Format("2006-01-02"),
			StartTime:  clockTimeString(e.StartTime),
			EndTime:    clockTimeString(e.EndTime),
			Hours:      e.Hours.StringFixed(2),
			NightHours: e.NightHours.StringFixed(2),
			IsWeekend:  e.IsWeekend,
			IsHoliday:  e.IsHoliday,
			IsDayOff:   e.IsDayOff,
			Note:       e.Note,
		})
	}
	return EmployeePayrollSnapshot{
		EmployeeID:       p.EmployeeID,
		EmployeeName:     p.EmployeeName,
		WorkedDays:       p.WorkedDays,
		TotalWorkedHours: p.TotalWorkedHours.StringFixed(2),
		RequiredHours:    p.RequiredHours.StringFixed(2),
		OvertimeHours:    p.OvertimeHours.StringFixed(2),
		NightHours:       p.NightHours.StringFixed(2),
		WeekendHours:     p.WeekendHours.StringFixed(2),
		HolidayHours:     p.HolidayHours.StringFixed(2),
		DayOffCount:      p.DayOffCount,
		DailyEntries:     entries,
	}
}

// UnmarshalPayroll re-hydrates a snapshot row. The stored strings are the
// engine's own output, so parse failures mean a corrupted snapshot.
func UnmarshalPayroll(s EmployeePayrollSnapshot) (EmployeePayroll, error) {
	total, err := decimal.NewFromString(s.TotalWorkedHours)
	if err != nil {
		return EmployeePayroll{}, err
	}
	required, err := decimal.NewFromString(s.RequiredHours)
	if err != nil {
		return EmployeePayroll{}, err
	}
	overtime, err := decimal.NewFromString(s.OvertimeHours)
	if err != nil {
		return EmployeePayroll{}, err
	}
	night, err := decimal.NewFromString(s.NightHours)
	if err != nil {
		return EmployeePayroll{}, err
	}
	weekend, err := decimal.NewFromString(s.WeekendHours)
	if err != nil {
		return EmployeePayroll{}, err
	}
	holiday, err := decimal.NewFromString(s.HolidayHours)
	if err != nil {
		return EmployeePayroll{}, err
	}

	p := EmployeePayroll{
		EmployeeID:       s.EmployeeID,
		EmployeeName:     s.EmployeeName,
		WorkedDays:       s.WorkedDays,
		TotalWorkedHours: total,
		RequiredHours:    required,
		OvertimeHours:    overtime,
		NightHours:       night,
		WeekendHours:     weekend,
		HolidayHours:     holiday,
		DayOffCount:      s.DayOffCount,
		DailyEntries:     make([]DailyEntry, 0, len(s.DailyEntries)),
	}

	for _, es := range s.DailyEntries {
		entry, err := unmarshalDailyEntry(es)
		if err != nil {
			return EmployeePayroll{}, err
		}
		p.DailyEntries = append(p.DailyEntries, entry)
	}

	return p, nil
}

func unmarshalDailyEntry(s DailyEntrySnapshot) (DailyEntry, error) {
	date, err := parseSnapshotDate(s.Date)
	if err != nil {
		return DailyEntry{}, err
	}
	hours, err := decimal.NewFromString(s.Hours)
	if err != nil {
		return DailyEntry{}, err
	}
	night, err := decimal.NewFromString(s.NightHours)
	if err != nil {
		return DailyEntry{}, err
	}

	entry := DailyEntry{
		Date:       date,
		Hours:      hours,
		NightHours: night,
		IsWeekend:  s.IsWeekend,
		IsHoliday:  s.IsHoliday,
		IsDayOff:   s.IsDayOff,
		Note:       s.Note,
	}
	if s.StartTime != nil {
		ct, err := ParseClockTime(*s.StartTime)
		if err != nil {
			return DailyEntry{}, err
		}
		entry.StartTime = &ct
	}
	if s.EndTime != nil {
		ct, err := ParseClockTime(*s.EndTime)
		if err != nil {
			return DailyEntry{}, err
		}
		entry.EndTime = &ct
	}
	return entry, nil
}

func parseSnapshotDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

func clockTimeString(c *ClockTime) *string {
	if c == nil {
		return nil
	}
	s := c.String()
	return &s
}
