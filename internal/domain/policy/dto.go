package policy

import (
	"slices"
	"time"

	"github.com/cmlabs-hris/timesheet-engine-go/internal/domain/timesheet"
	"github.com/cmlabs-hris/timesheet-engine-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// POLICY DTOs
// ========================================

type UpdatePolicyRequest struct {
	DailyWorkHours         *decimal.Decimal `json:"daily_work_hours"`
	WeeklyWorkHours        *decimal.Decimal `json:"weekly_work_hours"`
	MonthlyWorkHoursTarget *decimal.Decimal `json:"monthly_work_hours_target"`
	BreakMinutes           *int             `json:"break_minutes"`
	NightStart             *string          `json:"night_start"`
	NightEnd               *string          `json:"night_end"`
	WeekendDays            []int            `json:"weekend_days"`
	OvertimeMode           *string          `json:"overtime_mode"`
}

func (r *UpdatePolicyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.DailyWorkHours != nil && (r.DailyWorkHours.IsNegative() || r.DailyWorkHours.GreaterThan(decimal.NewFromInt(24))) {
		errs = append(errs, validator.ValidationError{
			Field:   "daily_work_hours",
			Message: "daily_work_hours must be between 0 and 24",
		})
	}

	if r.BreakMinutes != nil && (*r.BreakMinutes < 0 || *r.BreakMinutes > 240) {
		errs = append(errs, validator.ValidationError{
			Field:   "break_minutes",
			Message: "break_minutes must be between 0 and 240",
		})
	}

	if r.NightStart != nil && !validator.IsValidClockTime(*r.NightStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "night_start",
			Message: "night_start must use the HH:MM format",
		})
	}

	if r.NightEnd != nil && !validator.IsValidClockTime(*r.NightEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "night_end",
			Message: "night_end must use the HH:MM format",
		})
	}

	for _, d := range r.WeekendDays {
		if d < 0 || d > 6 {
			errs = append(errs, validator.ValidationError{
				Field:   "weekend_days",
				Message: "weekend days must be 0 (Sunday) through 6 (Saturday)",
			})
			break
		}
	}

	if r.OvertimeMode != nil && !slices.Contains(OvertimeModeValues, *r.OvertimeMode) {
		errs = append(errs, validator.ValidationError{
			Field:   "overtime_mode",
			Message: "overtime_mode must be one of: daily, monthly",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PolicyResponse struct {
	ID                     string          `json:"id"`
	CompanyID              string          `json:"company_id"`
	DailyWorkHours         decimal.Decimal `json:"daily_work_hours"`
	WeeklyWorkHours        decimal.Decimal `json:"weekly_work_hours"`
	MonthlyWorkHoursTarget decimal.Decimal `json:"monthly_work_hours_target"`
	BreakMinutes           int             `json:"break_minutes"`
	NightStart             string          `json:"night_start"`
	NightEnd               string          `json:"night_end"`
	WeekendDays            []int           `json:"weekend_days"`
	OvertimeMode           string          `json:"overtime_mode"`
}

func MapPolicyToResponse(p WorkPolicy) PolicyResponse {
	days := make([]int, 0, len(p.WeekendDays))
	for _, d := range p.WeekendDays {
		days = append(days, int(d))
	}
	return PolicyResponse{
		ID:                     p.ID,
		CompanyID:              p.CompanyID,
		DailyWorkHours:         p.DailyWorkHours,
		WeeklyWorkHours:        p.WeeklyWorkHours,
		MonthlyWorkHoursTarget: p.MonthlyWorkHoursTarget,
		BreakMinutes:           p.BreakMinutes,
		NightStart:             p.NightStart.String(),
		NightEnd:               p.NightEnd.String(),
		WeekendDays:            days,
		OvertimeMode:           string(p.OvertimeMode),
	}
}

// ========================================
// HOLIDAY DTOs
// ========================================

type CreateHolidayRequest struct {
	Date             string           `json:"date"`
	Name             string           `json:"name"`
	IsHalfDay        bool             `json:"is_half_day"`
	HalfDayWorkHours *decimal.Decimal `json:"half_day_work_hours"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must use the YYYY-MM-DD format",
		})
	}

	if r.IsHalfDay {
		if r.HalfDayWorkHours == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "half_day_work_hours",
				Message: "half_day_work_hours is required for a half-day holiday",
			})
		} else if r.HalfDayWorkHours.IsNegative() || r.HalfDayWorkHours.GreaterThan(decimal.NewFromInt(24)) {
			errs = append(errs, validator.ValidationError{
				Field:   "half_day_work_hours",
				Message: "half_day_work_hours must be between 0 and 24",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type HolidayResponse struct {
	ID               string           `json:"id"`
	Date             string           `json:"date"`
	Name             string           `json:"name"`
	IsHalfDay        bool             `json:"is_half_day"`
	HalfDayWorkHours *decimal.Decimal `json:"half_day_work_hours,omitempty"`
}

func MapHolidayToResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:               h.ID,
		Date:             h.Date.Format("2006-01-02"),
		Name:             h.Name,
		IsHalfDay:        h.IsHalfDay,
		HalfDayWorkHours: h.HalfDayWorkHours,
	}
}

// ParseNightWindow converts the request clock strings, falling back to the
// current value when a field is omitted.
func ParseNightWindow(current timesheet.ClockTime, raw *string) (timesheet.ClockTime, error) {
	if raw == nil {
		return current, nil
	}
	return timesheet.ParseClockTime(*raw)
}
