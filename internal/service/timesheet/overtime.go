package timesheet

import (
	"github.com/cmlabs-hris/timesheet-engine-go/internal/domain/policy"
	"github.com/cmlabs-hris/timesheet-engine-go/internal/domain/timesheet"
	"github.com/shopspring/decimal"
)

// computeTotals folds an employee's day sequence into period totals under
// the policy's overtime mode. All sums run on exact minutes / unrounded
// decimals; rounding to two places happens once per output field.
func computeTotals(days []dayResult, pol policy.WorkPolicy, dailyTarget, monthlyTarget decimal.Decimal) timesheet.EmployeePayroll {
	var (
		workedDays    int
		dayOffCount   int
		totalMinutes  int
		nightMinutes  int
		weekendMin    int
		holidayMin    int
		requiredDaily = decimal.Zero // daily mode: sum of worked-day targets
		reduction     = decimal.Zero // monthly mode: target reduction
		overtimeMin   = decimal.Zero // daily mode: minutes over target per day
	)

	for _, d := range days {
		switch d.State {
		case timesheet.DayOff, timesheet.DayLeave:
			dayOffCount++
			// Monthly mode pro-rates the period target down for each
			// non-working day; half-day holidays keep their reduced target.
			reduction = reduction.Add(dailyTarget)
			continue
		case timesheet.DayRest, timesheet.DayAbsent:
			continue
		}

		if d.WorkedMinutes == 0 {
			continue
		}

		workedDays++
		totalMinutes += d.WorkedMinutes
		nightMinutes += d.NightMinutes
		if d.Entry.IsWeekend {
			weekendMin += d.WorkedMinutes
		}
		if d.Entry.IsHoliday {
			holidayMin += d.WorkedMinutes
		}

		requiredDaily = requiredDaily.Add(d.Target)

		workedMin := decimal.NewFromInt(int64(d.WorkedMinutes))
		targetMin := d.Target.Mul(minutesPerHour)
		if over := workedMin.Sub(targetMin); over.IsPositive() {
			overtimeMin = overtimeMin.Add(over)
		}
	}

	// Half-day holidays reduce the required target in both modes. Days that
	// already pro-rated the full daily target (day off, leave) are skipped.
	for _, d := range days {
		if d.HalfDay && d.State != timesheet.DayOff && d.State != timesheet.DayLeave {
			reduction = reduction.Add(dailyTarget.Sub(d.Target))
		}
	}

	total := minutesToHours(totalMinutes)

	var required, overtime decimal.Decimal
	switch pol.OvertimeMode {
	case policy.OvertimeMonthly:
		required = monthlyTarget.Sub(reduction)
		if required.IsNegative() {
			required = decimal.Zero
		}
		overtime = total.Sub(required)
		if overtime.IsNegative() {
			overtime = decimal.Zero
		}
		overtime = overtime.Round(2)
	default:
		required = requiredDaily
		overtime = overtimeMin.Div(minutesPerHour).Round(2)
	}

	return timesheet.EmployeePayroll{
		WorkedDays:       workedDays,
		TotalWorkedHours: total,
		RequiredHours:    required.Round(2),
		OvertimeHours:    overtime,
		NightHours:       minutesToHours(nightMinutes),
		WeekendHours:     minutesToHours(weekendMin),
		HolidayHours:     minutesToHours(holidayMin),
		DayOffCount:      dayOffCount,
	}
}
