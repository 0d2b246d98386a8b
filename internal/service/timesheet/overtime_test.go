package timesheet

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/timesheet-engine-go/internal/domain/policy"
	"github.com/cmlabs-hris/timesheet-engine-go/internal/domain/timesheet"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func workedDay(minutes int, targetHours int64) dayResult {
	return dayResult{
		State:         timesheet.DayWorked,
		WorkedMinutes: minutes,
		Target:        decimal.NewFromInt(targetHours),
	}
}

func TestComputeTotals_DailyMode(t *testing.T) {
	t.Parallel()

	pol := testPolicy()
	eight := decimal.NewFromInt(8)

	// 10h, 6h, 8h against an 8h target: only the surplus day counts.
	days := []dayResult{
		workedDay(600, 8),
		workedDay(360, 8),
		workedDay(480, 8),
	}

	got := computeTotals(days, pol, eight, decimal.Zero)

	assert.Equal(t, 3, got.WorkedDays)
	assert.Equal(t, "24.00", got.TotalWorkedHours.StringFixed(2))
	assert.Equal(t, "24.00", got.RequiredHours.StringFixed(2))
	assert.Equal(t, "2.00", got.OvertimeHours.StringFixed(2))
}

func TestComputeTotals_DailyModeShortfallNeverNegative(t *testing.T) {
	t.Parallel()

	pol := testPolicy()
	eight := decimal.NewFromInt(8)

	got := computeTotals([]dayResult{workedDay(360, 8)}, pol, eight, decimal.Zero)

	assert.Equal(t, "0.00", got.OvertimeHours.StringFixed(2))
}

func TestComputeTotals_MonthlyMode(t *testing.T) {
	t.Parallel()

	pol := testPolicy()
	pol.OvertimeMode = policy.OvertimeMonthly
	eight := decimal.NewFromInt(8)
	target := decimal.NewFromInt(176)

	// 23 days of 8h even, totaling 184 against a 176h period target.
	var days []dayResult
	for i := 0; i < 23; i++ {
		days = append(days, workedDay(480, 8))
	}

	got := computeTotals(days, pol, eight, target)

	assert.Equal(t, "184.00", got.TotalWorkedHours.StringFixed(2))
	assert.Equal(t, "176.00", got.RequiredHours.StringFixed(2))
	assert.Equal(t, "8.00", got.OvertimeHours.StringFixed(2))
}

func TestComputeTotals_MonthlyModeLeaveReducesTarget(t *testing.T) {
	t.Parallel()

	pol := testPolicy()
	pol.OvertimeMode = policy.OvertimeMonthly
	eight := decimal.NewFromInt(8)
	target := decimal.NewFromInt(176)

	days := []dayResult{
		{State: timesheet.DayLeave},
		{State: timesheet.DayOff},
		workedDay(480, 8),
	}

	got := computeTotals(days, pol, eight, target)

	// Two non-working days drop the period target by two daily targets.
	assert.Equal(t, "160.00", got.RequiredHours.StringFixed(2))
	assert.Equal(t, 2, got.DayOffCount)
	assert.Equal(t, 1, got.WorkedDays)
}

func TestComputeTotals_HalfDayHolidayReducesTargetInBothModes(t *testing.T) {
	t.Parallel()

	eight := decimal.NewFromInt(8)
	halfDay := dayResult{
		State:         timesheet.DayWorked,
		WorkedMinutes: 360,
		Target:        decimal.NewFromInt(4),
		HalfDay:       true,
		Entry:         timesheet.DailyEntry{IsHoliday: true},
	}

	daily := testPolicy()
	got := computeTotals([]dayResult{halfDay}, daily, eight, decimal.Zero)
	assert.Equal(t, "4.00", got.RequiredHours.StringFixed(2))
	assert.Equal(t, "2.00", got.OvertimeHours.StringFixed(2))
	assert.Equal(t, "6.00", got.HolidayHours.StringFixed(2))

	monthly := testPolicy()
	monthly.OvertimeMode = policy.OvertimeMonthly
	got = computeTotals([]dayResult{halfDay}, monthly, eight, eight)
	assert.Equal(t, "4.00", got.RequiredHours.StringFixed(2))
	assert.Equal(t, "2.00", got.OvertimeHours.StringFixed(2))
}

func TestComputeTotals_WeekendAndNightBuckets(t *testing.T) {
	t.Parallel()

	pol := testPolicy()
	eight := decimal.NewFromInt(8)

	days := []dayResult{
		{
			State:         timesheet.DayWorked,
			WorkedMinutes: 480,
			NightMinutes:  120,
			Target:        eight,
			Entry:         timesheet.DailyEntry{IsWeekend: true},
		},
		workedDay(480, 8),
	}

	got := computeTotals(days, pol, eight, decimal.Zero)

	assert.Equal(t, "8.00", got.WeekendHours.StringFixed(2))
	assert.Equal(t, "2.00", got.NightHours.StringFixed(2))
	assert.Equal(t, "16.00", got.TotalWorkedHours.StringFixed(2))
}

func TestComputeTotals_MonthlyTargetFloorsAtZero(t *testing.T) {
	t.Parallel()

	pol := testPolicy()
	pol.OvertimeMode = policy.OvertimeMonthly
	eight := decimal.NewFromInt(8)

	// More reduction than target: required floors at zero, everything
	// worked is overtime.
	days := []dayResult{
		{State: timesheet.DayLeave},
		{State: timesheet.DayLeave},
		workedDay(480, 8),
	}

	got := computeTotals(days, pol, eight, decimal.NewFromInt(8))

	assert.Equal(t, "0.00", got.RequiredHours.StringFixed(2))
	assert.Equal(t, "8.00", got.OvertimeHours.StringFixed(2))
}

func TestComputeTotals_Deterministic(t *testing.T) {
	t.Parallel()

	pol := testPolicy()
	eight := decimal.NewFromInt(8)
	days := []dayResult{
		workedDay(510, 8),
		{State: timesheet.DayLeave},
		workedDay(465, 8),
	}

	first := computeTotals(days, pol, eight, decimal.Zero)
	second := computeTotals(days, pol, eight, decimal.Zero)

	assert.True(t, first.TotalWorkedHours.Equal(second.TotalWorkedHours))
	assert.True(t, first.OvertimeHours.Equal(second.OvertimeHours))
	assert.Equal(t, first.WorkedDays, second.WorkedDays)
}

func TestWorkdaysInMonth(t *testing.T) {
	t.Parallel()

	pol := testPolicy()
	monthStart := date(2025, time.March, 1)
	monthEnd := date(2025, time.March, 31)

	// March 2025 has 21 weekdays; one full holiday drops it to 20, a
	// half-day holiday still counts.
	holidays := policy.NewHolidayCalendar([]policy.Holiday{
		{Date: date(2025, time.March, 31), Name: "Eid al-Fitr"},
		{Date: date(2025, time.March, 28), Name: "Nyepi Eve", IsHalfDay: true},
	})

	assert.Equal(t, 21, workdaysInMonth(monthStart, monthEnd, pol, policy.HolidayCalendar{}))
	assert.Equal(t, 20, workdaysInMonth(monthStart, monthEnd, pol, holidays))
}
