package timesheet

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/timesheet-engine-go/internal/domain/leave"
	"github.com/cmlabs-hris/timesheet-engine-go/internal/domain/policy"
	"github.com/cmlabs-hris/timesheet-engine-go/internal/domain/timesheet"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareIntervals_PreviousMonthSpillover(t *testing.T) {
	t.Parallel()

	monthStart := date(2025, time.April, 1)
	nextMonthStart := date(2025, time.May, 1)
	prevLastDay := date(2025, time.March, 31)

	got := prepareIntervals([]timesheet.WorkInterval{
		record(prevLastDay, 16, 0, 8, 0, true),
	}, monthStart, nextMonthStart)

	require.Len(t, got, 1)
	assert.True(t, got[0].CarryOver)
	assert.Equal(t, monthStart, got[0].Date)
	assert.Equal(t, "00:00", got[0].Start.String())
	assert.Equal(t, "08:00", got[0].End.String())
	assert.False(t, got[0].EndsNextDay)
}

func TestPrepareIntervals_PreviousMonthRecordEntirelyOutside(t *testing.T) {
	t.Parallel()

	monthStart := date(2025, time.April, 1)
	nextMonthStart := date(2025, time.May, 1)
	prevLastDay := date(2025, time.March, 31)

	got := prepareIntervals([]timesheet.WorkInterval{
		record(prevLastDay, 9, 0, 17, 0, false),
	}, monthStart, nextMonthStart)

	assert.Empty(t, got)
}

func TestPrepareIntervals_LastDayClippedAtBoundary(t *testing.T) {
	t.Parallel()

	monthStart := date(2025, time.April, 1)
	nextMonthStart := date(2025, time.May, 1)
	lastDay := date(2025, time.April, 30)

	got := prepareIntervals([]timesheet.WorkInterval{
		record(lastDay, 16, 0, 8, 0, true),
	}, monthStart, nextMonthStart)

	require.Len(t, got, 1)
	assert.True(t, got[0].Clipped)
	assert.Equal(t, "16:00", got[0].Start.String())
	assert.Equal(t, "00:00", got[0].End.String())
	assert.True(t, got[0].EndsNextDay)
}

func TestPrepareIntervals_LastDayEndingAtMidnightNotClipped(t *testing.T) {
	t.Parallel()

	monthStart := date(2025, time.April, 1)
	nextMonthStart := date(2025, time.May, 1)
	lastDay := date(2025, time.April, 30)

	got := prepareIntervals([]timesheet.WorkInterval{
		record(lastDay, 16, 0, 0, 0, true),
	}, monthStart, nextMonthStart)

	require.Len(t, got, 1)
	assert.False(t, got[0].Clipped)
}

func TestPrepareIntervals_MidMonthRecordStaysWhole(t *testing.T) {
	t.Parallel()

	monthStart := date(2025, time.April, 1)
	nextMonthStart := date(2025, time.May, 1)

	rec := record(date(2025, time.April, 10), 16, 0, 8, 0, true)
	got := prepareIntervals([]timesheet.WorkInterval{rec}, monthStart, nextMonthStart)

	require.Len(t, got, 1)
	assert.Equal(t, rec, got[0])
}

// A 16:00-08:00 shift split across the month boundary lands as 8h on each
// side with no overtime, while the night window overlap stays 10h in total.
func TestMonthBoundarySpillover_Regression(t *testing.T) {
	t.Parallel()

	pol := testPolicy()
	pol.BreakMinutes = 0

	monthStart := date(2025, time.April, 1)
	monthEnd := date(2025, time.April, 30)
	nextMonthStart := date(2025, time.May, 1)

	intervals := prepareIntervals([]timesheet.WorkInterval{
		record(date(2025, time.March, 31), 16, 0, 8, 0, true),
		record(monthEnd, 16, 0, 8, 0, true),
	}, monthStart, nextMonthStart)

	days := buildDailyEntries(intervals, monthStart, monthEnd, pol, policy.HolidayCalendar{}, leave.Calendar{}, testEmployeeID, pol.DailyWorkHours)
	got := computeTotals(days, pol, pol.DailyWorkHours, decimal.Zero)

	assert.Equal(t, 2, got.WorkedDays)
	assert.Equal(t, "16.00", got.TotalWorkedHours.StringFixed(2))
	assert.Equal(t, "10.00", got.NightHours.StringFixed(2))
	assert.Equal(t, "0.00", got.OvertimeHours.StringFixed(2))
}

// The same shift mid-month is one 16h day against an 8h target.
func TestMidMonthOvernightShift_DailyOvertime(t *testing.T) {
	t.Parallel()

	pol := testPolicy()
	pol.BreakMinutes = 0

	monthStart := date(2025, time.April, 1)
	monthEnd := date(2025, time.April, 30)

	intervals := prepareIntervals([]timesheet.WorkInterval{
		record(date(2025, time.April, 10), 16, 0, 8, 0, true),
	}, monthStart, date(2025, time.May, 1))

	days := buildDailyEntries(intervals, monthStart, monthEnd, pol, policy.HolidayCalendar{}, leave.Calendar{}, testEmployeeID, pol.DailyWorkHours)
	got := computeTotals(days, pol, pol.DailyWorkHours, decimal.Zero)

	assert.Equal(t, 1, got.WorkedDays)
	assert.Equal(t, "16.00", got.TotalWorkedHours.StringFixed(2))
	assert.Equal(t, "10.00", got.NightHours.StringFixed(2))
	assert.Equal(t, "8.00", got.OvertimeHours.StringFixed(2))
}
