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

const testEmployeeID = "0195f1a2-9c3d-7e4f-8a5b-6c7d8e9f0a1b"

func record(day time.Time, startH, startM, endH, endM int, endsNextDay bool) timesheet.WorkInterval {
	start := clock(startH, startM)
	end := clock(endH, endM)
	return timesheet.WorkInterval{
		EmployeeID:  testEmployeeID,
		Date:        day,
		Start:       &start,
		End:         &end,
		EndsNextDay: endsNextDay,
		Source:      timesheet.SourceAttendance,
	}
}

func buildSingleDay(t *testing.T, day time.Time, records []timesheet.WorkInterval, pol policy.WorkPolicy, holidays policy.HolidayCalendar, leaves leave.Calendar) dayResult {
	t.Helper()
	days := buildDailyEntries(records, day, day, pol, holidays, leaves, testEmployeeID, pol.DailyWorkHours)
	require.Len(t, days, 1)
	return days[0]
}

func TestBuildDay_WorkedWithBreak(t *testing.T) {
	t.Parallel()

	day := date(2025, time.March, 10)
	d := buildSingleDay(t, day,
		[]timesheet.WorkInterval{record(day, 9, 0, 18, 0, false)},
		testPolicy(), policy.HolidayCalendar{}, leave.Calendar{})

	assert.Equal(t, timesheet.DayWorked, d.State)
	assert.Equal(t, 480, d.WorkedMinutes)
	assert.Equal(t, "8.00", d.Entry.Hours.StringFixed(2))
	assert.Equal(t, "09:00", d.Entry.StartTime.String())
	assert.Equal(t, "18:00", d.Entry.EndTime.String())
	assert.Empty(t, d.Entry.Note)
}

func TestBuildDay_DayOffFlag(t *testing.T) {
	t.Parallel()

	day := date(2025, time.March, 10)
	rec := record(day, 0, 0, 0, 0, false)
	rec.Start = nil
	rec.End = nil
	rec.IsDayOff = true

	d := buildSingleDay(t, day, []timesheet.WorkInterval{rec},
		testPolicy(), policy.HolidayCalendar{}, leave.Calendar{})

	assert.Equal(t, timesheet.DayOff, d.State)
	assert.True(t, d.Entry.IsDayOff)
	assert.True(t, d.Entry.Hours.IsZero())
}

func TestBuildDay_DayOffFlagIgnoredWhenWorked(t *testing.T) {
	t.Parallel()

	day := date(2025, time.March, 10)
	off := record(day, 0, 0, 0, 0, false)
	off.Start = nil
	off.End = nil
	off.IsDayOff = true

	d := buildSingleDay(t, day,
		[]timesheet.WorkInterval{off, record(day, 9, 0, 18, 0, false)},
		testPolicy(), policy.HolidayCalendar{}, leave.Calendar{})

	assert.Equal(t, timesheet.DayWorked, d.State)
	assert.Equal(t, "8.00", d.Entry.Hours.StringFixed(2))
	assert.Contains(t, d.Entry.Note, "day-off flag ignored")
}

func TestBuildDay_ApprovedLeave(t *testing.T) {
	t.Parallel()

	day := date(2025, time.March, 10)
	leaves := leave.NewCalendar([]leave.ApprovedLeave{
		{EmployeeID: testEmployeeID, Date: day, LeaveType: "annual"},
	})

	d := buildSingleDay(t, day, nil, testPolicy(), policy.HolidayCalendar{}, leaves)

	assert.Equal(t, timesheet.DayLeave, d.State)
	assert.Contains(t, d.Entry.Note, "annual")
	assert.True(t, d.Entry.Hours.IsZero())
}

func TestBuildDay_IncompleteRecordStaysVisible(t *testing.T) {
	t.Parallel()

	day := date(2025, time.March, 10)
	rec := record(day, 9, 0, 0, 0, false)
	rec.End = nil

	d := buildSingleDay(t, day, []timesheet.WorkInterval{rec},
		testPolicy(), policy.HolidayCalendar{}, leave.Calendar{})

	assert.Equal(t, timesheet.DayWorked, d.State)
	assert.True(t, d.Entry.Hours.IsZero())
	assert.Contains(t, d.Entry.Note, "incomplete record")
}

func TestBuildDay_AbsentOnRequiredDay(t *testing.T) {
	t.Parallel()

	day := date(2025, time.March, 10) // Monday
	d := buildSingleDay(t, day, nil, testPolicy(), policy.HolidayCalendar{}, leave.Calendar{})

	assert.Equal(t, timesheet.DayAbsent, d.State)
	assert.Contains(t, d.Entry.Note, "absent")
}

func TestBuildDay_RestOnWeekend(t *testing.T) {
	t.Parallel()

	day := date(2025, time.March, 15) // Saturday
	d := buildSingleDay(t, day, nil, testPolicy(), policy.HolidayCalendar{}, leave.Calendar{})

	assert.Equal(t, timesheet.DayRest, d.State)
	assert.Empty(t, d.Entry.Note)
}

func TestBuildDay_MultipleRecordsBreakOnce(t *testing.T) {
	t.Parallel()

	// Two records sum to 8h raw; the hour break is deducted once.
	day := date(2025, time.March, 10)
	d := buildSingleDay(t, day,
		[]timesheet.WorkInterval{
			record(day, 9, 0, 13, 0, false),
			record(day, 14, 0, 18, 0, false),
		},
		testPolicy(), policy.HolidayCalendar{}, leave.Calendar{})

	assert.Equal(t, 420, d.WorkedMinutes)
	assert.Equal(t, "7.00", d.Entry.Hours.StringFixed(2))
	assert.Contains(t, d.Entry.Note, "multiple records")
}

func TestBuildDay_CarryOverSkipsBreak(t *testing.T) {
	t.Parallel()

	day := date(2025, time.March, 1)
	rec := record(day, 0, 0, 8, 0, false)
	rec.CarryOver = true

	d := buildSingleDay(t, day, []timesheet.WorkInterval{rec},
		testPolicy(), policy.HolidayCalendar{}, leave.Calendar{})

	// The break belongs to the previous period's portion of the shift.
	assert.Equal(t, 480, d.WorkedMinutes)
	assert.Contains(t, d.Entry.Note, "carried over")
}

func TestBuildDay_NightHoursNeverExceedHours(t *testing.T) {
	t.Parallel()

	// 21:00-23:00 sits inside the night window; after the break deduction
	// only one hour of work remains, so night hours clamp to match.
	day := date(2025, time.March, 10)
	d := buildSingleDay(t, day,
		[]timesheet.WorkInterval{record(day, 21, 0, 23, 0, false)},
		testPolicy(), policy.HolidayCalendar{}, leave.Calendar{})

	assert.Equal(t, 60, d.WorkedMinutes)
	assert.Equal(t, 60, d.NightMinutes)
	assert.True(t, d.Entry.NightHours.LessThanOrEqual(d.Entry.Hours))
}

func TestBuildDay_InvalidRecordIsolatedToDay(t *testing.T) {
	t.Parallel()

	day := date(2025, time.March, 10)
	bad := record(day, 8, 0, 8, 0, false)

	d := buildSingleDay(t, day,
		[]timesheet.WorkInterval{bad, record(day, 9, 0, 18, 0, false)},
		testPolicy(), policy.HolidayCalendar{}, leave.Calendar{})

	assert.Equal(t, timesheet.DayWorked, d.State)
	assert.Equal(t, "8.00", d.Entry.Hours.StringFixed(2))
	assert.Contains(t, d.Entry.Note, "invalid interval")
}

func TestBuildDay_CachedHoursMismatchNoted(t *testing.T) {
	t.Parallel()

	pol := testPolicy()
	pol.BreakMinutes = 0

	day := date(2025, time.March, 10)
	rec := record(day, 9, 0, 17, 0, false)
	cached := decimal.NewFromFloat(7.5)
	rec.CachedTotalHours = &cached

	d := buildSingleDay(t, day, []timesheet.WorkInterval{rec},
		pol, policy.HolidayCalendar{}, leave.Calendar{})

	assert.Equal(t, "8.00", d.Entry.Hours.StringFixed(2))
	assert.Contains(t, d.Entry.Note, "recomputed value used")
}

func TestBuildDay_RoundingToTwoPlaces(t *testing.T) {
	t.Parallel()

	pol := testPolicy()
	pol.BreakMinutes = 0

	// 7 minutes is 0.11666... hours; round-half-up gives 0.12.
	day := date(2025, time.March, 10)
	d := buildSingleDay(t, day,
		[]timesheet.WorkInterval{record(day, 9, 0, 9, 7, false)},
		pol, policy.HolidayCalendar{}, leave.Calendar{})

	assert.Equal(t, "0.12", d.Entry.Hours.StringFixed(2))
}

func TestBuildDailyEntries_CoversWholePeriod(t *testing.T) {
	t.Parallel()

	from := date(2025, time.March, 1)
	to := date(2025, time.March, 31)
	days := buildDailyEntries(nil, from, to, testPolicy(), policy.HolidayCalendar{}, leave.Calendar{}, testEmployeeID, decimal.NewFromInt(8))

	require.Len(t, days, 31)
	assert.Equal(t, from, days[0].Entry.Date)
	assert.Equal(t, to, days[30].Entry.Date)
}
