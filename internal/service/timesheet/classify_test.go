package timesheet

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/timesheet-engine-go/internal/domain/policy"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testPolicy mirrors a common configuration: 8h days, hour lunch break,
// night window spanning midnight, Saturday/Sunday weekends.
func testPolicy() policy.WorkPolicy {
	return policy.WorkPolicy{
		DailyWorkHours:  decimal.NewFromInt(8),
		WeeklyWorkHours: decimal.NewFromInt(40),
		BreakMinutes:    60,
		NightStart:      clock(20, 0),
		NightEnd:        clock(6, 0),
		WeekendDays:     []time.Weekday{time.Saturday, time.Sunday},
		OvertimeMode:    policy.OvertimeDaily,
	}
}

func TestNightOverlapMinutes_WrappingWindowFullyContained(t *testing.T) {
	t.Parallel()

	// 16:00 to 08:00 next day contains the whole 20:00-06:00 window.
	day := date(2025, time.March, 10)
	absStart, absEnd, err := Normalize(day, clock(16, 0), clock(8, 0), false, true)
	require.NoError(t, err)

	got := NightOverlapMinutes(absStart, absEnd, testPolicy())
	assert.Equal(t, 600, got)
}

func TestNightOverlapMinutes_PartialEveningHalf(t *testing.T) {
	t.Parallel()

	// 18:00-23:00 touches only the evening half of the window.
	day := date(2025, time.March, 10)
	absStart, absEnd, err := Normalize(day, clock(18, 0), clock(23, 0), false, false)
	require.NoError(t, err)

	got := NightOverlapMinutes(absStart, absEnd, testPolicy())
	assert.Equal(t, 180, got)
}

func TestNightOverlapMinutes_DayShift(t *testing.T) {
	t.Parallel()

	day := date(2025, time.March, 10)
	absStart, absEnd, err := Normalize(day, clock(9, 0), clock(17, 0), false, false)
	require.NoError(t, err)

	got := NightOverlapMinutes(absStart, absEnd, testPolicy())
	assert.Equal(t, 0, got)
}

func TestNightOverlapMinutes_NonWrappingWindow(t *testing.T) {
	t.Parallel()

	pol := testPolicy()
	pol.NightStart = clock(0, 0)
	pol.NightEnd = clock(5, 0)

	day := date(2025, time.March, 10)
	absStart, absEnd, err := Normalize(day, clock(22, 0), clock(6, 0), false, true)
	require.NoError(t, err)

	// Only the 00:00-05:00 slice of the next morning counts.
	got := NightOverlapMinutes(absStart, absEnd, pol)
	assert.Equal(t, 300, got)
}

func TestNightOverlapMinutes_ZeroWidthWindow(t *testing.T) {
	t.Parallel()

	pol := testPolicy()
	pol.NightStart = clock(0, 0)
	pol.NightEnd = clock(0, 0)

	day := date(2025, time.March, 10)
	absStart, absEnd, err := Normalize(day, clock(20, 0), clock(8, 0), false, true)
	require.NoError(t, err)

	assert.Equal(t, 0, NightOverlapMinutes(absStart, absEnd, pol))
}

func TestNightOverlapMinutes_MultiDaySpan(t *testing.T) {
	t.Parallel()

	// A 24h duty crosses one full evening half and one full morning half.
	day := date(2025, time.March, 10)
	absStart, absEnd, err := Normalize(day, clock(8, 0), clock(8, 0), false, true)
	require.NoError(t, err)

	got := NightOverlapMinutes(absStart, absEnd, testPolicy())
	assert.Equal(t, 600, got)
}

func TestClassify_FlagsFollowAnchorDate(t *testing.T) {
	t.Parallel()

	pol := testPolicy()

	// Friday 2025-03-14 into Saturday morning: the anchor date is Friday,
	// so the interval is not weekend work even though it ends on Saturday.
	friday := date(2025, time.March, 14)
	absStart, absEnd, err := Normalize(friday, clock(22, 0), clock(6, 0), false, true)
	require.NoError(t, err)

	c := Classify(absStart, absEnd, friday, pol, policy.HolidayCalendar{})
	assert.False(t, c.IsWeekend)
	assert.False(t, c.IsHoliday)

	saturday := date(2025, time.March, 15)
	absStart, absEnd, err = Normalize(saturday, clock(9, 0), clock(17, 0), false, false)
	require.NoError(t, err)

	c = Classify(absStart, absEnd, saturday, pol, policy.HolidayCalendar{})
	assert.True(t, c.IsWeekend)
}

func TestClassify_HolidayLookup(t *testing.T) {
	t.Parallel()

	pol := testPolicy()
	holiday := date(2025, time.March, 31)
	calendar := policy.NewHolidayCalendar([]policy.Holiday{
		{Date: holiday, Name: "Eid al-Fitr"},
	})

	absStart, absEnd, err := Normalize(holiday, clock(9, 0), clock(17, 0), false, false)
	require.NoError(t, err)

	c := Classify(absStart, absEnd, holiday, pol, calendar)
	assert.True(t, c.IsHoliday)
	assert.False(t, c.IsHalfDay)
}
