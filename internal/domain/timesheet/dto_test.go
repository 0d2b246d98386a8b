package timesheet

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTimesheetRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := ComputeTimesheetRequest{Year: 2025, Month: 4, Source: "shift"}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name string
		req  ComputeTimesheetRequest
	}{
		{name: "year too low", req: ComputeTimesheetRequest{Year: 1999, Month: 4, Source: "shift"}},
		{name: "year too high", req: ComputeTimesheetRequest{Year: 2101, Month: 4, Source: "shift"}},
		{name: "month zero", req: ComputeTimesheetRequest{Year: 2025, Month: 0, Source: "attendance"}},
		{name: "month thirteen", req: ComputeTimesheetRequest{Year: 2025, Month: 13, Source: "attendance"}},
		{name: "unknown source", req: ComputeTimesheetRequest{Year: 2025, Month: 4, Source: "payroll"}},
		{name: "empty source", req: ComputeTimesheetRequest{Year: 2025, Month: 4}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Error(t, tt.req.Validate())
		})
	}
}

func samplePayroll() EmployeePayroll {
	start := NewClockTime(16, 0)
	end := NewClockTime(8, 0)
	return EmployeePayroll{
		EmployeeID:       "0195f1a2-9c3d-7e4f-8a5b-6c7d8e9f0a1b",
		EmployeeName:     "Rizky Pratama",
		WorkedDays:       21,
		TotalWorkedHours: decimal.RequireFromString("176.00"),
		RequiredHours:    decimal.RequireFromString("176.00"),
		OvertimeHours:    decimal.RequireFromString("0.00"),
		NightHours:       decimal.RequireFromString("10.00"),
		WeekendHours:     decimal.RequireFromString("8.00"),
		HolidayHours:     decimal.RequireFromString("0.00"),
		DayOffCount:      2,
		DailyEntries: []DailyEntry{
			{
				Date:       time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
				State:      DayWorked,
				Hours:      decimal.RequireFromString("8.00"),
				NightHours: decimal.RequireFromString("6.00"),
				StartTime:  &start,
				EndTime:    &end,
				Note:       "includes hours carried over from the previous period",
			},
			{
				Date:       time.Date(2025, time.April, 5, 0, 0, 0, 0, time.UTC),
				State:      DayRest,
				Hours:      decimal.RequireFromString("0.00"),
				NightHours: decimal.RequireFromString("0.00"),
				IsWeekend:  true,
			},
			{
				Date:       time.Date(2025, time.April, 7, 0, 0, 0, 0, time.UTC),
				State:      DayOff,
				Hours:      decimal.RequireFromString("0.00"),
				NightHours: decimal.RequireFromString("0.00"),
				IsDayOff:   true,
			},
		},
	}
}

func TestPayrollSnapshot_RoundTrip(t *testing.T) {
	t.Parallel()

	original := samplePayroll()
	wire := MarshalPayroll(original)

	assert.Equal(t, original.EmployeeID, wire.EmployeeID)
	assert.Equal(t, "176.00", wire.TotalWorkedHours)
	require.Len(t, wire.DailyEntries, 3)
	assert.Equal(t, "2025-04-01", wire.DailyEntries[0].Date)
	require.NotNil(t, wire.DailyEntries[0].StartTime)
	assert.Equal(t, "16:00", *wire.DailyEntries[0].StartTime)
	assert.Nil(t, wire.DailyEntries[1].StartTime)
	assert.True(t, wire.DailyEntries[2].IsDayOff)

	hydrated, err := UnmarshalPayroll(wire)
	require.NoError(t, err)

	// Marshalling again must reproduce the wire form exactly.
	assert.Equal(t, wire, MarshalPayroll(hydrated))

	assert.True(t, hydrated.TotalWorkedHours.Equal(original.TotalWorkedHours))
	assert.True(t, hydrated.NightHours.Equal(original.NightHours))
	assert.Equal(t, original.WorkedDays, hydrated.WorkedDays)
	assert.Equal(t, original.DayOffCount, hydrated.DayOffCount)
}

func TestUnmarshalPayroll_CorruptedNumbers(t *testing.T) {
	t.Parallel()

	wire := MarshalPayroll(samplePayroll())
	wire.TotalWorkedHours = "not-a-number"

	_, err := UnmarshalPayroll(wire)
	assert.Error(t, err)
}

func TestUnmarshalPayroll_CorruptedDate(t *testing.T) {
	t.Parallel()

	wire := MarshalPayroll(samplePayroll())
	wire.DailyEntries[0].Date = "01/04/2025"

	_, err := UnmarshalPayroll(wire)
	assert.Error(t, err)
}
