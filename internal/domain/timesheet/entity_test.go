package timesheet

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		hour    int
		minute  int
		wantErr bool
	}{
		{input: "00:00", hour: 0, minute: 0},
		{input: "09:30", hour: 9, minute: 30},
		{input: "23:59", hour: 23, minute: 59},
		{input: "24:00", wantErr: true},
		{input: "12:60", wantErr: true},
		{input: "9:30", wantErr: true},
		{input: "", wantErr: true},
		{input: "12-30", wantErr: true},
	}

	for _, tt := range tests {
		ct, err := ParseClockTime(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.hour, ct.Hour(), "input %q", tt.input)
		assert.Equal(t, tt.minute, ct.Minute(), "input %q", tt.input)
		assert.Equal(t, tt.input, ct.String())
	}
}

func TestClockTime_On(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	got := NewClockTime(14, 30).On(day)

	assert.Equal(t, time.Date(2025, time.March, 10, 14, 30, 0, 0, time.UTC), got)
}

func TestClockTime_JSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		At ClockTime `json:"at"`
	}

	raw, err := json.Marshal(payload{At: NewClockTime(20, 0)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"at":"20:00"}`, string(raw))

	var decoded payload
	require.NoError(t, json.Unmarshal([]byte(`{"at":"06:15"}`), &decoded))
	assert.Equal(t, NewClockTime(6, 15), decoded.At)

	assert.Error(t, json.Unmarshal([]byte(`{"at":"25:00"}`), &decoded))
}

func TestWorkInterval_Complete(t *testing.T) {
	t.Parallel()

	start := NewClockTime(9, 0)
	end := NewClockTime(17, 0)

	assert.True(t, WorkInterval{Start: &start, End: &end}.Complete())
	assert.False(t, WorkInterval{Start: &start}.Complete())
	assert.False(t, WorkInterval{End: &end}.Complete())
	assert.False(t, WorkInterval{}.Complete())
}
