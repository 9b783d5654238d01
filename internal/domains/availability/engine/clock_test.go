package engine_test

import (
	"agenda/internal/domains/availability/engine"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  engine.ClockTime
		expectErr bool
	}{
		{name: "hours and minutes", input: "09:30", expected: 570},
		{name: "with seconds", input: "17:00:00", expected: 1020},
		{name: "midnight", input: "00:00", expected: 0},
		{name: "end of day", input: "24:00", expected: 1440},
		{name: "out of range", input: "25:00", expectErr: true},
		{name: "garbage", input: "nine", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.ParseClock(tt.input)
			if tt.expectErr {
				var validation *engine.ValidationError
				assert.ErrorAs(t, err, &validation)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestClockTime_String(t *testing.T) {
	assert.Equal(t, "09:05", engine.ClockTime(545).String())
	assert.Equal(t, "00:00", engine.ClockTime(0).String())
	assert.Equal(t, "24:00", engine.ClockTime(1440).String())
}

func TestEndTime(t *testing.T) {
	tests := []struct {
		start    string
		duration int
		expected string
	}{
		{start: "09:00", duration: 60, expected: "10:00"},
		{start: "09:45", duration: 30, expected: "10:15"},
		{start: "23:30", duration: 60, expected: "00:30"},
		{start: "22:00", duration: 120, expected: "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.start, func(t *testing.T) {
			got := engine.EndTime(engine.MustParseClock(tt.start), tt.duration)
			assert.Equal(t, tt.expected, got.String())
		})
	}
}

func TestSlotEnd(t *testing.T) {
	tests := []struct {
		start    string
		duration int
		expected engine.ClockTime
	}{
		{start: "09:00", duration: 60, expected: engine.MustParseClock("10:00")},
		{start: "23:00", duration: 60, expected: engine.MinutesPerDay},
		{start: "22:00", duration: 120, expected: engine.MinutesPerDay},
		{start: "23:30", duration: 60, expected: engine.MustParseClock("00:30")},
	}

	for _, tt := range tests {
		t.Run(tt.start, func(t *testing.T) {
			assert.Equal(t, tt.expected, engine.SlotEnd(engine.MustParseClock(tt.start), tt.duration))
		})
	}
}
