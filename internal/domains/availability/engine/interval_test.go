package engine_test

import (
	"agenda/internal/domains/availability/engine"
	"testing"

	"github.com/stretchr/testify/assert"
)

func interval(start, end string) engine.Interval {
	return engine.Interval{Start: engine.MustParseClock(start), End: engine.MustParseClock(end)}
}

func TestInterval_Contains(t *testing.T) {
	open := interval("09:00", "17:00")

	assert.True(t, open.Contains(interval("09:00", "10:00")))
	assert.True(t, open.Contains(interval("16:00", "17:00")))
	assert.False(t, open.Contains(interval("08:00", "10:00")))
	assert.False(t, open.Contains(interval("16:30", "17:30")))
}

func TestInterval_ZeroLengthContainsNothing(t *testing.T) {
	closed := interval("09:00", "09:00")

	assert.True(t, closed.Empty())
	assert.False(t, closed.Contains(interval("09:00", "09:00")))
	assert.Equal(t, 0, closed.Minutes())
}

func TestInterval_Overlaps(t *testing.T) {
	existing := interval("10:00", "11:00")

	assert.True(t, existing.Overlaps(interval("10:30", "11:30")))
	assert.True(t, existing.Overlaps(interval("09:30", "10:30")))
	assert.True(t, existing.Overlaps(interval("10:15", "10:45")))
	assert.False(t, existing.Overlaps(interval("11:00", "12:00")))
	assert.False(t, existing.Overlaps(interval("09:00", "10:00")))
}

func TestNewInterval(t *testing.T) {
	got, err := engine.NewInterval("08:00", "12:30:00")
	assert.NoError(t, err)
	assert.Equal(t, "[08:00, 12:30)", got.String())

	_, err = engine.NewInterval("08:00", "noon")
	assert.Error(t, err)
}
