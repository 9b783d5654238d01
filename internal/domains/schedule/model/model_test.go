package model_test

import (
	"agenda/internal/domains/availability/engine"
	"agenda/internal/domains/schedule/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string {
	return &s
}

func TestWeeklySchedule_ToRule(t *testing.T) {
	rule, err := model.WeeklySchedule{DayOfWeek: 1, StartTime: "09:00:00", EndTime: "17:30:00", IsActive: true}.ToRule()
	require.NoError(t, err)

	assert.Equal(t, time.Monday, rule.DayOfWeek)
	assert.Equal(t, "[09:00, 17:30)", rule.Open.String())
	assert.True(t, rule.Active)

	_, err = model.WeeklySchedule{StartTime: "nine", EndTime: "17:00"}.ToRule()
	assert.Error(t, err)
}

func TestScheduleException_ToException(t *testing.T) {
	date := time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC)

	closed, err := model.ScheduleException{ExceptionDate: date, IsClosed: true}.ToException()
	require.NoError(t, err)
	assert.True(t, closed.Closed)

	open, err := model.ScheduleException{ExceptionDate: date, StartTime: ptr("10:00"), EndTime: ptr("14:00")}.ToException()
	require.NoError(t, err)
	assert.Equal(t, engine.Interval{Start: 600, End: 840}, open.Open)

	empty, err := model.ScheduleException{ExceptionDate: date}.ToException()
	require.NoError(t, err)
	assert.True(t, empty.Open.Empty())
}
