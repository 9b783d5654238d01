// Package engine derives open time from a company's weekly rules and date exceptions, and decides
// whether a proposed booking fits into it. Everything here is pure: callers fetch the records and
// handle persistence.
package engine

import (
	"fmt"
	"strings"
	"time"
)

const (
	MinutesPerHour = 60
	MinutesPerDay  = 24 * MinutesPerHour
)

// ClockTime is a company-local wall-clock value in minutes since midnight. 1440 is allowed so an
// interval can close at the end of the day.
type ClockTime int

// ParseClock accepts "HH:MM" and "HH:MM:SS". Seconds are dropped; "24:00" means end of day.
func ParseClock(value string) (ClockTime, error) {
	value = strings.TrimSpace(value)

	if value == "24:00" || value == "24:00:00" {
		return MinutesPerDay, nil
	}

	for _, layout := range []string{"15:04", "15:04:05"} {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return ClockTime(parsed.Hour()*MinutesPerHour + parsed.Minute()), nil
		}
	}

	return 0, &ValidationError{Field: "time", Message: fmt.Sprintf("invalid time of day %q", value)}
}

// MustParseClock is ParseClock for constants and tests.
func MustParseClock(value string) ClockTime {
	c, err := ParseClock(value)
	if err != nil {
		panic(err)
	}

	return c
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/MinutesPerHour, int(c)%MinutesPerHour)
}

func (c ClockTime) Valid() bool {
	return c >= 0 && c <= MinutesPerDay
}

// EndTime adds the duration using 24-hour wall-clock arithmetic. The result wraps at midnight, so
// a late start can produce an end that is earlier than the start on the same date.
func EndTime(start ClockTime, durationMinutes int) ClockTime {
	total := (int(start) + durationMinutes) % MinutesPerDay
	if total < 0 {
		total += MinutesPerDay
	}

	return ClockTime(total)
}

// SlotEnd is EndTime for a booking on a single date. An end landing exactly on midnight closes the
// day at 24:00; any other wrap is kept and fails the start-before-end check.
func SlotEnd(start ClockTime, durationMinutes int) ClockTime {
	if int(start)+durationMinutes == MinutesPerDay {
		return MinutesPerDay
	}

	return EndTime(start, durationMinutes)
}
