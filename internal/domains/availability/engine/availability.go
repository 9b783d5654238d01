package engine

import "time"

// WeeklyRule is the recurring open window for one day of the week.
type WeeklyRule struct {
	DayOfWeek time.Weekday
	Open      Interval
	Active    bool
}

// Exception replaces the weekly rule on a single date. A closed exception has no open time.
type Exception struct {
	Date   time.Time
	Closed bool
	Open   Interval
}

// OpenIntervalsFor returns the open time on date. An exception for the date wins outright;
// otherwise the active weekly rules for the weekday apply. Missing or inactive rules mean closed.
func OpenIntervalsFor(date time.Time, rules []WeeklyRule, exceptions []Exception) []Interval {
	for _, exception := range exceptions {
		if !SameDay(exception.Date, date) {
			continue
		}

		if exception.Closed {
			return []Interval{}
		}

		return normalize([]Interval{exception.Open})
	}

	open := make([]Interval, 0, 1)

	for _, rule := range rules {
		if rule.Active && rule.DayOfWeek == date.Weekday() {
			open = append(open, rule.Open)
		}
	}

	return normalize(open)
}

// Slots walks each open interval in step increments and returns every duration-long slot that
// fits and does not overlap a blocking booking.
func Slots(open []Interval, booked []Booked, durationMinutes, stepMinutes int) []Interval {
	slots := []Interval{}

	if durationMinutes <= 0 || stepMinutes <= 0 {
		return slots
	}

	for _, window := range open {
		for start := window.Start; start+ClockTime(durationMinutes) <= window.End; start += ClockTime(stepMinutes) {
			candidate := Interval{Start: start, End: SlotEnd(start, durationMinutes)}

			if !overlapsBlocking(candidate, booked) {
				slots = append(slots, candidate)
			}
		}
	}

	return slots
}

// SameDay compares calendar dates, ignoring time of day and location.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	return ay == by && am == bm && ad == bd
}

// beforeDay reports whether a falls on an earlier calendar date than b.
func beforeDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	if ay != by {
		return ay < by
	}

	if am != bm {
		return am < bm
	}

	return ad < bd
}
