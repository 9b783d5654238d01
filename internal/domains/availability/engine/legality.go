package engine

import "time"

// Booked is an existing booking as far as availability is concerned.
type Booked struct {
	Date     time.Time
	Interval Interval
	Status   Status
}

type LegalityInput struct {
	Date     time.Time
	Proposed Interval
	// Today is the calendar date of the creation moment. Bookings on earlier dates are rejected.
	Today    time.Time
	Open     []Interval
	Existing []Booked
}

// IsLegalBooking returns nil when the proposed interval may be booked. Checks run in order:
// temporal sanity, containment in an open interval, then overlap with pending or confirmed
// bookings on the same date.
func IsLegalBooking(in LegalityInput) error {
	if !in.Proposed.Start.Valid() || !in.Proposed.End.Valid() {
		return &ValidationError{Field: "start_time", Message: "time of day is out of range"}
	}

	if in.Proposed.Empty() {
		return &ValidationError{Field: "end_time", Message: "start time must be before end time"}
	}

	if beforeDay(in.Date, in.Today) {
		return &ValidationError{Field: "booking_date", Message: "booking date cannot be in the past"}
	}

	contained := false

	for _, open := range in.Open {
		if open.Contains(in.Proposed) {
			contained = true

			break
		}
	}

	if !contained {
		return &AvailabilityConflict{Reason: ReasonOutsideBusinessHours}
	}

	sameDay := make([]Booked, 0, len(in.Existing))

	for _, existing := range in.Existing {
		if existing.Date.IsZero() || SameDay(existing.Date, in.Date) {
			sameDay = append(sameDay, existing)
		}
	}

	if overlapsBlocking(in.Proposed, sameDay) {
		return &AvailabilityConflict{Reason: ReasonTimeSlotUnavailable}
	}

	return nil
}

func overlapsBlocking(candidate Interval, booked []Booked) bool {
	for _, existing := range booked {
		if existing.Status.Blocks() && candidate.Overlaps(existing.Interval) {
			return true
		}
	}

	return false
}
