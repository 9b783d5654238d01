package engine

import (
	"agenda/shared/failure"
	"errors"
	"fmt"
)

// Reason tags why a booking request was rejected for availability.
type Reason string

const (
	ReasonOutsideBusinessHours Reason = "outside_business_hours"
	ReasonTimeSlotUnavailable  Reason = "time_slot_unavailable"
)

const reasonValidation = "validation"

var reasonMessages = map[Reason]string{
	ReasonOutsideBusinessHours: "outside business hours",
	ReasonTimeSlotUnavailable:  "time slot unavailable",
}

// ValidationError is a malformed request the caller can correct.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AvailabilityConflict rejects a well-formed request that does not fit the company's open time.
type AvailabilityConflict struct {
	Reason Reason
}

func (e *AvailabilityConflict) Error() string {
	if msg, ok := reasonMessages[e.Reason]; ok {
		return msg
	}

	return string(e.Reason)
}

// StoreUnavailable means the data needed to decide could not be loaded. Legality is unknown, so the
// request must be retried rather than accepted.
type StoreUnavailable struct {
	Op  string
	Err error
}

func (e *StoreUnavailable) Error() string {
	return fmt.Sprintf("%s: store unavailable: %v", e.Op, e.Err)
}

func (e *StoreUnavailable) Unwrap() error {
	return e.Err
}

func (e *StoreUnavailable) Temporary() bool {
	return true
}

func Unavailable(op string, err error) error {
	return &StoreUnavailable{Op: op, Err: err}
}

func IsConflict(err error, reason Reason) bool {
	var conflict *AvailabilityConflict

	return errors.As(err, &conflict) && conflict.Reason == reason
}

// AsFailure converts engine errors into HTTP failures. Other errors pass through unchanged.
func AsFailure(err error) error {
	var (
		validation  *ValidationError
		conflict    *AvailabilityConflict
		unavailable *StoreUnavailable
	)

	switch {
	case err == nil:
		return nil
	case errors.As(err, &validation):
		return failure.BadRequestWithReason(reasonValidation, validation.Message) //nolint:wrapcheck
	case errors.As(err, &conflict):
		return failure.ConflictWithReason(string(conflict.Reason), conflict.Error()) //nolint:wrapcheck
	case errors.As(err, &unavailable):
		return failure.ServiceUnavailable("availability data is temporarily unavailable, please retry") //nolint:wrapcheck
	}

	return err
}
