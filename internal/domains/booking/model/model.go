package model

import (
	"agenda/internal/domains/availability/engine"
	"agenda/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldCompanyID    = "company_id"
	FieldServiceID    = "service_id"
	FieldClientUserID = "client_user_id"
	FieldClientName   = "client_name"
	FieldClientEmail  = "client_email"
	FieldClientPhone  = "client_phone"
	FieldBookingDate  = "booking_date"
	FieldStartTime    = "start_time"
	FieldEndTime      = "end_time"
	FieldStatus       = "status"
	FieldNotes        = "notes"
)

type Booking struct {
	ID           string        `db:"id"`
	CompanyID    string        `db:"company_id"`
	ServiceID    string        `db:"service_id"`
	ClientUserID *string       `db:"client_user_id"`
	ClientName   string        `db:"client_name"`
	ClientEmail  string        `db:"client_email"`
	ClientPhone  string        `db:"client_phone"`
	BookingDate  time.Time     `db:"booking_date"`
	StartTime    string        `db:"start_time"`
	EndTime      string        `db:"end_time"`
	Status       engine.Status `db:"status"`
	Notes        string        `db:"notes"`
	model.Metadata
}

// Interval is the booked time as the engine sees it.
func (b Booking) Interval() (engine.Interval, error) {
	return engine.NewInterval(b.StartTime, b.EndTime)
}

func (b Booking) ToBooked() (engine.Booked, error) {
	interval, err := b.Interval()
	if err != nil {
		return engine.Booked{}, err
	}

	return engine.Booked{
		Date:     b.BookingDate,
		Interval: interval,
		Status:   b.Status,
	}, nil
}

// BookedFrom converts stored bookings for the engine. A booking whose times cannot be read makes
// the whole day unknown rather than silently dropping its block.
func BookedFrom(bookings []Booking) ([]engine.Booked, error) {
	booked := make([]engine.Booked, len(bookings))

	for i, b := range bookings {
		item, err := b.ToBooked()
		if err != nil {
			return nil, engine.Unavailable("read booking "+b.ID, err)
		}

		booked[i] = item
	}

	return booked, nil
}

// BookedBy reports whether userID is the client who made the booking.
func (b Booking) BookedBy(userID string) bool {
	return b.ClientUserID != nil && userID != "" && *b.ClientUserID == userID
}

// StartsAt combines the booking date and start time in loc.
func (b Booking) StartsAt(loc *time.Location) time.Time {
	start, _ := engine.ParseClock(b.StartTime)
	y, m, d := b.BookingDate.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, loc).Add(time.Duration(start) * time.Minute)
}

// BlockingStatuses are the statuses that hold a slot.
func BlockingStatuses() []string {
	return []string{string(engine.StatusPending), string(engine.StatusConfirmed)}
}
