package dto

import (
	"agenda/infras/kafka"
	"agenda/internal/domains/availability/engine"
	"agenda/internal/domains/booking/model"
	"agenda/shared"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	gModel "agenda/shared/model"
	"agenda/shared/timezone"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	EventBookingCreated       = "booking.created"
	EventBookingStatusChanged = "booking.status_changed"
)

type CreateBookingRequest struct {
	CompanyID   string `json:"company_id"   validate:"required,uuid"`
	ServiceID   string `json:"service_id"   validate:"required,uuid"`
	ClientName  string `json:"client_name"  validate:"required,max=100"`
	ClientEmail string `json:"client_email" validate:"required,email,max=100"`
	ClientPhone string `json:"client_phone" validate:"omitempty,max=20"`
	BookingDate string `json:"booking_date" validate:"required,day"`
	StartTime   string `json:"start_time"   validate:"required,clock"`
	Notes       string `json:"notes"        validate:"omitempty,max=500"`
}

// Parse reads the date and start time. Bad values come back as engine.ValidationError.
func (c *CreateBookingRequest) Parse() (time.Time, engine.ClockTime, error) {
	date, err := timezone.ParseDay(c.BookingDate)
	if err != nil {
		return time.Time{}, 0, &engine.ValidationError{Field: "booking_date", Message: "booking_date must be in YYYY-MM-DD format"}
	}

	start, err := engine.ParseClock(c.StartTime)
	if err != nil {
		return time.Time{}, 0, &engine.ValidationError{Field: "start_time", Message: "start_time must be in HH:MM format"}
	}

	return date, start, nil
}

// ToModel builds a pending booking for the caller. The end is computed by the caller from the
// service duration.
func (c *CreateBookingRequest) ToModel(clientUserID string, date time.Time, interval engine.Interval) model.Booking {
	now := timezone.Now()
	actor := clientUserID

	var client *string
	if clientUserID != constant.Empty {
		client = &clientUserID
	} else {
		actor = constant.ContextGuest
	}

	return model.Booking{
		ID:           uuid.NewString(),
		CompanyID:    c.CompanyID,
		ServiceID:    c.ServiceID,
		ClientUserID: client,
		ClientName:   strings.TrimSpace(c.ClientName),
		ClientEmail:  strings.TrimSpace(c.ClientEmail),
		ClientPhone:  strings.TrimSpace(c.ClientPhone),
		BookingDate:  date,
		StartTime:    interval.Start.String(),
		EndTime:      interval.End.String(),
		Status:       engine.InitialStatus,
		Notes:        c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

type UpdateStatusRequest struct {
	Status engine.Status `json:"status" validate:"required,enum"`
}

// ListRequest narrows booking listings by date and status.
type ListRequest struct {
	Date   string
	Status string
	gDto.QueryParams
}

func (l *ListRequest) FromRequest(r *http.Request) {
	query := r.URL.Query()

	l.Date = strings.TrimSpace(query.Get(constant.RequestParamDate))
	l.Status = strings.TrimSpace(query.Get(constant.RequestParamStatus))

	l.QueryParams.FromRequest(r, true)
}

// Filters returns the date and status predicates. Malformed values are validation errors.
func (l *ListRequest) Filters() ([]any, error) {
	filters := []any{}

	if l.Date != constant.Empty {
		date, err := timezone.ParseDay(l.Date)
		if err != nil {
			return nil, &engine.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"}
		}

		filters = append(filters, gDto.Filter{
			Field:    model.FieldBookingDate,
			Value:    date.Format(constant.DayFormat),
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	if l.Status != constant.Empty {
		status, err := engine.ParseStatus(l.Status)
		if err != nil {
			return nil, err
		}

		filters = append(filters, gDto.Filter{
			Field:    model.FieldStatus,
			Value:    string(status),
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	return filters, nil
}

type BookingResponse struct {
	ID           string        `json:"id"`
	CompanyID    string        `json:"company_id"`
	ServiceID    string        `json:"service_id"`
	ClientUserID string        `json:"client_user_id,omitempty"`
	ClientName   string        `json:"client_name"`
	ClientEmail  string        `json:"client_email"`
	ClientPhone  string        `json:"client_phone"`
	BookingDate  string        `json:"booking_date"`
	StartTime    string        `json:"start_time"`
	EndTime      string        `json:"end_time"`
	Status       engine.Status `json:"status"`
	Notes        string        `json:"notes"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(m model.Booking) {
	r.ID = m.ID
	r.CompanyID = m.CompanyID
	r.ServiceID = m.ServiceID
	r.ClientName = m.ClientName
	r.ClientEmail = m.ClientEmail
	r.ClientPhone = m.ClientPhone
	r.BookingDate = m.BookingDate.Format(constant.DayFormat)
	r.StartTime = clock(m.StartTime)
	r.EndTime = clock(m.EndTime)
	r.Status = m.Status
	r.Notes = m.Notes
	r.Metadata.FromModel(m.Metadata)

	if m.ClientUserID != nil {
		r.ClientUserID = *m.ClientUserID
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
	r.Bookings = make([]BookingResponse, len(models))

	for i, m := range models {
		r.Bookings[i].FromModel(m)
	}
}

// Event is published for the notification collaborator after a booking write commits.
type Event struct {
	Type         string        `json:"type"`
	BookingID    string        `json:"booking_id"`
	CompanyID    string        `json:"company_id"`
	ServiceID    string        `json:"service_id"`
	ClientUserID string        `json:"client_user_id,omitempty"`
	ClientName   string        `json:"client_name"`
	ClientEmail  string        `json:"client_email"`
	BookingDate  string        `json:"booking_date"`
	StartTime    string        `json:"start_time"`
	EndTime      string        `json:"end_time"`
	Status       engine.Status `json:"status"`
	Previous     engine.Status `json:"previous_status,omitempty"`
	OccurredAt   time.Time     `json:"occurred_at"`
}

func NewEvent(eventType string, m model.Booking, previous engine.Status) Event {
	var res BookingResponse
	res.FromModel(m)

	return Event{
		Type:         eventType,
		BookingID:    res.ID,
		CompanyID:    res.CompanyID,
		ServiceID:    res.ServiceID,
		ClientUserID: res.ClientUserID,
		ClientName:   res.ClientName,
		ClientEmail:  res.ClientEmail,
		BookingDate:  res.BookingDate,
		StartTime:    res.StartTime,
		EndTime:      res.EndTime,
		Status:       res.Status,
		Previous:     previous,
		OccurredAt:   timezone.Now(),
	}
}

// ToMessage keys the event by company so one company's events stay ordered on a partition.
func (e Event) ToMessage() kafka.Message {
	return kafka.Message{Key: e.CompanyID, Value: e}
}

func clock(value string) string {
	c, err := engine.ParseClock(value)
	if err != nil {
		return value
	}

	return c.String()
}
