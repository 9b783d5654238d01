package dto

import (
	"agenda/internal/domains/availability/engine"
	"agenda/shared/constant"
	"time"
)

type IntervalResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func FromIntervals(intervals []engine.Interval) []IntervalResponse {
	res := make([]IntervalResponse, len(intervals))
	for i, interval := range intervals {
		res[i] = IntervalResponse{Start: interval.Start.String(), End: interval.End.String()}
	}

	return res
}

// DayResponse is the open time of one date and, when a service is given, the bookable slots for it.
type DayResponse struct {
	CompanyID       string             `json:"company_id"`
	Date            string             `json:"date"`
	Open            []IntervalResponse `json:"open"`
	ServiceID       string             `json:"service_id,omitempty"`
	DurationMinutes int                `json:"duration_minutes,omitempty"`
	Slots           []IntervalResponse `json:"slots,omitempty"`
}

type CalendarDay struct {
	Date    string             `json:"date"`
	Weekday string             `json:"weekday"`
	Closed  bool               `json:"closed"`
	Open    []IntervalResponse `json:"open"`
}

func NewCalendarDay(date time.Time, open []engine.Interval) CalendarDay {
	return CalendarDay{
		Date:    date.Format(constant.DayFormat),
		Weekday: date.Weekday().String(),
		Closed:  len(open) == 0,
		Open:    FromIntervals(open),
	}
}

type CalendarResponse struct {
	CompanyID string        `json:"company_id"`
	From      string        `json:"from"`
	To        string        `json:"to"`
	Days      []CalendarDay `json:"days"`
}
