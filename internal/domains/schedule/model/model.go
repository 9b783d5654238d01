package model

import (
	"agenda/internal/domains/availability/engine"
	"agenda/shared/model"
	"time"
)

const (
	WeeklyTableName  = "weekly_schedules"
	WeeklyEntityName = "weekly_schedule"

	ExceptionTableName  = "schedule_exceptions"
	ExceptionEntityName = "schedule_exception"

	FieldID            = "id"
	FieldCompanyID     = "company_id"
	FieldDayOfWeek     = "day_of_week"
	FieldStartTime     = "start_time"
	FieldEndTime       = "end_time"
	FieldIsActive      = "is_active"
	FieldExceptionDate = "exception_date"
	FieldIsClosed      = "is_closed"
	FieldReason        = "reason"
)

// WeeklySchedule is the recurring open window for one weekday (0 is Sunday).
type WeeklySchedule struct {
	ID        string `db:"id"`
	CompanyID string `db:"company_id"`
	DayOfWeek int    `db:"day_of_week"`
	StartTime string `db:"start_time"`
	EndTime   string `db:"end_time"`
	IsActive  bool   `db:"is_active"`
	model.Metadata
}

func (w WeeklySchedule) ToRule() (engine.WeeklyRule, error) {
	open, err := engine.NewInterval(w.StartTime, w.EndTime)
	if err != nil {
		return engine.WeeklyRule{}, err
	}

	return engine.WeeklyRule{
		DayOfWeek: time.Weekday(w.DayOfWeek),
		Open:      open,
		Active:    w.IsActive,
	}, nil
}

// ScheduleException overrides the weekly schedule on one date. Times are null when closed.
type ScheduleException struct {
	ID            string    `db:"id"`
	CompanyID     string    `db:"company_id"`
	ExceptionDate time.Time `db:"exception_date"`
	IsClosed      bool      `db:"is_closed"`
	StartTime     *string   `db:"start_time"`
	EndTime       *string   `db:"end_time"`
	Reason        string    `db:"reason"`
	model.Metadata
}

func (e ScheduleException) ToException() (engine.Exception, error) {
	exception := engine.Exception{
		Date:   e.ExceptionDate,
		Closed: e.IsClosed,
	}

	if e.IsClosed {
		return exception, nil
	}

	if e.StartTime == nil || e.EndTime == nil {
		// an open exception without times has no open time
		return exception, nil
	}

	open, err := engine.NewInterval(*e.StartTime, *e.EndTime)
	if err != nil {
		return engine.Exception{}, err
	}

	exception.Open = open

	return exception, nil
}
