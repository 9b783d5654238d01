package dto

import (
	"agenda/internal/domains/availability/engine"
	"agenda/internal/domains/schedule/model"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	gModel "agenda/shared/model"
	"agenda/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type WeeklyRuleRequest struct {
	DayOfWeek int    `json:"day_of_week" validate:"gte=0,lte=6"`
	StartTime string `json:"start_time"  validate:"required,clock"`
	EndTime   string `json:"end_time"    validate:"required,clock"`
	IsActive  *bool  `json:"is_active"`
}

type PutWeeklyRequest struct {
	Rules []WeeklyRuleRequest `json:"rules" validate:"required,min=1,max=7,dive"`
}

// Validate checks what tags cannot: one rule per weekday and open rules that start before they end.
func (p *PutWeeklyRequest) Validate() error {
	seen := map[int]bool{}

	for _, rule := range p.Rules {
		if seen[rule.DayOfWeek] {
			return &engine.ValidationError{Field: "rules", Message: "each day_of_week may appear only once"}
		}

		seen[rule.DayOfWeek] = true

		open, err := engine.NewInterval(rule.StartTime, rule.EndTime)
		if err != nil {
			return err
		}

		if rule.active() && open.Empty() {
			return &engine.ValidationError{Field: "end_time", Message: "start time must be before end time"}
		}
	}

	return nil
}

func (r WeeklyRuleRequest) active() bool {
	return r.IsActive == nil || *r.IsActive
}

func (p *PutWeeklyRequest) ToModels(companyID, actor string) []model.WeeklySchedule {
	now := timezone.Now()
	models := make([]model.WeeklySchedule, len(p.Rules))

	for i, rule := range p.Rules {
		models[i] = model.WeeklySchedule{
			ID:        uuid.NewString(),
			CompanyID: companyID,
			DayOfWeek: rule.DayOfWeek,
			StartTime: rule.StartTime,
			EndTime:   rule.EndTime,
			IsActive:  rule.active(),
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  actor,
				ModifiedBy: actor,
			},
		}
	}

	return models
}

type PutExceptionRequest struct {
	Date      string `json:"date"       validate:"required,day"`
	IsClosed  bool   `json:"is_closed"`
	StartTime string `json:"start_time" validate:"required_if=IsClosed false,omitempty,clock"`
	EndTime   string `json:"end_time"   validate:"required_if=IsClosed false,omitempty,clock"`
	Reason    string `json:"reason"     validate:"omitempty,max=255"`
}

func (p *PutExceptionRequest) Validate() error {
	if p.IsClosed {
		return nil
	}

	open, err := engine.NewInterval(p.StartTime, p.EndTime)
	if err != nil {
		return err
	}

	if open.Empty() {
		return &engine.ValidationError{Field: "end_time", Message: "start time must be before end time"}
	}

	return nil
}

func (p *PutExceptionRequest) ToModel(companyID, actor string) (model.ScheduleException, error) {
	date, err := timezone.ParseDay(p.Date)
	if err != nil {
		return model.ScheduleException{}, &engine.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"}
	}

	now := timezone.Now()

	exception := model.ScheduleException{
		ID:            uuid.NewString(),
		CompanyID:     companyID,
		ExceptionDate: date,
		IsClosed:      p.IsClosed,
		Reason:        p.Reason,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}

	if !p.IsClosed {
		start, end := p.StartTime, p.EndTime
		exception.StartTime = &start
		exception.EndTime = &end
	}

	return exception, nil
}

type WeeklyRuleResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsActive  bool   `json:"is_active"`
}

func (r *WeeklyRuleResponse) FromModel(m model.WeeklySchedule) {
	r.ID = m.ID
	r.CompanyID = m.CompanyID
	r.DayOfWeek = m.DayOfWeek
	r.StartTime = clock(m.StartTime)
	r.EndTime = clock(m.EndTime)
	r.IsActive = m.IsActive
}

func FromWeeklyModels(models []model.WeeklySchedule) []WeeklyRuleResponse {
	res := make([]WeeklyRuleResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

type ExceptionResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Date      string `json:"date"`
	IsClosed  bool   `json:"is_closed"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
	Reason    string `json:"reason"`
	gDto.Metadata
}

func (r *ExceptionResponse) FromModel(m model.ScheduleException) {
	r.ID = m.ID
	r.CompanyID = m.CompanyID
	r.Date = m.ExceptionDate.Format(constant.DayFormat)
	r.IsClosed = m.IsClosed
	r.Reason = m.Reason
	r.Metadata.FromModel(m.Metadata)

	if m.StartTime != nil {
		r.StartTime = clock(*m.StartTime)
	}

	if m.EndTime != nil {
		r.EndTime = clock(*m.EndTime)
	}
}

func FromExceptionModels(models []model.ScheduleException) []ExceptionResponse {
	res := make([]ExceptionResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

// ExceptionRange is an inclusive date range for listing exceptions.
type ExceptionRange struct {
	From time.Time
	To   time.Time
}

// clock renders stored "HH:MM:SS" values as "HH:MM".
func clock(value string) string {
	c, err := engine.ParseClock(value)
	if err != nil {
		return value
	}

	return c.String()
}
