package model

import (
	"agenda/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "services"
	EntityName = "service"

	FieldID              = "id"
	FieldCompanyID       = "company_id"
	FieldName            = "name"
	FieldDescription     = "description"
	FieldPrice           = "price"
	FieldDurationMinutes = "duration_minutes"
	FieldIsActive        = "is_active"
)

// DurationGranularity is the step, in minutes, service durations are expressed in.
const DurationGranularity = 15

type Service struct {
	ID              string          `db:"id"`
	CompanyID       string          `db:"company_id"`
	Name            string          `db:"name"`
	Description     string          `db:"description"`
	Price           decimal.Decimal `db:"price"`
	DurationMinutes int             `db:"duration_minutes"`
	IsActive        bool            `db:"is_active"`
	model.Metadata
}
