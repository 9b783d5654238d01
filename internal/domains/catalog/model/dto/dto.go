package dto

import (
	"agenda/internal/domains/catalog/model"
	"agenda/shared"
	gDto "agenda/shared/dto"
	gModel "agenda/shared/model"
	"agenda/shared/timezone"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// priceScale is the number of decimal places stored for prices.
const priceScale = 2

type CreateServiceRequest struct {
	Name            string          `json:"name"             validate:"required,max=120"`
	Description     string          `json:"description"      validate:"omitempty,max=2000"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"duration_minutes" validate:"required,quarter"`
	IsActive        *bool           `json:"is_active"`
}

func (c *CreateServiceRequest) ToModel(companyID, actor string) model.Service {
	now := timezone.Now()

	active := true
	if c.IsActive != nil {
		active = *c.IsActive
	}

	return model.Service{
		ID:              uuid.NewString(),
		CompanyID:       companyID,
		Name:            strings.TrimSpace(c.Name),
		Description:     c.Description,
		Price:           c.Price.Round(priceScale),
		DurationMinutes: c.DurationMinutes,
		IsActive:        active,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

type UpdateServiceRequest struct {
	Name            string           `db:"name"             json:"name"             validate:"omitempty,max=120"`
	Description     string           `db:"description"      json:"description"      validate:"omitempty,max=2000"`
	Price           *decimal.Decimal `db:"price"            json:"price"`
	DurationMinutes int              `db:"duration_minutes" json:"duration_minutes" validate:"omitempty,quarter"`
	IsActive        *bool            `db:"is_active"        json:"is_active"`
}

func (u *UpdateServiceRequest) ToUpdateMap(actor string) map[string]any {
	fields := shared.TransformFields(*u, actor)

	if u.Price != nil {
		fields[model.FieldPrice] = u.Price.Round(priceScale)
	}

	return fields
}

type ServiceResponse struct {
	ID              string          `json:"id"`
	CompanyID       string          `json:"company_id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"            swaggertype:"string"`
	DurationMinutes int             `json:"duration_minutes"`
	IsActive        bool            `json:"is_active"`
	gDto.Metadata
}

func (r *ServiceResponse) FromModel(m model.Service) {
	r.ID = m.ID
	r.CompanyID = m.CompanyID
	r.Name = m.Name
	r.Description = m.Description
	r.Price = m.Price
	r.DurationMinutes = m.DurationMinutes
	r.IsActive = m.IsActive
	r.Metadata.FromModel(m.Metadata)
}

type GetServicesResponse struct {
	Services  []ServiceResponse `json:"services"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetServicesResponse) FromModels(models []model.Service, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Services = make([]ServiceResponse, len(models))
	for i, mod := range models {
		r.Services[i].FromModel(mod)
	}
}
