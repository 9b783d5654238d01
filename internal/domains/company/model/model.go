package model

import (
	"agenda/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "companies"
	EntityName = "company"

	FieldID          = "id"
	FieldOwnerID     = "owner_id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldAddress     = "address"
	FieldCity        = "city"
	FieldCategory    = "category"
	FieldTags        = "tags"
	FieldLogoURL     = "logo_url"
	FieldIsActive    = "is_active"
)

type Company struct {
	ID          string         `db:"id"`
	OwnerID     string         `db:"owner_id"`
	Name        string         `db:"name"`
	Description string         `db:"description"`
	Email       string         `db:"email"`
	Phone       string         `db:"phone"`
	Address     string         `db:"address"`
	City        string         `db:"city"`
	Category    Category       `db:"category"`
	Tags        pq.StringArray `db:"tags"`
	LogoURL     string         `db:"logo_url"`
	IsActive    bool           `db:"is_active"`
	model.Metadata
}

func (c Company) OwnedBy(userID string) bool {
	return userID != "" && c.OwnerID == userID
}
