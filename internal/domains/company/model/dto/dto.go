package dto

import (
	"agenda/internal/domains/company/model"
	"agenda/shared"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	gModel "agenda/shared/model"
	"agenda/shared/timezone"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreateCompanyRequest struct {
	Name        string         `json:"name"        validate:"required,max=120"`
	Description string         `json:"description" validate:"omitempty,max=2000"`
	Email       string         `json:"email"       validate:"omitempty,email,max=100"`
	Phone       string         `json:"phone"       validate:"omitempty,max=30"`
	Address     string         `json:"address"     validate:"omitempty,max=255"`
	City        string         `json:"city"        validate:"required,max=100"`
	Category    model.Category `json:"category"    validate:"required,enum"`
	Tags        []string       `json:"tags"        validate:"omitempty,max=20,dive,min=1,max=40"`
}

func (c *CreateCompanyRequest) ToModel(ownerID string) model.Company {
	now := timezone.Now()

	return model.Company{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Name:        strings.TrimSpace(c.Name),
		Description: c.Description,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		City:        strings.TrimSpace(c.City),
		Category:    c.Category,
		Tags:        NormalizeTags(c.Tags),
		IsActive:    true,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  ownerID,
			ModifiedBy: ownerID,
		},
	}
}

// UpdateCompanyRequest has no owner field: ownership is fixed at creation.
type UpdateCompanyRequest struct {
	Name        string         `db:"name"        json:"name"        validate:"omitempty,max=120"`
	Description string         `db:"description" json:"description" validate:"omitempty,max=2000"`
	Email       string         `db:"email"       json:"email"       validate:"omitempty,email,max=100"`
	Phone       string         `db:"phone"       json:"phone"       validate:"omitempty,max=30"`
	Address     string         `db:"address"     json:"address"     validate:"omitempty,max=255"`
	City        string         `db:"city"        json:"city"        validate:"omitempty,max=100"`
	Category    model.Category `db:"category"    json:"category"    validate:"omitempty,enum"`
	Tags        []string       `json:"tags"        validate:"omitempty,max=20,dive,min=1,max=40"`
	IsActive    *bool          `db:"is_active"   json:"is_active"`
}

// ToUpdateMap returns the columns to change. Tags are replaced as a whole when present.
func (u *UpdateCompanyRequest) ToUpdateMap(actor string) map[string]any {
	fields := shared.TransformFields(*u, actor)

	if u.Tags != nil {
		fields[model.FieldTags] = pq.Array(NormalizeTags(u.Tags))
	}

	return fields
}

type UploadLogoRequest struct {
	File multipart.FileHeader `validate:"mimetypes=image/png image/jpeg image/webp,maxfilesize=2"`
}

type LogoResponse struct {
	LogoURL string `json:"logo_url"`
}

type CompanyResponse struct {
	ID          string   `json:"id"`
	OwnerID     string   `json:"owner_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	LogoURL     string   `json:"logo_url"`
	IsActive    bool     `json:"is_active"`
	gDto.Metadata
}

func (r *CompanyResponse) FromModel(m model.Company) {
	r.ID = m.ID
	r.OwnerID = m.OwnerID
	r.Name = m.Name
	r.Description = m.Description
	r.Email = m.Email
	r.Phone = m.Phone
	r.Address = m.Address
	r.City = m.City
	r.Category = string(m.Category)
	r.Tags = []string(m.Tags)
	r.LogoURL = m.LogoURL
	r.IsActive = m.IsActive
	r.Metadata.FromModel(m.Metadata)

	if r.Tags == nil {
		r.Tags = []string{}
	}
}

type GetCompaniesResponse struct {
	Companies []CompanyResponse `json:"companies"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetCompaniesResponse) FromModels(models []model.Company, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Companies = make([]CompanyResponse, len(models))
	for i, mod := range models {
		r.Companies[i].FromModel(mod)
	}
}

// SearchRequest is the public company search. Empty text matches every active company.
type SearchRequest struct {
	Text string
	Tags []string
	City string
	gDto.QueryParams
}

func (s *SearchRequest) FromRequest(r *http.Request) {
	query := r.URL.Query()

	s.Text = strings.TrimSpace(query.Get(constant.RequestParamQuery))
	s.City = strings.TrimSpace(query.Get(constant.RequestParamCity))

	for _, raw := range query[constant.RequestParamTags] {
		s.Tags = append(s.Tags, strings.Split(raw, ",")...)
	}

	s.Tags = NormalizeTags(s.Tags)

	s.QueryParams.FromRequest(r, true)
}

// ToFilter builds the predicate: active only, text as a case-insensitive substring over name,
// description, category or any tag, tags by overlap, and city as a case-insensitive substring.
func (s *SearchRequest) ToFilter() gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldIsActive,
			Value:    true,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		},
	}

	if s.Text != "" {
		filters = append(filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{ArgName: "text_name", Field: model.FieldName, Value: s.Text, Operator: gDto.FilterOperatorLike, Table: model.TableName},
				gDto.Filter{ArgName: "text_description", Field: model.FieldDescription, Value: s.Text, Operator: gDto.FilterOperatorLike, Table: model.TableName},
				gDto.Filter{ArgName: "text_category", Field: model.FieldCategory, Value: s.Text, Operator: gDto.FilterOperatorLike, Table: model.TableName},
				gDto.Filter{ArgName: "text_tags", Field: model.FieldTags, Value: s.Text, Operator: gDto.FilterOperatorAnyLike, Table: model.TableName},
			},
		})
	}

	if len(s.Tags) > 0 {
		filters = append(filters, gDto.Filter{
			ArgName:  "tag_filter",
			Field:    model.FieldTags,
			Value:    s.Tags,
			Operator: gDto.FilterOperatorOverlap,
			Table:    model.TableName,
		})
	}

	if s.City != "" {
		filters = append(filters, gDto.Filter{
			ArgName:  "city_filter",
			Field:    model.FieldCity,
			Value:    s.City,
			Operator: gDto.FilterOperatorLike,
			Table:    model.TableName,
		})
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}
}

// NormalizeTags lowercases, trims and de-duplicates tags, keeping first-seen order.
func NormalizeTags(tags []string) []string {
	result := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))

	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}

		if _, ok := seen[tag]; ok {
			continue
		}

		seen[tag] = struct{}{}
		result = append(result, tag)
	}

	return result
}
