package dto_test

import (
	"agenda/internal/domains/company/model"
	"agenda/internal/domains/company/model/dto"
	gDto "agenda/shared/dto"
	"net/http/httptest"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTags(t *testing.T) {
	got := dto.NormalizeTags([]string{" Vegan ", "vegan", "", "Kids", "  "})

	assert.Equal(t, []string{"vegan", "kids"}, got)
}

func TestCreateCompanyRequest_ToModel(t *testing.T) {
	req := dto.CreateCompanyRequest{
		Name:     "  Fade Factory ",
		City:     "Lisbon",
		Category: model.CategoryBarbershop,
		Tags:     []string{"Beard", "beard"},
	}

	company := req.ToModel("owner-1")

	assert.NotEmpty(t, company.ID)
	assert.Equal(t, "owner-1", company.OwnerID)
	assert.Equal(t, "Fade Factory", company.Name)
	assert.Equal(t, pq.StringArray{"beard"}, company.Tags)
	assert.True(t, company.IsActive)
	assert.Equal(t, "owner-1", company.CreatedBy)
}

func TestUpdateCompanyRequest_ToUpdateMap(t *testing.T) {
	inactive := false
	req := dto.UpdateCompanyRequest{Name: "New name", IsActive: &inactive, Tags: []string{"Spa"}}

	fields := req.ToUpdateMap("owner-1")

	assert.Equal(t, "New name", fields[model.FieldName])
	assert.Equal(t, &inactive, fields[model.FieldIsActive])
	assert.Contains(t, fields, model.FieldTags)
	assert.NotContains(t, fields, model.FieldOwnerID)
	assert.NotContains(t, fields, model.FieldCity)
	assert.Equal(t, "owner-1", fields["modified_by"])
}

func TestSearchRequest_FromRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/companies?q=+nails+&tags=Gel,acrylic&tags=gel&city=porto&page=2", nil)

	var req dto.SearchRequest
	req.FromRequest(r)

	assert.Equal(t, "nails", req.Text)
	assert.Equal(t, []string{"gel", "acrylic"}, req.Tags)
	assert.Equal(t, "porto", req.City)
	assert.Equal(t, 2, req.Page)
	assert.Equal(t, 10, req.Limit)
}

func TestSearchRequest_ToFilter(t *testing.T) {
	t.Run("empty search matches all active companies", func(t *testing.T) {
		req := dto.SearchRequest{}
		filter := req.ToFilter()

		where, args := filter.GetWhereClause()

		assert.Equal(t, "(companies.is_active = :is_active)", where)
		assert.Equal(t, map[string]any{"is_active": true}, args)
	})

	t.Run("text tags and city", func(t *testing.T) {
		req := dto.SearchRequest{Text: "Nail", Tags: []string{"gel"}, City: "Porto"}
		filter := req.ToFilter()

		require.Len(t, filter.Filters, 4)

		textGroup, ok := filter.Filters[1].(gDto.FilterGroup)
		require.True(t, ok)
		assert.Equal(t, gDto.FilterGroupOperatorOr, textGroup.Operator)
		assert.Len(t, textGroup.Filters, 4)

		where, args := filter.GetWhereClause()

		assert.Contains(t, where, "companies.tags && :tag_filter")
		assert.Contains(t, where, "LOWER(companies.city) LIKE LOWER(:city_filter)")
		assert.Contains(t, where, "unnest(companies.tags)")
		assert.Equal(t, "%Nail%", args["text_name"])
		assert.Equal(t, "%Porto%", args["city_filter"])
	})
}
