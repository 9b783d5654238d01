package dto_test

import (
	"agenda/shared/constant"
	"agenda/shared/dto"
	"agenda/shared/model"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	})

	assert.NotEmpty(t, metadata.CreatedAt)
	assert.NotEmpty(t, metadata.ModifiedAt)
	assert.Equal(t, "creator", metadata.CreatedBy)
	assert.Equal(t, "modifier", metadata.ModifiedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:           "all valid parameters",
			queryParams:    map[string]string{"page": "2", "limit": "20", "sort_by": "name", "sort_dir": "asc"},
			defaultRequest: false,
			expected:       dto.QueryParams{Page: 2, Limit: 20, SortBy: "name", SortDir: "ASC"},
		},
		{
			name:           "defaults applied when empty",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:           "invalid values ignored",
			queryParams:    map[string]string{"page": "-1", "limit": "abc", "sort_dir": "sideways"},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse("http://example.com/test")
			assert.NoError(t, err)

			query := u.Query()
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}

			u.RawQuery = query.Encode()

			req, err := http.NewRequest(http.MethodGet, u.String(), nil)
			assert.NoError(t, err)

			params := dto.QueryParams{}
			params.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestQueryParams_RestrictSort(t *testing.T) {
	params := dto.QueryParams{SortBy: "name; DROP TABLE companies", SortDir: dto.SortDirAsc}
	params.RestrictSort("name", "created_at")

	assert.Equal(t, constant.DefaultValueSortBy, params.SortBy)
	assert.Equal(t, dto.SortDirAsc, params.SortDir)

	params = dto.QueryParams{SortBy: "name"}
	params.RestrictSort("name", "created_at")

	assert.Equal(t, "name", params.SortBy)
	assert.Equal(t, constant.DefaultValueSortDir, params.SortDir)
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  []string
	}{
		{
			name:      "eq with table",
			filter:    dto.Filter{Field: "city", Value: "Lisbon", Operator: dto.FilterOperatorEq, Table: "companies"},
			wantWhere: "companies.city = :city",
			wantArgs:  []string{"city"},
		},
		{
			name:      "like uses custom arg name",
			filter:    dto.Filter{ArgName: "q_name", Field: "name", Value: "cut", Operator: dto.FilterOperatorLike},
			wantWhere: "LOWER(name) LIKE LOWER(:q_name) ",
			wantArgs:  []string{"q_name"},
		},
		{
			name:      "overlap",
			filter:    dto.Filter{Field: "tags", Value: []string{"vegan"}, Operator: dto.FilterOperatorOverlap},
			wantWhere: "tags && :tags",
			wantArgs:  []string{"tags"},
		},
		{
			name:      "any like",
			filter:    dto.Filter{ArgName: "q_tag", Field: "tags", Value: "nail", Operator: dto.FilterOperatorAnyLike},
			wantWhere: "EXISTS (SELECT 1 FROM unnest(tags) AS elem WHERE LOWER(elem) LIKE LOWER(:q_tag))",
			wantArgs:  []string{"q_tag"},
		},
		{
			name:      "in expands slices",
			filter:    dto.Filter{Field: "status", Value: []string{"pending", "confirmed"}, Operator: dto.FilterOperatorIn},
			wantWhere: "status IN (:status_0, :status_1) ",
			wantArgs:  []string{"status_0", "status_1"},
		},
		{
			name:      "less",
			filter:    dto.Filter{Field: "booking_date", Value: "2024-01-01", Operator: dto.FilterOperatorLess},
			wantWhere: "booking_date < :booking_date",
			wantArgs:  []string{"booking_date"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Len(t, args, len(tt.wantArgs))

			for _, arg := range tt.wantArgs {
				assert.Contains(t, args, arg)
			}
		})
	}
}

func TestFilter_LikeEscapesWildcards(t *testing.T) {
	filter := dto.Filter{Field: "name", Value: "50%_off", Operator: dto.FilterOperatorLike}

	_, args := filter.GetWhereClause()

	assert.Equal(t, `%50\%\_off%`, args["name"])
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "active", Value: true, Operator: dto.FilterOperatorEq},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{ArgName: "q_name", Field: "name", Value: "x", Operator: dto.FilterOperatorLike},
					dto.Filter{ArgName: "q_city", Field: "city", Value: "x", Operator: dto.FilterOperatorLike},
				},
			},
		},
	}

	where, args := group.GetWhereClause()

	assert.True(t, strings.HasPrefix(where, "(active = :active AND ("))
	assert.Contains(t, where, " OR ")
	assert.Len(t, args, 3)

	empty := dto.FilterGroup{}
	where, args = empty.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}
