package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"agenda/config"
	"agenda/infras/otel/mocks"
	catalogMocks "agenda/internal/domains/catalog/mocks"
	"agenda/internal/domains/catalog/model"
	"agenda/internal/domains/catalog/model/dto"
	"agenda/internal/domains/catalog/service"
	companyMocks "agenda/internal/domains/company/mocks"
	companyModel "agenda/internal/domains/company/model"
	cacheMocks "agenda/shared/cache/mocks"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/failure"
	"agenda/shared/identity"
)

var owner = identity.Identity{UserID: "owner-1", Role: constant.RoleOwner}

type fixture struct {
	repo      *catalogMocks.MockService
	companies *companyMocks.MockDirectory
	cache     *cacheMocks.MockRedisCache
	svc       service.Catalog
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:      catalogMocks.NewMockService(ctrl),
		companies: companyMocks.NewMockDirectory(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, f.companies, cfg, f.cache, mocks.NewOtel())

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func TestCatalogService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateServiceRequest
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "successful creation",
			req:  dto.CreateServiceRequest{Name: "Haircut", Price: decimal.RequireFromString("25.505"), DurationMinutes: 45},
			setupMock: func(f fixture) {
				f.companies.EXPECT().Authorize(gomock.Any(), owner, "c1").Return(companyModel.Company{ID: "c1"}, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, svc model.Service) error {
					assert.Equal(t, "c1", svc.CompanyID)
					assert.True(t, svc.Price.Equal(decimal.RequireFromString("25.51")))
					assert.True(t, svc.IsActive)

					return nil
				})
			},
		},
		{
			name:      "negative price",
			req:       dto.CreateServiceRequest{Name: "Haircut", Price: decimal.NewFromInt(-1), DurationMinutes: 30},
			setupMock: func(_ fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "not the owner",
			req:  dto.CreateServiceRequest{Name: "Haircut", Price: decimal.NewFromInt(10), DurationMinutes: 30},
			setupMock: func(f fixture) {
				f.companies.EXPECT().Authorize(gomock.Any(), owner, "c1").Return(companyModel.Company{}, failure.ResourceRestrictedError)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "repository error",
			req:  dto.CreateServiceRequest{Name: "Haircut", Price: decimal.NewFromInt(10), DurationMinutes: 30},
			setupMock: func(f fixture) {
				f.companies.EXPECT().Authorize(gomock.Any(), owner, "c1").Return(companyModel.Company{ID: "c1"}, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			_, err := f.svc.Create(context.Background(), owner, "c1", tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestCatalogService_ListByCompany(t *testing.T) {
	t.Run("public sees active services only", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
			assert.Len(t, filter.Filters, 2)

			return 1, nil
		})
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Service{{ID: "s1", IsActive: true}}, nil)

		res, err := f.svc.ListByCompany(context.Background(), identity.Identity{}, "c1", gDto.QueryParams{Page: 1, Limit: 10, SortBy: "drop table"})

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
	})

	t.Run("owner sees inactive services too", func(t *testing.T) {
		f := newFixture(t)

		f.companies.EXPECT().Authorize(gomock.Any(), owner, "c1").Return(companyModel.Company{ID: "c1"}, nil)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
			assert.Len(t, filter.Filters, 1)

			return 2, nil
		})
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Service, error) {
				assert.Equal(t, constant.DefaultValueSortBy, params.SortBy)

				return []model.Service{{ID: "s1", IsActive: true}, {ID: "s2"}}, nil
			})

		res, err := f.svc.ListByCompany(context.Background(), owner, "c1", gDto.QueryParams{Page: 1, Limit: 10})

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Len(t, res.Services, 2)
	})
}

func TestCatalogService_GetBookable(t *testing.T) {
	tests := []struct {
		name     string
		found    model.Service
		wantCode int
	}{
		{name: "active service of the company", found: model.Service{ID: "s1", CompanyID: "c1", IsActive: true, DurationMinutes: 30}},
		{name: "missing", found: model.Service{}, wantCode: http.StatusNotFound},
		{name: "other company", found: model.Service{ID: "s1", CompanyID: "c2", IsActive: true}, wantCode: http.StatusNotFound},
		{name: "inactive", found: model.Service{ID: "s1", CompanyID: "c1"}, wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.found, nil)

			got, err := f.svc.GetBookable(context.Background(), "c1", "s1")

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, 30, got.DurationMinutes)
		})
	}
}

func TestCatalogService_Update(t *testing.T) {
	f := newFixture(t)

	price := decimal.RequireFromString("30")

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Service{ID: "s1", CompanyID: "c1"}, nil)
	f.companies.EXPECT().Authorize(gomock.Any(), owner, "c1").Return(companyModel.Company{ID: "c1"}, nil)
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
		assert.Contains(t, fields, model.FieldPrice)
		assert.Equal(t, 60, fields[model.FieldDurationMinutes])

		return nil
	})

	err := f.svc.Update(context.Background(), owner, "s1", dto.UpdateServiceRequest{Price: &price, DurationMinutes: 60})

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
}

func TestCatalogService_Delete_NotFound(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Service{}, nil)

	err := f.svc.Delete(context.Background(), owner, "missing")

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestCatalogService_Delete_WithBookings(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Service{ID: "s1", CompanyID: "c1"}, nil)
	f.companies.EXPECT().Authorize(gomock.Any(), owner, "c1").Return(companyModel.Company{ID: "c1"}, nil)
	f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: constant.PqErrorCodeFkViolation})

	err := f.svc.Delete(context.Background(), owner, "s1")

	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	assert.Equal(t, "service_has_bookings", failure.GetReason(err))
}
