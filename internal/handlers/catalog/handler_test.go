package catalog_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"agenda/infras/otel/mocks"
	catalogMocks "agenda/internal/domains/catalog/mocks"
	"agenda/internal/domains/catalog/model/dto"
	"agenda/internal/handlers/catalog"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/failure"
	"agenda/shared/identity"
)

const companyID = "3b2d1f0e-5c4a-4e8b-9a7d-6f5e4d3c2b1a"

var owner = identity.Identity{UserID: "u-owner", Role: constant.RoleOwner}

func newRouter(svc *catalogMocks.MockCatalog, caller *identity.Identity) http.Handler {
	h := catalog.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if caller != nil {
				r = r.WithContext(identity.WithIdentity(r.Context(), *caller))
			}

			next.ServeHTTP(w, r)
		})
	})
	router.Route("/v1", h.Router)

	return router
}

func serve(h http.Handler, method, target, payload string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(payload)))

	return rec
}

func TestGetServices_Anonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := catalogMocks.NewMockCatalog(ctrl)

	svc.EXPECT().ListByCompany(gomock.Any(), identity.Identity{}, companyID, gomock.Any()).
		DoAndReturn(func(_ any, _ identity.Identity, _ string, params gDto.QueryParams) (dto.GetServicesResponse, error) {
			assert.Equal(t, 2, params.Page)

			return dto.GetServicesResponse{
				Services:  []dto.ServiceResponse{{ID: "svc-1", Price: decimal.RequireFromString("25.50"), DurationMinutes: 45}},
				TotalPage: 2,
				TotalData: 11,
			}, nil
		})

	rec := serve(newRouter(svc, nil), http.MethodGet, "/v1/companies/"+companyID+"/services?page=2&limit=10", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data dto.GetServicesResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Data.Services, 1)
	assert.True(t, body.Data.Services[0].Price.Equal(decimal.RequireFromString("25.5")))
}

func TestCreateService(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		mock     func(svc *catalogMocks.MockCatalog)
		expected int
	}{
		{
			name:    "created",
			payload: `{"name":"Haircut","price":"30.00","duration_minutes":30}`,
			mock: func(svc *catalogMocks.MockCatalog) {
				svc.EXPECT().Create(gomock.Any(), owner, companyID, gomock.Any()).
					DoAndReturn(func(_ any, _ identity.Identity, _ string, req dto.CreateServiceRequest) (dto.ServiceResponse, error) {
						assert.Equal(t, 30, req.DurationMinutes)

						return dto.ServiceResponse{ID: "svc-1"}, nil
					})
			},
			expected: http.StatusCreated,
		},
		{
			name:     "duration not a multiple of fifteen",
			payload:  `{"name":"Haircut","price":"30.00","duration_minutes":20}`,
			mock:     func(*catalogMocks.MockCatalog) {},
			expected: http.StatusBadRequest,
		},
		{
			name:     "missing name",
			payload:  `{"price":"30.00","duration_minutes":30}`,
			mock:     func(*catalogMocks.MockCatalog) {},
			expected: http.StatusBadRequest,
		},
		{
			name:    "not the owner",
			payload: `{"name":"Haircut","price":"30.00","duration_minutes":30}`,
			mock: func(svc *catalogMocks.MockCatalog) {
				svc.EXPECT().Create(gomock.Any(), owner, companyID, gomock.Any()).
					Return(dto.ServiceResponse{}, failure.Forbidden("not the company owner"))
			},
			expected: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := catalogMocks.NewMockCatalog(ctrl)
			tt.mock(svc)

			rec := serve(newRouter(svc, &owner), http.MethodPost, "/v1/companies/"+companyID+"/services", tt.payload)
			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}

func TestUpdateService(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := catalogMocks.NewMockCatalog(ctrl)

	svc.EXPECT().Update(gomock.Any(), owner, "svc-1", gomock.Any()).
		DoAndReturn(func(_ any, _ identity.Identity, _ string, req dto.UpdateServiceRequest) error {
			require.NotNil(t, req.IsActive)
			assert.False(t, *req.IsActive)

			return nil
		})

	rec := serve(newRouter(svc, &owner), http.MethodPatch, "/v1/services/svc-1", `{"is_active":false}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteService_WithBookings(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := catalogMocks.NewMockCatalog(ctrl)

	svc.EXPECT().Delete(gomock.Any(), owner, "svc-1").
		Return(failure.ConflictWithReason("service_has_bookings", "service has bookings, deactivate it instead"))

	rec := serve(newRouter(svc, &owner), http.MethodDelete, "/v1/services/svc-1", "")
	require.Equal(t, http.StatusConflict, rec.Code)

	var body struct {
		Reason string `json:"reason"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "service_has_bookings", body.Reason)
}
