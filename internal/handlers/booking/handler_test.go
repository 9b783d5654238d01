package booking_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"agenda/config"
	"agenda/infras/otel/mocks"
	"agenda/internal/domains/availability/engine"
	bookingMocks "agenda/internal/domains/booking/mocks"
	"agenda/internal/domains/booking/model/dto"
	"agenda/internal/handlers/booking"
	"agenda/shared/constant"
	"agenda/shared/failure"
	"agenda/shared/identity"
	"agenda/transport/http/middleware"
)

const (
	companyID = "7f1c2a8e-7d3b-4a8e-9d7e-0c5f1b2a3c4d"
	serviceID = "2b9d4e6f-1a3c-4e5f-8a7b-9c0d1e2f3a4b"
)

var client = identity.Identity{UserID: "u-client", Email: "c@example.com", Role: constant.RoleClient}

type body struct {
	Data   json.RawMessage `json:"data"`
	Error  string          `json:"error"`
	Reason string          `json:"reason"`
}

func newRouter(t *testing.T, svc *bookingMocks.MockBookings, caller identity.Identity) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.Booking.IntakeRPS = 1000
	cfg.Booking.IntakeBurst = 1000

	h := booking.New(svc, middleware.NewIntakeLimiter(cfg), mocks.NewOtel())

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(identity.WithIdentity(r.Context(), caller)))
		})
	})
	router.Route("/v1", h.Router)

	return router
}

func do(t *testing.T, h http.Handler, method, target, payload string) (int, body) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(payload))
	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var b body
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))

	return rec.Code, b
}

const validBooking = `{
	"company_id": "` + companyID + `",
	"service_id": "` + serviceID + `",
	"client_name": "Ana",
	"client_email": "ana@example.com",
	"booking_date": "2030-05-06",
	"start_time": "10:00"
}`

func TestCreateBooking(t *testing.T) {
	tests := []struct {
		name       string
		payload    string
		setupMock  func(svc *bookingMocks.MockBookings)
		wantCode   int
		wantReason string
	}{
		{
			name:    "created",
			payload: validBooking,
			setupMock: func(svc *bookingMocks.MockBookings) {
				svc.EXPECT().Create(gomock.Any(), client, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ identity.Identity, req dto.CreateBookingRequest) (dto.BookingResponse, error) {
						assert.Equal(t, "10:00", req.StartTime)

						return dto.BookingResponse{ID: "b1", Status: engine.StatusPending}, nil
					})
			},
			wantCode: http.StatusCreated,
		},
		{
			name:     "malformed json",
			payload:  `{"company_id":`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "missing email",
			payload:  strings.Replace(validBooking, "ana@example.com", "", 1),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "start time not a clock",
			payload:  strings.Replace(validBooking, `"10:00"`, `"25:00"`, 1),
			wantCode: http.StatusBadRequest,
		},
		{
			name:    "slot already taken",
			payload: validBooking,
			setupMock: func(svc *bookingMocks.MockBookings) {
				svc.EXPECT().Create(gomock.Any(), client, gomock.Any()).
					Return(dto.BookingResponse{}, failure.ConflictWithReason(string(engine.ReasonTimeSlotUnavailable), "time slot unavailable"))
			},
			wantCode:   http.StatusConflict,
			wantReason: string(engine.ReasonTimeSlotUnavailable),
		},
		{
			name:    "store unavailable",
			payload: validBooking,
			setupMock: func(svc *bookingMocks.MockBookings) {
				svc.EXPECT().Create(gomock.Any(), client, gomock.Any()).
					Return(dto.BookingResponse{}, failure.ServiceUnavailable("availability data is temporarily unavailable, please retry"))
			},
			wantCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := bookingMocks.NewMockBookings(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			code, b := do(t, newRouter(t, svc, client), http.MethodPost, "/v1/bookings", tt.payload)

			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantReason, b.Reason)
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := bookingMocks.NewMockBookings(ctrl)
	owner := identity.Identity{UserID: "u-owner", Role: constant.RoleOwner}

	svc.EXPECT().UpdateStatus(gomock.Any(), owner, "b1", dto.UpdateStatusRequest{Status: engine.StatusConfirmed}).
		Return(dto.BookingResponse{ID: "b1", Status: engine.StatusConfirmed}, nil)

	router := newRouter(t, svc, owner)

	code, b := do(t, router, http.MethodPatch, "/v1/bookings/b1/status", `{"status":"confirmed"}`)
	assert.Equal(t, http.StatusOK, code)

	var res dto.BookingResponse
	require.NoError(t, json.Unmarshal(b.Data, &res))
	assert.Equal(t, engine.StatusConfirmed, res.Status)

	code, _ = do(t, router, http.MethodPatch, "/v1/bookings/b1/status", `{"status":"archived"}`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestListings(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := bookingMocks.NewMockBookings(ctrl)

	svc.EXPECT().ListMine(gomock.Any(), client, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ identity.Identity, req dto.ListRequest) (dto.GetBookingsResponse, error) {
			assert.Equal(t, "pending", req.Status)

			return dto.GetBookingsResponse{}, nil
		})
	svc.EXPECT().ListForCompany(gomock.Any(), client, companyID, gomock.Any()).
		Return(dto.GetBookingsResponse{}, failure.ForbiddenError)
	svc.EXPECT().Get(gomock.Any(), client, "b1").Return(dto.BookingResponse{ID: "b1"}, nil)

	router := newRouter(t, svc, client)

	code, _ := do(t, router, http.MethodGet, "/v1/bookings/mybookings?status=pending", "")
	assert.Equal(t, http.StatusOK, code)

	code, _ = do(t, router, http.MethodGet, "/v1/companies/"+companyID+"/bookings", "")
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = do(t, router, http.MethodGet, "/v1/bookings/b1", "")
	assert.Equal(t, http.StatusOK, code)
}
