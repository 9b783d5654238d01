package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"agenda/config"
	"agenda/shared/identity"
	"agenda/transport/http/middleware"
)

func TestIntakeLimiter(t *testing.T) {
	cfg := &config.Config{}
	cfg.Booking.IntakeRPS = 0.001
	cfg.Booking.IntakeBurst = 2

	limited := middleware.NewIntakeLimiter(cfg).Limit(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	send := func(userID, ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", nil)
		req.RemoteAddr = ip

		if userID != "" {
			req = req.WithContext(identity.WithIdentity(req.Context(), identity.Identity{UserID: userID, Role: "client"}))
		}

		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, req)

		return rec.Code
	}

	assert.Equal(t, http.StatusCreated, send("u1", "10.0.0.1:1"))
	assert.Equal(t, http.StatusCreated, send("u1", "10.0.0.2:1"))
	assert.Equal(t, http.StatusTooManyRequests, send("u1", "10.0.0.3:1"))

	// other callers keep their own bucket
	assert.Equal(t, http.StatusCreated, send("u2", "10.0.0.1:1"))
	assert.Equal(t, http.StatusCreated, send("", "10.0.0.9:1"))
	assert.Equal(t, http.StatusCreated, send("", "10.0.0.9:1"))
	assert.Equal(t, http.StatusTooManyRequests, send("", "10.0.0.9:1"))
}

func TestIntakeLimiter_Defaults(t *testing.T) {
	limited := middleware.NewIntakeLimiter(&config.Config{}).Limit(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	codes := make([]int, 0, 4)

	for range 4 {
		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", nil)
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusCreated, http.StatusCreated, http.StatusCreated, http.StatusTooManyRequests}, codes)
}
