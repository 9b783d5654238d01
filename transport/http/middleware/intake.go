package middleware

import (
	"agenda/config"
	"agenda/shared/failure"
	"agenda/shared/identity"
	"agenda/transport/http/response"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultIntakeRPS   = 0.2
	defaultIntakeBurst = 3
	intakeIdleTTL      = 10 * time.Minute
)

// IntakeLimiter throttles booking submissions per caller with a token bucket.
type IntakeLimiter interface {
	Limit(next http.Handler) http.Handler
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type intakeLimiter struct {
	limit    rate.Limit
	burst    int
	now      func() time.Time
	mu       sync.Mutex
	visitors map[string]*visitor
	swept    time.Time
}

func NewIntakeLimiter(cfg *config.Config) IntakeLimiter {
	rps := cfg.Booking.IntakeRPS
	if rps <= 0 {
		rps = defaultIntakeRPS
	}

	burst := cfg.Booking.IntakeBurst
	if burst <= 0 {
		burst = defaultIntakeBurst
	}

	return &intakeLimiter{
		limit:    rate.Limit(rps),
		burst:    burst,
		now:      time.Now,
		visitors: make(map[string]*visitor),
	}
}

func (l *intakeLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.allow(intakeKey(r)) {
			response.WithError(w, failure.TooManyRequests("too many booking requests, slow down"))

			return
		}

		next.ServeHTTP(w, r)
	})
}

func (l *intakeLimiter) allow(key string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.swept) > intakeIdleTTL {
		for k, v := range l.visitors {
			if now.Sub(v.lastSeen) > intakeIdleTTL {
				delete(l.visitors, k)
			}
		}

		l.swept = now
	}

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[key] = v
	}

	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

func intakeKey(r *http.Request) string {
	if id, ok := identity.FromContext(r.Context()); ok {
		return "user:" + id.UserID
	}

	return "ip:" + clientIP(r)
}
