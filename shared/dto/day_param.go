package dto

import (
	"agenda/shared/failure"
	"agenda/shared/timezone"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// DayParam reads a YYYY-MM-DD query parameter in the application timezone.
// A missing parameter yields fallback, a malformed one a bad request.
func DayParam(r *http.Request, name string, fallback time.Time) (time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}

	day, err := timezone.ParseDay(raw)
	if err != nil {
		return time.Time{}, failure.BadRequest(fmt.Errorf("invalid %s %q, expected YYYY-MM-DD: %w", name, raw, err)) //nolint:wrapcheck
	}

	return day, nil
}
