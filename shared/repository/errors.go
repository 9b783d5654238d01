package repository

import (
	"agenda/shared/constant"
	"errors"

	"github.com/lib/pq"
)

func pqCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}

	return ""
}

func IsUniqueViolation(err error) bool {
	return pqCode(err) == constant.PqErrorCodeUniqueViolation
}

func IsForeignKeyViolation(err error) bool {
	return pqCode(err) == constant.PqErrorCodeFkViolation
}

// IsExclusionViolation reports a rejected insert under an EXCLUDE constraint, such as two
// overlapping bookings.
func IsExclusionViolation(err error) bool {
	return pqCode(err) == constant.PqErrorCodeExclusionViolation
}
