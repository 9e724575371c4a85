package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// IsConstraintViolation returns true if the error is a SQLite
// constraint violation (uniqueness, foreign key, NOT NULL, CHECK).
// Uses errors.As to handle wrapped errors.
//
// The persistence gateway never intercepts these; they propagate to
// the caller verbatim. This helper exists for callers that want to
// distinguish a duplicate insert from an infrastructure failure.
func IsConstraintViolation(err error) bool {
	var serr sqlite3.Error
	if errors.As(err, &serr) {
		return serr.Code == sqlite3.ErrConstraint
	}
	return false
}
