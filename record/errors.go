package record

import (
	"errors"
	"fmt"
)

// Error represents a failure produced by the persistence engine
// itself, as opposed to a storage error from the execution engine.
//
// Engine errors include:
//   - Missing key value: a primary-key column has no usable value
//   - Empty column mapping: nothing to persist
//   - Record not found: an update targeted zero rows
//   - Ambiguous key: an update targeted more than one row
//
// Storage errors (constraint violations, connection failures) are
// never wrapped in Error; they propagate from the driver verbatim.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Table identifies the affected table.
	Table string

	// Column identifies the offending key column (missing key value).
	Column string

	// Key identifies the targeted row (not found / ambiguous key).
	Key Key
}

// ErrorCode categorizes engine errors.
type ErrorCode string

const (
	// ErrCodeMissingKeyValue indicates a primary-key column with no
	// entry or a nil entry in the record's column mapping.
	ErrCodeMissingKeyValue ErrorCode = "MISSING_PRIMARY_KEY_VALUE"

	// ErrCodeEmptyColumnMapping indicates a record with nothing to
	// persist.
	ErrCodeEmptyColumnMapping ErrorCode = "EMPTY_COLUMN_MAPPING"

	// ErrCodeNotFound indicates an update whose key predicate matched
	// zero rows.
	ErrCodeNotFound ErrorCode = "RECORD_NOT_FOUND"

	// ErrCodeAmbiguousKey indicates an update whose key predicate
	// matched more than one row (non-unique or misconfigured key).
	ErrCodeAmbiguousKey ErrorCode = "AMBIGUOUS_KEY"
)

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Column != "":
		return fmt.Sprintf("%s: %s (table=%s, column=%s)", e.Code, e.Message, e.Table, e.Column)
	case len(e.Key) > 0:
		return fmt.Sprintf("%s: %s (table=%s, key=%s)", e.Code, e.Message, e.Table, e.Key)
	}
	return fmt.Sprintf("%s: %s (table=%s)", e.Code, e.Message, e.Table)
}

// IsNotFound returns true if the error is a record-not-found error.
// Uses errors.As to handle wrapped errors. This is the signal Save
// recovers from internally; everything else propagates.
func IsNotFound(err error) bool {
	var re *Error
	if errors.As(err, &re) {
		return re.Code == ErrCodeNotFound
	}
	return false
}

// IsMissingKeyValue returns true if the error reports a primary-key
// column without a usable value.
func IsMissingKeyValue(err error) bool {
	var re *Error
	if errors.As(err, &re) {
		return re.Code == ErrCodeMissingKeyValue
	}
	return false
}

// IsEmptyColumnMapping returns true if the error reports an empty
// column mapping.
func IsEmptyColumnMapping(err error) bool {
	var re *Error
	if errors.As(err, &re) {
		return re.Code == ErrCodeEmptyColumnMapping
	}
	return false
}

// IsAmbiguousKey returns true if the error reports an update that
// matched more than one row.
func IsAmbiguousKey(err error) bool {
	var re *Error
	if errors.As(err, &re) {
		return re.Code == ErrCodeAmbiguousKey
	}
	return false
}

// NewMissingKeyValueError creates an Error for a key column absent
// from, or nil in, a record's column mapping.
func NewMissingKeyValueError(table, column string) *Error {
	return &Error{
		Code:    ErrCodeMissingKeyValue,
		Message: "primary-key column has no value in column mapping",
		Table:   table,
		Column:  column,
	}
}

// NewEmptyColumnMappingError creates an Error for a record with an
// empty column mapping.
func NewEmptyColumnMappingError(table string) *Error {
	return &Error{
		Code:    ErrCodeEmptyColumnMapping,
		Message: "column mapping is empty",
		Table:   table,
	}
}

// NewNotFoundError creates an Error for an update that matched zero
// rows.
func NewNotFoundError(table string, key Key) *Error {
	return &Error{
		Code:    ErrCodeNotFound,
		Message: "no row matches primary key",
		Table:   table,
		Key:     key,
	}
}

// NewAmbiguousKeyError creates an Error for an update that matched
// more than one row.
func NewAmbiguousKeyError(table string, key Key, rows int64) *Error {
	return &Error{
		Code:    ErrCodeAmbiguousKey,
		Message: fmt.Sprintf("primary key matches %d rows", rows),
		Table:   table,
		Key:     key,
	}
}
