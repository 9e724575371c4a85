package record

import (
	"fmt"
	"strings"
)

// KeyValue pairs a primary-key column with the record's current value
// for it.
type KeyValue struct {
	Column string
	Value  any
}

// Key identifies a row: one KeyValue per primary-key column, in the
// order the schema declares them. Keys always have at least one
// column once resolved.
type Key []KeyValue

// Columns returns the key's column names in declaration order.
func (k Key) Columns() []string {
	cols := make([]string, len(k))
	for i, kv := range k {
		cols[i] = kv.Column
	}
	return cols
}

// Values returns the key's values in declaration order, suitable for
// positional parameter binding.
func (k Key) Values() []any {
	vals := make([]any, len(k))
	for i, kv := range k {
		vals[i] = kv.Value
	}
	return vals
}

// Contains reports whether column is part of the key.
func (k Key) Contains(column string) bool {
	for _, kv := range k {
		if kv.Column == column {
			return true
		}
	}
	return false
}

// String renders the key as "col=value" pairs for error messages and
// logs. Not suitable for SQL.
func (k Key) String() string {
	parts := make([]string, len(k))
	for i, kv := range k {
		parts[i] = fmt.Sprintf("%s=%v", kv.Column, kv.Value)
	}
	return strings.Join(parts, ", ")
}
