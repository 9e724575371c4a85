package schema

import (
	"context"
	"fmt"
	"sync"

	"github.com/roach88/recordkit/record"
)

// Introspector reports primary-key metadata for a table.
type Introspector interface {
	// PrimaryKeyColumns returns the table's primary-key column names
	// in declaration order. Empty if the table declares no explicit
	// primary key.
	PrimaryKeyColumns(ctx context.Context, table string) ([]string, error)

	// AutoKeyColumn returns the table's single-column rowid-style
	// integer key, if it has one. Only such keys are auto-assigned by
	// the storage engine on insert.
	AutoKeyColumn(ctx context.Context, table string) (string, bool, error)
}

type tableKeys struct {
	columns []string
	autoCol string
	hasAuto bool
}

// Resolver caches primary-key metadata per table and cross-references
// it against record column mappings. Safe for concurrent use.
type Resolver struct {
	intro Introspector

	mu    sync.Mutex
	cache map[string]tableKeys
}

// NewResolver creates a Resolver over the given introspector.
func NewResolver(intro Introspector) *Resolver {
	return &Resolver{
		intro: intro,
		cache: make(map[string]tableKeys),
	}
}

// load fetches and caches the key metadata for table.
func (r *Resolver) load(ctx context.Context, table string) (tableKeys, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tk, ok := r.cache[table]; ok {
		return tk, nil
	}

	cols, err := r.intro.PrimaryKeyColumns(ctx, table)
	if err != nil {
		return tableKeys{}, fmt.Errorf("primary key columns of %s: %w", table, err)
	}

	autoCol, hasAuto, err := r.intro.AutoKeyColumn(ctx, table)
	if err != nil {
		return tableKeys{}, fmt.Errorf("auto key column of %s: %w", table, err)
	}

	tk := tableKeys{columns: cols, autoCol: autoCol, hasAuto: hasAuto}
	r.cache[table] = tk
	return tk, nil
}

// KeyColumns returns the table's primary-key column names.
func (r *Resolver) KeyColumns(ctx context.Context, table string) ([]string, error) {
	tk, err := r.load(ctx, table)
	if err != nil {
		return nil, err
	}
	return tk.columns, nil
}

// AutoKeyColumn returns the table's rowid-style integer key column,
// if any.
func (r *Resolver) AutoKeyColumn(ctx context.Context, table string) (string, bool, error) {
	tk, err := r.load(ctx, table)
	if err != nil {
		return "", false, err
	}
	return tk.autoCol, tk.hasAuto, nil
}

// Key resolves the table's primary key against a record's column
// mapping. Every key column must be present with a non-nil value:
// update, delete, and exists cannot target an unidentified row, so a
// missing value is a caller error, not a storage error.
func (r *Resolver) Key(ctx context.Context, table string, cm *record.ColumnMap) (record.Key, error) {
	tk, err := r.load(ctx, table)
	if err != nil {
		return nil, err
	}
	if len(tk.columns) == 0 {
		return nil, &record.Error{
			Code:    record.ErrCodeMissingKeyValue,
			Message: "table declares no primary key",
			Table:   table,
		}
	}

	key := make(record.Key, 0, len(tk.columns))
	for _, col := range tk.columns {
		v, ok := cm.Get(col)
		if !ok || v == nil {
			return nil, record.NewMissingKeyValueError(table, col)
		}
		key = append(key, record.KeyValue{Column: col, Value: v})
	}
	return key, nil
}
