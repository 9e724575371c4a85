package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// keyColumn is one primary-key column from PRAGMA table_info.
type keyColumn struct {
	name     string
	declType string
	position int // 1-based position within the key
}

// PrimaryKeyColumns returns the table's primary-key column names in
// declaration order, read from the SQLite catalog. Implements
// schema.Introspector.
func (d *DB) PrimaryKeyColumns(ctx context.Context, table string) ([]string, error) {
	cols, err := d.keyColumns(ctx, table)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.name
	}
	return names, nil
}

// AutoKeyColumn reports the table's rowid-style key, if any: a
// single-column INTEGER PRIMARY KEY, which SQLite aliases to the rowid
// and auto-assigns on insert. Implements schema.Introspector.
//
// WITHOUT ROWID tables with a lone INTEGER key are misreported as
// auto-assigned; such keys receive no generated value and inserts that
// omit them fail with a constraint violation, which propagates.
func (d *DB) AutoKeyColumn(ctx context.Context, table string) (string, bool, error) {
	cols, err := d.keyColumns(ctx, table)
	if err != nil {
		return "", false, err
	}
	if len(cols) != 1 {
		return "", false, nil
	}
	if !strings.EqualFold(cols[0].declType, "INTEGER") {
		return "", false, nil
	}
	return cols[0].name, true, nil
}

// keyColumns reads primary-key metadata for table from PRAGMA
// table_info. PRAGMA arguments cannot be parameterized, so the table
// name is quoted as an identifier instead.
func (d *DB) keyColumns(ctx context.Context, table string) ([]keyColumn, error) {
	query := fmt.Sprintf("PRAGMA table_info(%s)", quoteIdent(table))
	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("table_info %s: %w", table, err)
	}
	defer rows.Close()

	var keys []keyColumn
	count := 0
	for rows.Next() {
		var (
			cid      int
			name     string
			declType string
			notNull  int
			dflt     any
			pk       int
		)
		if err := rows.Scan(&cid, &name, &declType, &notNull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("table_info %s: scan: %w", table, err)
		}
		count++
		if pk > 0 {
			keys = append(keys, keyColumn{name: name, declType: declType, position: pk})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("table_info %s: %w", table, err)
	}

	// PRAGMA table_info yields zero rows for unknown tables rather
	// than an error.
	if count == 0 {
		return nil, fmt.Errorf("no such table: %s", table)
	}

	// pk gives the 1-based position within a composite key.
	sort.Slice(keys, func(i, j int) bool { return keys[i].position < keys[j].position })

	return keys, nil
}

// quoteIdent quotes a SQL identifier with double quotes.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
