package sqlgen

import (
	"fmt"
	"strings"

	"github.com/roach88/recordkit/record"
)

// Insert builds an INSERT statement covering every column in the
// mapping, values bound positionally in mapping order. An
// auto-assigned key column that the mapping never set is simply not in
// the mapping, so it never appears in the column list; the storage
// engine assigns it.
//
// Fails with EMPTY_COLUMN_MAPPING if the mapping has no columns.
func Insert(table string, cm *record.ColumnMap) (string, []any, error) {
	if cm.Len() == 0 {
		return "", nil, record.NewEmptyColumnMappingError(table)
	}

	cols := cm.Columns()
	placeholders := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, col := range cols {
		placeholders[i] = "?"
		args[i], _ = cm.Get(col)
	}

	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table,
		strings.Join(cols, ", "),
		strings.Join(placeholders, ", "))

	return sql, args, nil
}

// Update builds an UPDATE statement whose SET list covers every mapped
// column that is not part of the key (keys are immutable through
// update), targeted by the key predicate.
//
// A record whose mapped columns are all key columns yields the
// degenerate self-assignment update (SET keyCol = ? with the key's own
// value): a no-op write that still reports through its affected-row
// count whether the row exists.
//
// Fails with EMPTY_COLUMN_MAPPING if the mapping has no columns.
func Update(table string, cm *record.ColumnMap, key record.Key) (string, []any, error) {
	if cm.Len() == 0 {
		return "", nil, record.NewEmptyColumnMappingError(table)
	}

	var setParts []string
	var args []any
	for _, col := range cm.Columns() {
		if key.Contains(col) {
			continue
		}
		setParts = append(setParts, col+" = ?")
		v, _ := cm.Get(col)
		args = append(args, v)
	}

	if len(setParts) == 0 {
		// Key-only record: no-op update preserving existence semantics.
		setParts = append(setParts, key[0].Column+" = ?")
		args = append(args, key[0].Value)
	}

	whereSQL, whereArgs := wherePredicate(key)
	args = append(args, whereArgs...)

	sql := fmt.Sprintf("UPDATE %s SET %s WHERE %s",
		table,
		strings.Join(setParts, ", "),
		whereSQL)

	return sql, args, nil
}

// Delete builds a DELETE statement targeted by the key predicate.
func Delete(table string, key record.Key) (string, []any, error) {
	whereSQL, args := wherePredicate(key)
	sql := fmt.Sprintf("DELETE FROM %s WHERE %s", table, whereSQL)
	return sql, args, nil
}

// Exists builds the existence probe: SELECT 1 under the key predicate,
// limited to one row.
func Exists(table string, key record.Key) (string, []any, error) {
	whereSQL, args := wherePredicate(key)
	sql := fmt.Sprintf("SELECT 1 FROM %s WHERE %s LIMIT 1", table, whereSQL)
	return sql, args, nil
}

// wherePredicate compiles a key to "col = ? [AND col = ?]" plus its
// bound values in declaration order.
func wherePredicate(key record.Key) (string, []any) {
	parts := make([]string, len(key))
	args := make([]any, len(key))
	for i, kv := range key {
		parts[i] = kv.Column + " = ?"
		args[i] = kv.Value
	}
	return strings.Join(parts, " AND "), args
}
