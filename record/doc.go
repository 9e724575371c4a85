// Package record defines the domain types of the persistence engine.
//
// A Record is any value that can report the table it belongs to and an
// ordered mapping of column names to storage values. Nothing in this
// package touches a database: it is the vocabulary shared by the
// statement builder (sqlgen), the key resolver (schema), and the
// orchestrator (persist).
//
// # Column mapping
//
// ColumnMap preserves insertion order because generated SQL lists
// columns in mapping order. Order is significant for readability and
// golden-file stability, not for correctness. A column may carry an
// explicit nil (stored as SQL NULL) or be absent entirely; the two are
// distinct at insert time for auto-assigned keys.
//
// # Errors
//
// All failures this engine can produce itself are *record.Error values
// with a stable Code. Storage errors from the execution engine are
// never converted; they pass through verbatim.
package record
