// Package sqlgen builds parameterized SQL statements from a record's
// column mapping and resolved primary key.
//
// Nothing here executes: every function returns the statement text and
// the positional argument slice for the execution engine to run.
//
// CRITICAL: all values are parameterized with ? placeholders, never
// interpolated into the statement text. Column lists follow the
// mapping's insertion order, key predicates follow the schema's key
// declaration order, so generated SQL is deterministic and suitable
// for golden-file comparison.
package sqlgen
