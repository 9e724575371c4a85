// Package store is the SQLite execution engine behind the persistence
// gateway.
//
// DB wraps a database/sql handle configured for single-writer
// discipline: one open connection, WAL journaling, and a busy timeout,
// so every write the gateway issues is serialized and each call sees a
// consistent view of the data. The gateway consumes DB through the
// persist.Executor contract (Exec/Query); nothing here knows about
// records or column mappings.
//
// DB also answers the schema.Introspector contract from the SQLite
// catalog: PRAGMA table_info supplies primary-key columns and detects
// rowid-style INTEGER keys, which the storage engine auto-assigns on
// insert.
package store
