// Package persist orchestrates record lifecycle operations against an
// execution engine.
//
// Gateway exposes five operations over any record.Record: Insert,
// Update, Save, Delete, Exists. Each operation comes in two tiers:
//
//   - The composite (Insert, Update, ...) dispatches to a
//     caller-supplied override when the record implements the matching
//     interface (Inserter, Updater, ...), and otherwise runs the
//     record's optional hooks around the default body.
//   - The primitive (PerformInsert, PerformUpdate, ...) is the default
//     body itself. It is exported so an override can run its own logic
//     and still delegate to the default algorithm.
//
// Save is the upsert: it attempts the record's Update and, exactly
// when that fails with RECORD_NOT_FOUND, falls back to the record's
// Insert. The decision is reactive - Save never probes with Exists
// first, which saves a round trip and avoids a read-then-write race on
// the single writer connection. Because PerformSave is written against
// the composites, overrides and hooks of Update and Insert are honored
// inside a default Save.
//
// The gateway holds no state between calls: row identity lives
// entirely in the storage layer, and every operation is a synchronous
// round trip through the Executor.
package persist
