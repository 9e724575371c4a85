// Package schema resolves primary keys against live table metadata.
//
// The Introspector interface is the narrow contract to whatever knows
// the physical schema (store.DB answers it from the SQLite catalog).
// Resolver adds a read-through cache keyed by table name, so each
// table's key columns are fetched from the catalog once per process
// regardless of how many operations target it. Correctness does not
// depend on the cache; it only saves catalog round trips.
package schema
