package record

// Record is the capability a value must provide to be persisted.
// Implementations construct their column mapping fully before any
// persistence call; the engine never mutates a record except through
// the optional KeyAssigner capability.
type Record interface {
	// TableName returns the table this record maps to.
	// Constant per concrete record kind.
	TableName() string

	// ColumnMapping returns the ordered column-to-value projection of
	// the record's current state. A pure projection: no side effects.
	ColumnMapping() *ColumnMap
}

// KeyAssigner is an optional Record capability. After a successful
// insert into a table with a single-column rowid-style key that the
// mapping left unset, the orchestrator offers the storage-assigned
// value back through AssignKey. This is the only sanctioned mutation
// of a record by the engine.
type KeyAssigner interface {
	AssignKey(value int64)
}
