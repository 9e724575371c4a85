package record

// ColumnMap is an insertion-ordered mapping from column name to
// storage value. Keys are unique; setting an existing column replaces
// its value in place without changing its position. A nil value is an
// explicit SQL NULL, distinct from the column being absent.
//
// Values are treated as already-normalized scalars; conversion to and
// from driver representations is the caller's responsibility.
type ColumnMap struct {
	order  []string
	values map[string]any
}

// NewColumnMap returns an empty mapping.
func NewColumnMap() *ColumnMap {
	return &ColumnMap{values: make(map[string]any)}
}

// Set binds a value to a column, appending the column on first use.
// Returns the map to allow chained construction.
func (m *ColumnMap) Set(column string, value any) *ColumnMap {
	if _, ok := m.values[column]; !ok {
		m.order = append(m.order, column)
	}
	m.values[column] = value
	return m
}

// Get returns the value bound to column and whether the column is
// present at all. A present column may still hold nil (SQL NULL).
func (m *ColumnMap) Get(column string) (any, bool) {
	v, ok := m.values[column]
	return v, ok
}

// Has reports whether the column is present in the mapping.
func (m *ColumnMap) Has(column string) bool {
	_, ok := m.values[column]
	return ok
}

// Columns returns the column names in insertion order.
// The returned slice is a copy; mutating it does not affect the map.
func (m *ColumnMap) Columns() []string {
	cols := make([]string, len(m.order))
	copy(cols, m.order)
	return cols
}

// Len returns the number of columns in the mapping.
func (m *ColumnMap) Len() int {
	return len(m.order)
}
