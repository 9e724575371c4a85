package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/recordkit/store"
)

// runCommand executes the CLI with args and captures combined output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// createCountriesDB creates a database with a populated countries
// table and returns its path.
func createCountriesDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")

	d, err := store.Open(path)
	require.NoError(t, err)
	defer d.Close()

	ctx := context.Background()
	_, err = d.Exec(ctx, "CREATE TABLE countries (isoCode TEXT PRIMARY KEY, name TEXT NOT NULL)")
	require.NoError(t, err)
	_, err = d.Exec(ctx, "INSERT INTO countries VALUES ('FR', 'France'), ('US', 'United States')")
	require.NoError(t, err)

	return path
}

// openForSetup opens the database at path for test fixture work.
func openForSetup(t *testing.T, path string) *store.DB {
	t.Helper()
	d, err := store.Open(path)
	require.NoError(t, err)
	return d
}

// mustExec runs a statement during fixture setup.
func mustExec(t *testing.T, d *store.DB, query string, args ...any) {
	t.Helper()
	_, err := d.Exec(context.Background(), query, args...)
	require.NoError(t, err)
}

// queryOne scans a single value from the database at path.
func queryOne[T any](t *testing.T, path, query string, args ...any) T {
	t.Helper()
	d, err := store.Open(path)
	require.NoError(t, err)
	defer d.Close()

	var v T
	require.NoError(t, d.Handle().QueryRow(query, args...).Scan(&v))
	return v
}
