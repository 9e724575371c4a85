package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTables_Text(t *testing.T) {
	path := createCountriesDB(t)

	out, err := runCommand(t, "tables", "--db", path)
	require.NoError(t, err)
	assert.Contains(t, out, "countries")
	assert.NotContains(t, out, "sqlite_")
}

func TestTables_JSON(t *testing.T) {
	path := createCountriesDB(t)

	out, err := runCommand(t, "tables", "--db", path, "--format", "json")
	require.NoError(t, err)

	var resp Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Contains(t, resp.Data, "countries")
}

func TestTables_MissingDatabaseFlag(t *testing.T) {
	_, err := runCommand(t, "tables")
	require.Error(t, err)
}

func TestKey_TextKey(t *testing.T) {
	path := createCountriesDB(t)

	out, err := runCommand(t, "key", "countries", "--db", path)
	require.NoError(t, err)
	assert.Contains(t, out, "isoCode")
	assert.NotContains(t, out, "auto-assigned")
}

func TestKey_AutoKey(t *testing.T) {
	path := createCountriesDB(t)
	// Add a rowid-keyed table alongside countries.
	d := openForSetup(t, path)
	mustExec(t, d, "CREATE TABLE notes (id INTEGER PRIMARY KEY, body TEXT)")
	d.Close()

	out, err := runCommand(t, "key", "notes", "--db", path)
	require.NoError(t, err)
	assert.Contains(t, out, "id")
	assert.Contains(t, out, "auto-assigned")
}

func TestKey_UnknownTable(t *testing.T) {
	path := createCountriesDB(t)

	_, err := runCommand(t, "key", "missing", "--db", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
