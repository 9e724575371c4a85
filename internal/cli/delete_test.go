package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelete_RemovesRow(t *testing.T) {
	path := createCountriesDB(t)

	out, err := runCommand(t, "delete", "countries", "--db", path, "--key", "isoCode=FR")
	require.NoError(t, err)
	assert.Contains(t, out, "deleted row")

	assert.Equal(t, 1, queryOne[int](t, path, "SELECT COUNT(*) FROM countries"))
}

func TestDelete_AbsentRow(t *testing.T) {
	path := createCountriesDB(t)

	out, err := runCommand(t, "delete", "countries", "--db", path, "--key", "isoCode=ZZ")
	require.NoError(t, err, "deleting an absent row is not an error")
	assert.Contains(t, out, "no matching row")
}

func TestDelete_InvalidKeyFlag(t *testing.T) {
	path := createCountriesDB(t)

	_, err := runCommand(t, "delete", "countries", "--db", path, "--key", "bogus")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestExists_PresentRow(t *testing.T) {
	path := createCountriesDB(t)

	out, err := runCommand(t, "exists", "countries", "--db", path, "--key", "isoCode=FR")
	require.NoError(t, err)
	assert.Contains(t, out, "row exists")
}

func TestExists_AbsentRow(t *testing.T) {
	path := createCountriesDB(t)

	out, err := runCommand(t, "exists", "countries", "--db", path, "--key", "isoCode=ZZ", "--format", "json")
	require.NoError(t, err)

	var resp Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var result ExistsResult
	require.NoError(t, json.Unmarshal(data, &result))
	assert.False(t, result.Exists)
}

func TestExists_WrongKeyColumn(t *testing.T) {
	path := createCountriesDB(t)

	// name is not the primary key, so the key cannot be resolved.
	_, err := runCommand(t, "exists", "countries", "--db", path, "--key", "name=France")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}
