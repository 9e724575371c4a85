package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixtureFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_InsertsAndUpdates(t *testing.T) {
	path := createCountriesDB(t)

	// FR exists (update path), DE does not (insert path).
	fixtures := writeFixtureFile(t, `
records:
  - table: countries
    columns:
      - column: isoCode
        value: FR
      - column: name
        value: France Métropolitaine
  - table: countries
    columns:
      - column: isoCode
        value: DE
      - column: name
        value: Germany
`)

	out, err := runCommand(t, "load", fixtures, "--db", path)
	require.NoError(t, err)
	assert.Contains(t, out, "saved 2 records")

	assert.Equal(t, 3, queryOne[int](t, path, "SELECT COUNT(*) FROM countries"))
	assert.Equal(t, "France Métropolitaine",
		queryOne[string](t, path, "SELECT name FROM countries WHERE isoCode = ?", "FR"))
	assert.Equal(t, "Germany",
		queryOne[string](t, path, "SELECT name FROM countries WHERE isoCode = ?", "DE"))
}

func TestLoad_GeneratesMissingTextKey(t *testing.T) {
	path := createCountriesDB(t)

	fixtures := writeFixtureFile(t, `
records:
  - table: countries
    generateKey: isoCode
    columns:
      - column: name
        value: Atlantis
`)

	out, err := runCommand(t, "load", fixtures, "--db", path, "--format", "json")
	require.NoError(t, err)

	var resp Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Equal(t, "ok", resp.Status)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var result LoadResult
	require.NoError(t, json.Unmarshal(data, &result))

	assert.Equal(t, 1, result.Saved)
	require.Len(t, result.GeneratedKeys, 1)
	_, err = uuid.Parse(result.GeneratedKeys[0])
	assert.NoError(t, err, "generated key should be a UUID")

	assert.Equal(t, "Atlantis",
		queryOne[string](t, path, "SELECT name FROM countries WHERE isoCode = ?", result.GeneratedKeys[0]))
}

func TestLoad_NormalizesStringsToNFC(t *testing.T) {
	path := createCountriesDB(t)

	// "é" written as decomposed e + combining acute.
	fixtures := writeFixtureFile(t, `
records:
  - table: countries
    columns:
      - column: isoCode
        value: RE
      - column: name
        value: "Réunion"
`)

	_, err := runCommand(t, "load", fixtures, "--db", path)
	require.NoError(t, err)

	// Stored precomposed.
	assert.Equal(t, "Réunion",
		queryOne[string](t, path, "SELECT name FROM countries WHERE isoCode = ?", "RE"))
}

func TestLoad_RejectsMalformedFixtures(t *testing.T) {
	path := createCountriesDB(t)

	tests := []struct {
		name    string
		content string
	}{
		{name: "missing table", content: "records:\n  - columns:\n      - column: a\n        value: 1\n"},
		{name: "no columns", content: "records:\n  - table: countries\n"},
		{name: "not yaml", content: "{{{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixtures := writeFixtureFile(t, tt.content)
			_, err := runCommand(t, "load", fixtures, "--db", path)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	path := createCountriesDB(t)

	_, err := runCommand(t, "load", "/nonexistent/fixtures.yaml", "--db", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
