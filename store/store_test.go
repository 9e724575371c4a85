package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func createTestDB(t *testing.T) *DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	d, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	return d
}

func TestOpen_CreatesNewDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	d, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer d.Close()

	// Verify file was created
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	for i := 0; i < 3; i++ {
		d, err := Open(path)
		if err != nil {
			t.Fatalf("Open() iteration %d failed: %v", i, err)
		}
		d.Close()
	}
}

func TestOpen_InvalidPath(t *testing.T) {
	// Try to open in non-existent directory
	_, err := Open("/nonexistent/dir/test.db")
	if err == nil {
		t.Error("expected error for invalid path, got nil")
	}
}

func TestOpen_AppliesPragmas(t *testing.T) {
	d := createTestDB(t)

	checks := map[string]string{
		"journal_mode": "wal",
		"foreign_keys": "1",
		"busy_timeout": "5000",
	}
	for name, expected := range checks {
		if err := d.verifyPragma(name, expected); err != nil {
			t.Errorf("pragma check failed: %v", err)
		}
	}
}

func TestClose_NilDB(t *testing.T) {
	d := &DB{db: nil}
	if err := d.Close(); err != nil {
		t.Errorf("Close() on nil db should not error: %v", err)
	}
}

func TestExec_ReportsAffectedRows(t *testing.T) {
	d := createTestDB(t)
	ctx := context.Background()

	_, err := d.Exec(ctx, "CREATE TABLE countries (isoCode TEXT PRIMARY KEY, name TEXT)")
	if err != nil {
		t.Fatalf("create table: %v", err)
	}

	res, err := d.Exec(ctx, "INSERT INTO countries (isoCode, name) VALUES (?, ?)", "FR", "France")
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		t.Fatalf("rows affected: %v", err)
	}
	if n != 1 {
		t.Errorf("RowsAffected = %d, want 1", n)
	}

	res, err = d.Exec(ctx, "UPDATE countries SET name = ? WHERE isoCode = ?", "Nowhere", "XX")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	n, err = res.RowsAffected()
	if err != nil {
		t.Fatalf("rows affected: %v", err)
	}
	if n != 0 {
		t.Errorf("RowsAffected for missed update = %d, want 0", n)
	}
}

func TestExec_ReportsLastInsertID(t *testing.T) {
	d := createTestDB(t)
	ctx := context.Background()

	_, err := d.Exec(ctx, "CREATE TABLE notes (id INTEGER PRIMARY KEY, body TEXT)")
	if err != nil {
		t.Fatalf("create table: %v", err)
	}

	res, err := d.Exec(ctx, "INSERT INTO notes (body) VALUES (?)", "first")
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("last insert id: %v", err)
	}
	if id != 1 {
		t.Errorf("LastInsertId = %d, want 1", id)
	}
}

func TestQuery_ReturnsRows(t *testing.T) {
	d := createTestDB(t)
	ctx := context.Background()

	if _, err := d.Exec(ctx, "CREATE TABLE countries (isoCode TEXT PRIMARY KEY, name TEXT)"); err != nil {
		t.Fatalf("create table: %v", err)
	}
	if _, err := d.Exec(ctx, "INSERT INTO countries VALUES ('FR', 'France'), ('US', 'United States')"); err != nil {
		t.Fatalf("insert: %v", err)
	}

	rows, err := d.Query(ctx, "SELECT isoCode FROM countries ORDER BY isoCode")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			t.Fatalf("scan: %v", err)
		}
		codes = append(codes, code)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("rows: %v", err)
	}

	if len(codes) != 2 || codes[0] != "FR" || codes[1] != "US" {
		t.Errorf("codes = %v, want [FR US]", codes)
	}
}
