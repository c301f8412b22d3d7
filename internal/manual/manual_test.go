package manual

import (
	"database/sql"
	"path/filepath"
	"testing"
)

// newTestDB creates a manual database file with a couple of entries.
func newTestDB(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "manual.db")
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("create test db: %v", err)
	}
	defer db.Close()

	const schema = `
CREATE TABLE manual (
	id TEXT PRIMARY KEY,
	doc TEXT NOT NULL
);`
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO manual (id, doc) VALUES (?, ?), (?, ?)`,
		"strings.Join", "Join concatenates elements.",
		"fmt.Println", "Println formats and prints.",
	); err != nil {
		t.Fatalf("insert rows: %v", err)
	}
	return path
}

func TestOpenAndLookup(t *testing.T) {
	path := newTestDB(t)

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	if db.Path() != path {
		t.Errorf("Path() = %s, want %s", db.Path(), path)
	}

	doc, err := db.Lookup("strings.Join")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if doc != "Join concatenates elements." {
		t.Errorf("Lookup() = %q", doc)
	}
}

func TestLookup_MissingEntry(t *testing.T) {
	db, err := Open(newTestDB(t))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	doc, err := db.Lookup("no.Such")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if doc != "" {
		t.Errorf("Lookup() = %q, want empty for a missing entry", doc)
	}
}
