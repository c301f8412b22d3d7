// Package manual provides read-only access to the documentation database.
//
// The database is an optional SQLite file; when it is missing the shell
// simply runs without inline documentation.
package manual

import (
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB is a connection to the documentation database.
type DB struct {
	db   *sql.DB
	path string
}

// Open connects to the documentation database at path. The caller is
// expected to have checked that the file exists; a connection or ping
// failure here is a real error, not a soft absence.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open manual database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping manual database: %w", err)
	}
	return &DB{db: db, path: path}, nil
}

// Path returns the database file path.
func (d *DB) Path() string {
	return d.path
}

// Lookup returns the documentation entry for the given identifier.
// A missing entry returns ("", nil).
func (d *DB) Lookup(id string) (string, error) {
	var doc string
	err := d.db.QueryRow(`SELECT doc FROM manual WHERE id = ?`, id).Scan(&doc)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("lookup %q: %w", id, err)
	}
	return doc, nil
}

// Close closes the underlying connection.
func (d *DB) Close() error {
	return d.db.Close()
}
