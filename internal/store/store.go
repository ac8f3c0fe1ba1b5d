// Package store persists notes in SQLite.
package store

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName    = "sukinote"
	dbFileName = "notes.db"
)

// Manager is the SQLite-backed note store.
type Manager struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) the database at path. An empty path uses
// the XDG data directory.
func Open(path string) (*Manager, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	m, err := open(db)
	if err != nil {
		return nil, err
	}
	m.path = path
	return m, nil
}

// OpenMemory opens a private in-memory store, used by tests.
func OpenMemory() (*Manager, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	// Every connection to :memory: is a different database.
	db.SetMaxOpenConns(1)
	return open(db)
}

func open(db *sql.DB) (*Manager, error) {
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Manager{db: db}, nil
}

// DefaultPath is the XDG data file used when no path is configured.
func DefaultPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}

// Path is the database file, empty for an in-memory store.
func (m *Manager) Path() string {
	return m.path
}

// DB exposes the underlying handle.
func (m *Manager) DB() *sql.DB {
	return m.db
}

func (m *Manager) Close() error {
	return m.db.Close()
}
