package store

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

// ErrEmptyDatabase is returned when opening a database that has never had
// chart data imported into it.
var ErrEmptyDatabase = errors.New("database doesn't exist - run import first")

const schema = `
CREATE TABLE IF NOT EXISTS ChartEntry (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  spotify_id TEXT NOT NULL,
  name TEXT NOT NULL,
  artists TEXT NOT NULL,
  country TEXT NOT NULL DEFAULT '',
  snapshot_date TEXT NOT NULL,
  daily_rank INTEGER NOT NULL,
  popularity INTEGER NOT NULL DEFAULT 0,
  duration_ms INTEGER NOT NULL DEFAULT 0,
  album_name TEXT NOT NULL DEFAULT '',
  album_release_date TEXT NOT NULL DEFAULT '',
  danceability REAL NOT NULL DEFAULT 0,
  energy REAL NOT NULL DEFAULT 0,
  valence REAL NOT NULL DEFAULT 0,
  speechiness REAL NOT NULL DEFAULT 0,
  acousticness REAL NOT NULL DEFAULT 0,
  instrumentalness REAL NOT NULL DEFAULT 0,
  liveness REAL NOT NULL DEFAULT 0,
  tempo REAL NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS ChartEntryCountry ON ChartEntry (country, snapshot_date);
`

// Store holds imported chart entries in SQLite. Entries keep their import
// order, which downstream deduplication relies on.
type Store struct {
	db *sql.DB
}

// New opens dbPath, creating the schema if needed.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating tables: %w", err)
	}

	return &Store{db: db}, nil
}

// Open opens an existing database for reading. It returns
// ErrEmptyDatabase if nothing was ever imported into dbPath, and never
// creates a file there.
func Open(dbPath string) (*Store, error) {
	if _, err := os.Stat(dbPath); errors.Is(err, fs.ErrNotExist) {
		return nil, ErrEmptyDatabase
	} else if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	exists, err := dbExists(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	if !exists {
		db.Close()
		return nil, ErrEmptyDatabase
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func dbExists(db *sql.DB) (bool, error) {
	row := db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'ChartEntry'")
	var name string
	err := row.Scan(&name)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking db existence: %w", err)
	}
	return true, nil
}
