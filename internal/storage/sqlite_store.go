package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"questa/internal/model"
)

const sqliteTimeLayout = time.RFC3339Nano

// SQLiteStore keeps the snapshot as one row in a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// DefaultDBPath returns the per-user database location.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".questa.db"), nil
}

func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS snapshot (
			key        TEXT PRIMARY KEY,
			payload    TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`); err != nil {
		return nil, fmt.Errorf("create snapshot table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// OpenSQLite opens (creating if missing) the snapshot database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store, err := NewSQLiteStore(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load reads the snapshot row. Any failure along the way, a missing row, a
// malformed payload, or a payload that no longer fits the state shape, reads
// as absent.
func (s *SQLiteStore) Load() (model.AppState, bool) {
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM snapshot WHERE key = ?`, SnapshotKey).Scan(&payload)
	if err != nil {
		return model.AppState{}, false
	}
	var state model.AppState
	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		return model.AppState{}, false
	}
	if err := state.Validate(); err != nil {
		return model.AppState{}, false
	}
	return state, true
}

func (s *SQLiteStore) Save(state model.AppState) {
	payload, err := json.Marshal(state)
	if err != nil {
		return
	}
	_, _ = s.db.Exec(`
		INSERT INTO snapshot (key, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		SnapshotKey, string(payload), time.Now().UTC().Format(sqliteTimeLayout),
	)
}

func (s *SQLiteStore) Clear() {
	_, _ = s.db.Exec(`DELETE FROM snapshot WHERE key = ?`, SnapshotKey)
}
