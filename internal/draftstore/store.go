// Package draftstore provides the SQLite-backed local store for in-progress
// intake drafts. A single row under a fixed key holds the JSON-serialized
// draft; it survives restarts and is deleted on successful submission.
package draftstore

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

// DraftKey is the fixed key the intake draft is stored under.
const DraftKey = "lead_intake_draft"

// Store persists draft snapshots in a local SQLite database.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the XDG-compliant location of the draft database.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "guidepost", "drafts.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "guidepost", "drafts.db")
}

// Open opens or creates the draft database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating draft store dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening draft db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the draft database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load returns the stored draft snapshot and whether one exists.
func (s *Store) Load() ([]byte, bool, error) {
	var payload string
	err := s.db.QueryRow("SELECT payload FROM drafts WHERE key = ?", DraftKey).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(payload), true, nil
}

// Save stores the draft snapshot, replacing any previous one (last write
// wins; intermediate states don't matter).
func (s *Store) Save(snapshot []byte) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`INSERT OR REPLACE INTO drafts (key, payload, updated_at)
		VALUES (?, ?, ?)`, DraftKey, string(snapshot), now)
	return err
}

// Delete removes the stored draft. Deleting a missing draft is not an error.
func (s *Store) Delete() error {
	_, err := s.db.Exec("DELETE FROM drafts WHERE key = ?", DraftKey)
	return err
}

// UpdatedAt returns when the stored draft was last written.
func (s *Store) UpdatedAt() (time.Time, bool, error) {
	var at string
	err := s.db.QueryRow("SELECT updated_at FROM drafts WHERE key = ?", DraftKey).Scan(&at)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	t, err := time.Parse(time.RFC3339, at)
	if err != nil {
		return time.Time{}, false, nil
	}
	return t, true, nil
}
