package theme

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"folio/internal/db"
)

// preferenceKey is the single persisted key. Absence implies system.
const preferenceKey = "theme"

// SQLiteStore persists one visitor's theme preference in the preferences
// table, keyed by session ID. It is the server-side counterpart of the
// browser's single localStorage key.
type SQLiteStore struct {
	db        *db.DB
	sessionID string
}

// NewSQLiteStore creates a store scoped to the given visitor session.
func NewSQLiteStore(database *db.DB, sessionID string) *SQLiteStore {
	return &SQLiteStore{db: database, sessionID: sessionID}
}

// Load returns the stored preference. A missing row or an unrecognized
// stored value reads back as system.
func (s *SQLiteStore) Load(ctx context.Context) (Preference, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM preferences WHERE session_id = ? AND key = ?`,
		s.sessionID, preferenceKey,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return PreferenceSystem, nil
	}
	if err != nil {
		return PreferenceSystem, fmt.Errorf("reading preference: %w", err)
	}

	pref, err := ParsePreference(raw)
	if err != nil {
		return PreferenceSystem, nil
	}
	return pref, nil
}

// Save stores the preference verbatim, including system.
func (s *SQLiteStore) Save(ctx context.Context, p Preference) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (session_id, key, value, updated_at)
		VALUES (?, ?, ?, datetime('now'))
		ON CONFLICT(session_id, key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		s.sessionID, preferenceKey, string(p),
	)
	if err != nil {
		return fmt.Errorf("writing preference: %w", err)
	}
	return nil
}

// MemoryStore is an in-memory PreferenceStore for tests and for serving
// without a data directory.
type MemoryStore struct {
	mu   sync.Mutex
	raw  string
	some bool
}

// NewMemoryStore returns an empty store; Load reports system until Save.
func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (m *MemoryStore) Load(ctx context.Context) (Preference, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.some {
		return PreferenceSystem, nil
	}
	pref, err := ParsePreference(m.raw)
	if err != nil {
		return PreferenceSystem, nil
	}
	return pref, nil
}

func (m *MemoryStore) Save(ctx context.Context, p Preference) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.raw = string(p)
	m.some = true
	return nil
}
