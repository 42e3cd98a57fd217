package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Storage keys, one per schema generation. The key changes when the schema
// generation changes; Load falls back through the legacy keys so an old
// database triggers migration.
const (
	KeyV1 = "lockin:v1"
	KeyV2 = "lockin:v2"
	KeyV3 = "lockin:v3"

	CurrentKey = KeyV3
)

// LegacyKeys lists older generation keys, newest first.
var LegacyKeys = []string{KeyV2, KeyV1}

// DefaultDBPath returns the default Lock In database location.
func DefaultDBPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".lockin.db"), nil
}

// Store is a single-slot blob store: an opaque get/set-string key-value
// surface backed by one SQLite table.
type Store struct {
	db *sql.DB
}

// Open opens (and creates if missing) the SQLite database at path and
// ensures the ledger table exists.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	stmt := `CREATE TABLE IF NOT EXISTS ledger (
		key TEXT PRIMARY KEY,
		doc TEXT NOT NULL
	);`
	if _, err := db.ExecContext(ctx, stmt); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the blob stored under key, or nil if the slot is empty.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	row := s.db.QueryRowContext(ctx, `SELECT doc FROM ledger WHERE key = ?`, key)

	var doc string
	if err := row.Scan(&doc); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("ledger get: %w", err)
	}
	return []byte(doc), nil
}

// Put stores the blob under key, replacing any previous value.
func (s *Store) Put(ctx context.Context, key string, doc []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO ledger (key, doc) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET doc = excluded.doc
	`, key, string(doc))
	if err != nil {
		return fmt.Errorf("ledger put: %w", err)
	}
	return nil
}

// Delete removes the slot under key. Deleting an absent key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM ledger WHERE key = ?`, key); err != nil {
		return fmt.Errorf("ledger delete: %w", err)
	}
	return nil
}

// Replace writes doc under key and clears every legacy key in one
// transaction, so a migrated or imported state never coexists with stale
// generations.
func (s *Store) Replace(ctx context.Context, key string, doc []byte) error {
	return WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO ledger (key, doc) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET doc = excluded.doc
		`, key, string(doc)); err != nil {
			return fmt.Errorf("ledger put: %w", err)
		}
		for _, legacy := range LegacyKeys {
			if legacy == key {
				continue
			}
			if _, err := tx.ExecContext(ctx, `DELETE FROM ledger WHERE key = ?`, legacy); err != nil {
				return fmt.Errorf("ledger delete: %w", err)
			}
		}
		return nil
	})
}
