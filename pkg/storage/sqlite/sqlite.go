// Package sqlite backs the snapshot store with a local SQLite file, the
// closest server-less analogue to browser local storage.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/evershine/storefront-core/pkg/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
    key   TEXT PRIMARY KEY,
    value BLOB NOT NULL
)`

type Store struct {
	DB *sqlx.DB
}

// New opens (creating if needed) the snapshot database at path.
func New(path string) (*Store, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	// modernc sqlite serializes writes itself; a single connection avoids
	// SQLITE_BUSY on concurrent snapshot writes.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init sqlite store: %w", err)
	}
	return &Store{DB: db}, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.DB.GetContext(ctx, &value, `SELECT value FROM snapshots WHERE key = ?`, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	query := `
        INSERT INTO snapshots (key, value) VALUES (?, ?)
        ON CONFLICT (key) DO UPDATE SET value = excluded.value
    `
	_, err := s.DB.ExecContext(ctx, query, key, value)
	return err
}

func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.DB.ExecContext(ctx, `DELETE FROM snapshots WHERE key = ?`, key)
	return err
}

func (s *Store) Close() error {
	return s.DB.Close()
}
