package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// Predefined errors for store operations
var (
	ErrKeyNotFound = errors.New("store: key not found")
)

// PostgresStore implements SessionStorer on a single key/value table.
// Schema:
//
//	CREATE TABLE storefront.session_data (
//	    key        TEXT PRIMARY KEY,
//	    value      BYTEA NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
//	);
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new PostgresStore instance.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM storefront.session_data WHERE key = $1;`
	var value []byte
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("store: Get failed to scan row: %w", err)
	}
	return value, nil
}

func (s *PostgresStore) Put(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO storefront.session_data (key, value, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = CURRENT_TIMESTAMP;
	`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("store: Put failed (pq code %s): %w", pqErr.Code, err)
		}
		return fmt.Errorf("store: Put failed to execute upsert: %w", err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM storefront.session_data WHERE key = $1;`
	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("store: Delete failed to execute delete: %w", err)
	}
	return nil
}

// Close closes the underlying database handle.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
