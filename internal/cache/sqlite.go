package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/omaratef3221/omaratef3221.github.io/pkg/database"
)

// SQLiteStore keeps entries in a cache_entries table. The table is emptied
// when the store opens, so even a file-backed DSN starts cold.
type SQLiteStore struct {
	db  *sql.DB
	now Clock
}

func OpenSQLiteStore(dsn string, now Clock) (*SQLiteStore, error) {
	if now == nil {
		now = time.Now
	}

	db, err := database.Open(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	s := &SQLiteStore{db: db, now: now}
	if err := s.InvalidateAll(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	var payload []byte
	var insertedAt int64
	err := s.db.QueryRowContext(ctx,
		`SELECT payload, inserted_at FROM cache_entries WHERE cache_key = ?`, key,
	).Scan(&payload, &insertedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache entry %s: %w", key, err)
	}

	if !isValid(time.Unix(0, insertedAt), s.now()) {
		return nil, false, nil
	}
	return json.RawMessage(payload), true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key string, payload json.RawMessage) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cache_entries (cache_key, payload, inserted_at) VALUES (?, ?, ?)
		ON CONFLICT(cache_key) DO UPDATE SET
			payload = excluded.payload,
			inserted_at = excluded.inserted_at
	`, key, []byte(payload), s.now().UnixNano())
	if err != nil {
		return fmt.Errorf("failed to write cache entry %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) InvalidateAll(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM cache_entries`); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Status(ctx context.Context) (map[string]EntryStatus, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT cache_key, inserted_at FROM cache_entries`)
	if err != nil {
		return nil, fmt.Errorf("failed to list cache entries: %w", err)
	}
	defer rows.Close()

	now := s.now()
	status := make(map[string]EntryStatus)
	for rows.Next() {
		var key string
		var insertedAt int64
		if err := rows.Scan(&key, &insertedAt); err != nil {
			return nil, err
		}
		status[key] = entryStatus(time.Unix(0, insertedAt), now)
	}
	return status, rows.Err()
}
