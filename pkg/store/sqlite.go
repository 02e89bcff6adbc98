package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Register driver
)

// SQLiteStore persists the guide index and the provider response cache.
// It implements GuideIndex and cache.Cacher.
type SQLiteStore struct {
	db       *sql.DB
	cacheTTL time.Duration
}

// Open opens (or creates) the database at path and runs migrations.
// cacheTTL bounds how long cached provider responses are served.
func Open(path string, cacheTTL time.Duration) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	// WAL for concurrency; single connection avoids SQLITE_BUSY on writes
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=30000;"); err != nil {
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{db: db, cacheTTL: cacheTTL}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return s, nil
}

// Close closes the store connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS guides (
			name TEXT PRIMARY KEY,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS cache (
			key TEXT PRIMARY KEY,
			value BLOB,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
	}
	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return fmt.Errorf("exec error: %w query: %s", err, q)
		}
	}
	return nil
}

// --- GuideIndex ---

func (s *SQLiteStore) ExistsGuide(ctx context.Context, normalizedName string) (bool, error) {
	row := s.db.QueryRowContext(ctx, "SELECT 1 FROM guides WHERE name = ?", normalizedName)
	var one int
	if err := row.Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *SQLiteStore) AddGuide(ctx context.Context, normalizedName string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO guides (name) VALUES (?) ON CONFLICT(name) DO NOTHING", normalizedName)
	return err
}

// --- cache.Cacher ---

// GetCache returns the cached response for key. Entries older than the
// configured TTL are treated as a miss and deleted.
func (s *SQLiteStore) GetCache(ctx context.Context, key string) ([]byte, bool) {
	row := s.db.QueryRowContext(ctx, "SELECT value, created_at FROM cache WHERE key = ?", key)
	var val []byte
	var createdAt time.Time
	if err := row.Scan(&val, &createdAt); err != nil {
		return nil, false
	}
	if s.cacheTTL > 0 && time.Since(createdAt) > s.cacheTTL {
		_, _ = s.db.ExecContext(ctx, "DELETE FROM cache WHERE key = ?", key)
		return nil, false
	}
	return val, true
}

func (s *SQLiteStore) SetCache(ctx context.Context, key string, val []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO cache (key, value, created_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, created_at = excluded.created_at`,
		key, val)
	return err
}

// PruneCache removes cache entries older than the specified duration.
func (s *SQLiteStore) PruneCache(olderThan time.Duration) error {
	// Format compatible with SQLite DEFAULT CURRENT_TIMESTAMP
	deadline := time.Now().Add(-olderThan).UTC().Format("2006-01-02 15:04:05")
	_, err := s.db.Exec("DELETE FROM cache WHERE created_at < ?", deadline)
	return err
}
