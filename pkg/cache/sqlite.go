package cache

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteCache stores entries in a single SQLite database file.
// It suits machines where thousands of small cache files are undesirable.
type SQLiteCache struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the cache database at path.
func OpenSQLite(path string) (*SQLiteCache, error) {
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS http_cache (
  key        TEXT PRIMARY KEY,
  data       BLOB NOT NULL,
  expires_at INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_http_cache_expiry ON http_cache(expires_at);
	`); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteCache{db: db}, nil
}

// Get retrieves a value; expired rows are deleted and reported as misses.
func (c *SQLiteCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var (
		data      []byte
		expiresAt int64
	)
	err := c.db.QueryRowContext(ctx, "SELECT data, expires_at FROM http_cache WHERE key = ?", key).Scan(&data, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if expiresAt > 0 && time.Now().UnixNano() > expiresAt {
		_, _ = c.db.ExecContext(ctx, "DELETE FROM http_cache WHERE key = ?", key)
		return nil, false, nil
	}
	return data, true, nil
}

// Set upserts a value.
func (c *SQLiteCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	var expiresAt int64
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl).UnixNano()
	}
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO http_cache(key, data, expires_at) VALUES(?,?,?)
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data, expires_at = excluded.expires_at`,
		key, data, expiresAt)
	return err
}

// Delete removes a value.
func (c *SQLiteCache) Delete(ctx context.Context, key string) error {
	_, err := c.db.ExecContext(ctx, "DELETE FROM http_cache WHERE key = ?", key)
	return err
}

// Purge removes all expired rows and returns how many were deleted.
func (c *SQLiteCache) Purge(ctx context.Context) (int64, error) {
	res, err := c.db.ExecContext(ctx, "DELETE FROM http_cache WHERE expires_at > 0 AND expires_at < ?", time.Now().UnixNano())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Clear removes every row and returns how many were deleted.
func (c *SQLiteCache) Clear(ctx context.Context) (int64, error) {
	res, err := c.db.ExecContext(ctx, "DELETE FROM http_cache")
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Close closes the database.
func (c *SQLiteCache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

var _ Cache = (*SQLiteCache)(nil)
