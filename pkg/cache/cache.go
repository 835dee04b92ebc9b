// Package cache provides byte-oriented caches for index responses.
//
// A [Cache] stores opaque payloads under string keys with an optional TTL.
// Backends:
//
//   - [FileCache]: sharded JSON files under the user cache directory
//   - [SQLiteCache]: a single SQLite database file
//   - [RedisCache]: a shared Redis instance
//   - [NullCache]: stores nothing (used by --no-cache)
//
// [NewScoped] prefixes every key of an inner cache so several indexes can
// share one backend without collisions.
package cache

import (
	"context"
	"time"
)

// Cache is a key/value store for raw response bodies.
//
// Get reports a miss with ok=false and a nil error. Expired entries are
// misses. Implementations must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Backend names accepted by --cache-backend.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)
