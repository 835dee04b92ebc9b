package cache

import (
	"context"
	"time"
)

// Scoped wraps a Cache with a key prefix.
// Each configured index gets its own scope so identical project names on
// different indexes never share an entry.
//
// Example usage:
//
//	pypi := NewScoped(backend, "index:"+Hash([]byte(baseURL))[:12]+":")
type Scoped struct {
	inner  Cache
	prefix string
}

// NewScoped creates a cache whose keys are prefixed with prefix.
// A nil inner cache behaves like [NullCache].
func NewScoped(inner Cache, prefix string) Cache {
	if inner == nil {
		inner = NewNullCache()
	}
	return &Scoped{inner: inner, prefix: prefix}
}

// Get retrieves a prefixed key from the inner cache.
func (s *Scoped) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.inner.Get(ctx, s.prefix+key)
}

// Set stores a prefixed key in the inner cache.
func (s *Scoped) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return s.inner.Set(ctx, s.prefix+key, data, ttl)
}

// Delete removes a prefixed key from the inner cache.
func (s *Scoped) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, s.prefix+key)
}

// Close does not close the inner cache; the owner of the backend closes it.
func (s *Scoped) Close() error {
	return nil
}

var _ Cache = (*Scoped)(nil)
