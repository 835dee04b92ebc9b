package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache stores entries in Redis, so a team or CI fleet can share
// index responses.
type RedisCache struct {
	client *redis.Client
}

// OpenRedis connects to the Redis server at url (redis://host:port/db).
func OpenRedis(ctx context.Context, url string) (*RedisCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return &RedisCache{client: client}, nil
}

// Get retrieves a value; Redis expires keys itself.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set stores a value. A zero ttl keeps the key until deleted.
func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, data, ttl).Err()
}

// Delete removes a value.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// Clear deletes every key starting with prefix and returns how many were
// removed. Keys are found with SCAN, so other clients are never blocked.
func (c *RedisCache) Clear(ctx context.Context, prefix string) (int64, error) {
	var (
		removed int64
		batch   []string
	)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := c.client.Del(ctx, batch...).Result()
		removed += n
		batch = batch[:0]
		return err
	}

	iter := c.client.Scan(ctx, 0, prefix+"*", 500).Iterator()
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == 500 {
			if err := flush(); err != nil {
				return removed, err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return removed, err
	}
	return removed, flush()
}

// Close closes the client connection pool.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

var _ Cache = (*RedisCache)(nil)
