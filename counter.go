package gatekit

import (
	"context"
	"errors"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// RedisCounter is the Redis-backed UsageCounter. Counters are plain
// integer values; a missing key reads as absent. Get and Set are
// separate commands, matching the lenient read-modify-write contract of
// the quota enforcer.
type RedisCounter struct {
	client *redis.Client
}

var _ UsageCounter = (*RedisCounter)(nil)

// NewRedisCounter connects to the counter store at the given URL
// (redis://host:port/db). The connection is verified with a ping so a
// misconfigured deployment fails at startup, not on the first check.
func NewRedisCounter(ctx context.Context, url string) (*RedisCounter, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, NewError(ErrInternal, "invalid counter store url")
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, NewError(ErrInternal, "counter store ping failed")
	}

	return &RedisCounter{client: client}, nil
}

// NewRedisCounterFromClient wraps an existing Redis client.
func NewRedisCounterFromClient(client *redis.Client) *RedisCounter {
	return &RedisCounter{client: client}
}

// Get returns the counter value and whether the key exists.
func (c *RedisCounter) Get(ctx context.Context, key string) (int64, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, err
	}

	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}

// Set stores the counter value. Keys are created implicitly on first
// write and never expire.
func (c *RedisCounter) Set(ctx context.Context, key string, value int64) error {
	return c.client.Set(ctx, key, value, 0).Err()
}

// Close releases the underlying client.
func (c *RedisCounter) Close() error {
	return c.client.Close()
}
