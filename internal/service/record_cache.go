package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
)

const (
	// RecordKeyPrefix namespaces cached records by table.
	RecordKeyPrefix = "record:"

	// Timeout for individual Redis operations
	redisCacheTimeout = 2 * time.Second
)

// RecordCache is a by-id look-aside cache for single records.
// Report pages are never cached.
type RecordCache interface {
	// Get decodes the cached value into dest and reports whether it was found.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, key string) error
}

// RecordKey builds the cache key of one row.
func RecordKey(table string, id int) string {
	return fmt.Sprintf("%s%s:%d", RecordKeyPrefix, table, id)
}

type redisRecordCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisRecordCache(client redis.Cmdable, ttl time.Duration) RecordCache {
	return &redisRecordCache{client: client, ttl: ttl}
}

func (c *redisRecordCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}

	if err := sonic.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("decode cached %s: %w", key, err)
	}
	return true, nil
}

func (c *redisRecordCache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := sonic.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	return c.client.Set(ctx, key, data, c.ttl).Err()
}

func (c *redisRecordCache) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	return c.client.Del(ctx, key).Err()
}

type noopRecordCache struct{}

// NewNoopRecordCache returns a cache that never stores anything.
func NewNoopRecordCache() RecordCache {
	return noopRecordCache{}
}

func (noopRecordCache) Get(context.Context, string, interface{}) (bool, error) {
	return false, nil
}

func (noopRecordCache) Set(context.Context, string, interface{}) error {
	return nil
}

func (noopRecordCache) Delete(context.Context, string) error {
	return nil
}
