package service

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordKey(t *testing.T) {
	assert.Equal(t, "record:doctors:9", RecordKey("doctors", 9))
	assert.Equal(t, "record:patients:0", RecordKey("patients", 0))
}

func TestNoopRecordCacheNeverHits(t *testing.T) {
	cache := NewNoopRecordCache()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", map[string]int{"id": 1}))

	var dest map[string]int
	found, err := cache.Get(ctx, "k", &dest)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, dest)
	assert.NoError(t, cache.Delete(ctx, "k"))
}

func TestRedisRecordCacheReportsUnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	cache := NewRedisRecordCache(client, time.Minute)

	var dest struct{ ID int }
	found, err := cache.Get(context.Background(), RecordKey("doctors", 1), &dest)
	assert.Error(t, err)
	assert.False(t, found)
	assert.Error(t, cache.Set(context.Background(), RecordKey("doctors", 1), dest))
}
