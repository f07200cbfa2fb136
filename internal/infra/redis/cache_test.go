package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheKeyPrefix(t *testing.T) {
	assert.Equal(t, "starwars:catalog:planet:list", NewCache(nil, "starwars", 0).key("catalog:planet:list"))
	assert.Equal(t, "catalog:planet:1", NewCache(nil, "", 0).key("catalog:planet:1"))
}

// 需要可用的 Redis，通过 REDIS_TEST_ADDR 指定
func TestCacheRoundTrip(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	cache := NewCache(client, "starwars-test", time.Minute)

	type planet struct {
		Name string `json:"planet_name"`
	}

	var got planet
	hit, err := cache.Get(ctx, "planet:1", &got)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, cache.Set(ctx, "planet:1", planet{Name: "Tatooine"}))
	hit, err = cache.Get(ctx, "planet:1", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "Tatooine", got.Name)

	require.NoError(t, cache.Delete(ctx, "planet:1"))
	hit, err = cache.Get(ctx, "planet:1", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}
