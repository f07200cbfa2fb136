package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"starwars-api/internal/config"
	"starwars-api/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache 基于 Redis 的 JSON 读缓存
type Cache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewCache prefix 为键前缀，ttl<=0 表示不过期
func NewCache(client *redis.Client, prefix string, ttl time.Duration) *Cache {
	return &Cache{client: client, prefix: prefix, ttl: ttl}
}

// Connect 连接 Redis 并返回目录缓存，Ping 失败时关闭连接
func Connect(ctx context.Context, rc *config.RedisConfig, cc *config.CacheConfig) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     rc.Addr(),
		Password: rc.Password,
		DB:       rc.DB,
		PoolSize: rc.PoolSize,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	logger.Info("Redis connected",
		zap.String("addr", rc.Addr()),
		zap.Int("db", rc.DB),
		zap.String("prefix", cc.Prefix),
		zap.Duration("ttl", cc.TTLDuration()),
	)
	return NewCache(client, cc.Prefix, cc.TTLDuration()), nil
}

// Close 关闭底层连接
func (c *Cache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	logger.Info("Redis connection closed")
	return c.client.Close()
}

func (c *Cache) key(k string) string {
	if c.prefix == "" {
		return k
	}
	return c.prefix + ":" + k
}

// Get 未命中时返回 false 且不报错
func (c *Cache) Get(ctx context.Context, key string, dst any) (bool, error) {
	data, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("decode cached %s: %w", key, err)
	}
	return true, nil
}

func (c *Cache) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode cache value %s: %w", key, err)
	}
	ttl := c.ttl
	if ttl < 0 {
		ttl = 0
	}
	if err := c.client.Set(ctx, c.key(key), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = c.key(k)
	}
	if err := c.client.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
