package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/imagery_catalog/internal/service"
)

const cacheKeyPrefix = "imagery:"

// RedisQueryCache кеширует результаты запросов в Redis
type RedisQueryCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

var _ service.QueryCache = (*RedisQueryCache)(nil)

// NewRedisQueryCache создает кеш результатов с временем жизни записей ttl
func NewRedisQueryCache(redisClient *redis.Client, ttl time.Duration) *RedisQueryCache {
	return &RedisQueryCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// Get читает запись по ключу в dst. Возвращает false, если записи нет.
func (c *RedisQueryCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	val, err := c.redisClient.Get(ctx, cacheKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get %s from cache: %w", key, err)
	}

	if err := json.Unmarshal(val, dst); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s from cache: %w", key, err)
	}
	return true, nil
}

// Set сохраняет значение под ключом key
func (c *RedisQueryCache) Set(ctx context.Context, key string, value any) error {
	val, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s for cache: %w", key, err)
	}
	if err := c.redisClient.Set(ctx, cacheKeyPrefix+key, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s in cache: %w", key, err)
	}
	return nil
}

// NoopQueryCache используется, когда Redis не настроен
type NoopQueryCache struct{}

var _ service.QueryCache = NoopQueryCache{}

func (NoopQueryCache) Get(_ context.Context, _ string, _ any) (bool, error) { return false, nil }

func (NoopQueryCache) Set(_ context.Context, _ string, _ any) error { return nil }
