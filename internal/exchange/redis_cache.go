package exchange

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/frostguard/frostguard/internal/currency"
)

const redisKeyPrefix = "exchange:rates:"

// RedisCache shares rate tables between API instances.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to addr and verifies the connection.
func NewRedisCache(ctx context.Context, opts *redis.Options, ttl time.Duration) (*RedisCache, error) {
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	return &RedisCache{client: client, ttl: ttl}, nil
}

// NewRedisCacheWithClient wraps an existing client. The caller keeps ownership of it.
func NewRedisCacheWithClient(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) key(base currency.Code) string {
	return redisKeyPrefix + string(base)
}

func (c *RedisCache) Get(ctx context.Context, base currency.Code) (Table, bool) {
	data, err := c.client.Get(ctx, c.key(base)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}

	if err != nil {
		slog.Warn("failed to read rate table from redis", "base", base, "error", err)
		return nil, false
	}

	var table Table
	if err := json.Unmarshal(data, &table); err != nil {
		slog.Warn("dropping corrupted rate table", "base", base, "error", err)
		_ = c.client.Del(ctx, c.key(base))

		return nil, false
	}

	return table, true
}

func (c *RedisCache) Set(ctx context.Context, base currency.Code, table Table) error {
	data, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("encoding rate table: %w", err)
	}

	if err := c.client.Set(ctx, c.key(base), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("writing rate table: %w", err)
	}

	return nil
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
