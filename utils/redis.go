package utils

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// OpenRedisPool initializes a Redis connection pool.
func OpenRedisPool(dsn string) (*redis.Client, error) {
	opt, err := redis.ParseURL(dsn)
	if err != nil {
		return nil, err
	}

	opt.PoolSize = 20
	opt.MinIdleConns = 2
	opt.DialTimeout = 5 * time.Second
	opt.ConnMaxIdleTime = 5 * time.Minute

	client := redis.NewClient(opt)
	if err = client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return client, nil
}

// CacheTTL bounds how stale a cached listing may get. Writes invalidate
// eagerly, so this only matters when another process touches the data.
const CacheTTL = time.Minute

// CacheGet loads a cached JSON value into dest. A miss or a decode
// failure both report a miss; the caller falls through to the source.
func CacheGet(client *redis.Client, key string, dest any) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	raw, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// CacheSet stores a JSON value under key with the default TTL.
func CacheSet(client *redis.Client, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return client.Set(ctx, key, raw, CacheTTL).Err()
}

// CacheInvalidate drops cached keys after a write.
func CacheInvalidate(client *redis.Client, keys ...string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return client.Del(ctx, keys...).Err()
}
