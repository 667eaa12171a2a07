// cache — Redis-кэш ответов каталога. Апстрим ограничивает частоту вызовов,
// поэтому повторные запросы с тем же фильтром в пределах TTL обслуживаются
// из кэша без похода наружу.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type CatalogCache struct {
	rdb    *redis.Client
	prefix string
}

// NewCatalogCache создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "catalog:".
func NewCatalogCache(redisURL, prefix string) (*CatalogCache, error) {
	if prefix == "" {
		prefix = "catalog:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &CatalogCache{rdb: rdb, prefix: prefix}, nil
}

func (c *CatalogCache) key(k string) string { return c.prefix + k }

// Get возвращает сырое тело ответа и признак наличия в кэше.
func (c *CatalogCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.rdb.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}

	return data, true, nil
}

// Set сохраняет тело ответа с TTL.
func (c *CatalogCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return c.rdb.Set(ctx, c.key(key), data, ttl).Err()
}

// Close закрывает клиент Redis.
func (c *CatalogCache) Close() error { return c.rdb.Close() }
