// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"crypto_backend/internal/feature/crypto/domain/entity"
	"crypto_backend/internal/feature/crypto/usecase"
)

// CachingMarketRepository decorates a MarketRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. Only successful responses are cached.
type CachingMarketRepository struct {
	inner     usecase.MarketRepository
	rdb       *redis.Client
	ttl       func() time.Duration
	namespace string
}

// CachingMarketRepositoryがMarketRepositoryとCacheInvalidatorを実装していることをコンパイル時に検証します。
var (
	_ usecase.MarketRepository = (*CachingMarketRepository)(nil)
	_ usecase.CacheInvalidator = (*CachingMarketRepository)(nil)
)

// NewCachingMarketRepository decorates a MarketRepository with Redis caching.
// If ttl is 0, entries expire at the next 00:00 UTC, when the API publishes the
// new daily sample. If namespace is empty, it uses "crypto".
func NewCachingMarketRepository(rdb *redis.Client, ttl time.Duration, inner usecase.MarketRepository, namespace string) *CachingMarketRepository {
	ttlFn := TimeUntilNextUTCMidnight
	if ttl > 0 {
		ttlFn = func() time.Duration { return ttl }
	}
	if namespace == "" {
		namespace = "crypto"
	}
	return &CachingMarketRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttlFn,
		namespace: namespace,
	}
}

// Enabled reports whether a Redis client is configured.
func (c *CachingMarketRepository) Enabled() bool {
	return c.rdb != nil
}

// GetCrypto retrieves a series, checking cache first then falling back to the API.
func (c *CachingMarketRepository) GetCrypto(ctx context.Context, fn entity.Function, symbol, market string) (*entity.Crypto, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.GetCrypto(ctx, fn, symbol, market)
	}

	key := c.cacheKey(fn, symbol, market)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Crypto
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	} else if err != nil && !errors.Is(err, redis.Nil) {
		slog.Warn("cache read failed, falling back to api", "key", key, "error", err)
	}

	// 2) Fallback to the API
	out, err := c.inner.GetCrypto(ctx, fn, symbol, market)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		if err := c.rdb.Set(ctx, key, b, c.ttl()).Err(); err != nil {
			slog.Warn("cache write failed", "key", key, "error", err)
		}
	}

	return out, nil
}

// Invalidate deletes every cached function of symbol quoted in market.
func (c *CachingMarketRepository) Invalidate(ctx context.Context, symbol, market string) error {
	if c.rdb == nil {
		return nil
	}
	return c.deleteByPattern(ctx, fmt.Sprintf("%s:*:%s:%s", c.namespace, safe(symbol), safe(market)))
}

// cacheKey generates a cache key for a specific query.
func (c *CachingMarketRepository) cacheKey(fn entity.Function, symbol, market string) string {
	return fmt.Sprintf("%s:%s:%s:%s",
		c.namespace,
		fn.String(),
		safe(symbol),
		safe(market),
	)
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingMarketRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	s = strings.ReplaceAll(s, "*", "_")
	return s
}
