// Package di provides dependency injection factories for creating application components.
package di

import (
	"github.com/redis/go-redis/v9"

	"crypto_backend/internal/platform/cache"
	"crypto_backend/internal/platform/externalapi/alphavantage"
	infrahttp "crypto_backend/internal/platform/http"
)

// NewMarket creates a fully configured AlphaVantageMarket with HTTP client.
func NewMarket() *alphavantage.AlphaVantageMarket {
	cfg := alphavantage.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return alphavantage.NewAlphaVantageMarket(cfg, httpClient)
}

// NewCachedMarket wraps the Alpha Vantage client with the Redis cache.
// A nil rdb yields a pass-through repository.
func NewCachedMarket(rdb *redis.Client, namespace string) *cache.CachingMarketRepository {
	return cache.NewCachingMarketRepository(rdb, 0, NewMarket(), namespace)
}
