// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"quickserve/config"

	"github.com/go-redis/redis/v8"
)

var (
	// TravelCacheClient caches travel-time lookups keyed by origin|destination.
	TravelCacheClient *redis.Client
	// MarketCacheClient caches demand/supply counts keyed by (service, pincode, bucket).
	MarketCacheClient *redis.Client
)

// InitRedis initializes the Redis cache clients, one logical DB per concern.
func InitRedis() {
	TravelCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTravelDB,
	})
	MarketCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMarketDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := TravelCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (travel cache): %v", err)
	}
	if _, err := MarketCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (market cache): %v", err)
	}
}

// GetTravelCacheClient returns the travel cache client.
func GetTravelCacheClient() *redis.Client {
	return TravelCacheClient
}

// GetMarketCacheClient returns the market stats cache client.
func GetMarketCacheClient() *redis.Client {
	return MarketCacheClient
}
