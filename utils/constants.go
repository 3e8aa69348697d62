// File: utils/constants.go
package utils

import "time"

// TravelCachePrefix is the prefix used for Redis travel estimate cache keys.
const TravelCachePrefix = "travel:"

// MarketCachePrefix is the prefix used for Redis market stats cache keys.
const MarketCachePrefix = "market:"

// SnapshotKey holds the most recent known-good market snapshot per (service, pincode).
const SnapshotKey = "market:snapshot:"

// MarketPairsKey is the Redis set of pincode|category pairs priced recently,
// iterated by the background snapshot refresher.
const MarketPairsKey = "market:pairs"

// DefaultCacheTTL bounds a cache entry when no TTL is configured.
const DefaultCacheTTL = 5 * time.Minute
