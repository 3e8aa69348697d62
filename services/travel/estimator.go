package travel

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"quickserve/config"
	vendorRepo "quickserve/database/repository/vendor"
	"quickserve/metrics"
	"quickserve/models"
	"quickserve/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// fallbackConfidence tags haversine-derived estimates. Strictly below 1.0 so
// downstream stages can tell them apart from live routing results.
const fallbackConfidence = 0.65

// Estimator resolves the travel leg between a vendor's reference location and
// a job pincode. It never fails hard: when neither live routing nor the
// statistical fallback can produce an answer it returns a zero-distance
// estimate with the configured default duration and confidence 0, which
// downstream stages treat as "travel unknown, apply worst-case buffer".
type Estimator interface {
	Estimate(ctx context.Context, origin models.GeoPoint, destPincode string) models.TravelEstimate
}

// DefaultEstimator implements Estimator with a live distance-matrix lookup,
// a haversine fallback and a short-TTL Redis cache.
type DefaultEstimator struct {
	VendorRepo vendorRepo.VendorRepository
	Cache      *redis.Client
	Routing    *RoutingClient
}

// NewDefaultEstimator wires an estimator against the shared travel cache.
func NewDefaultEstimator(repo vendorRepo.VendorRepository, cache *redis.Client) *DefaultEstimator {
	return &DefaultEstimator{
		VendorRepo: repo,
		Cache:      cache,
		Routing:    NewRoutingClient(),
	}
}

func (e *DefaultEstimator) Estimate(ctx context.Context, origin models.GeoPoint, destPincode string) models.TravelEstimate {
	logger := utils.GetLogger()

	cacheKey := fmt.Sprintf("%s%.5f,%.5f|%s", utils.TravelCachePrefix, lonOf(origin), latOf(origin), destPincode)
	if cached, ok := e.cacheGet(ctx, cacheKey); ok {
		return cached
	}

	dest, err := e.VendorRepo.ResolvePincode(destPincode)
	if err != nil {
		logger.Warn("travel: pincode unresolvable, using unknown-travel default",
			zap.String("pincode", destPincode), zap.Error(err))
		metrics.TravelFallbacks.WithLabelValues("pincode_unresolved").Inc()
		return e.unknownEstimate()
	}
	if len(origin.Coordinates) < 2 || len(dest.Coordinates) < 2 {
		logger.Warn("travel: missing coordinates, using unknown-travel default",
			zap.String("pincode", destPincode))
		metrics.TravelFallbacks.WithLabelValues("missing_coordinates").Inc()
		return e.unknownEstimate()
	}

	est, err := e.Routing.Lookup(ctx, origin, *dest)
	if err != nil {
		logger.Debug("travel: live routing unavailable, falling back to haversine",
			zap.String("pincode", destPincode), zap.Error(err))
		metrics.TravelFallbacks.WithLabelValues("routing_unavailable").Inc()
		est = haversineEstimate(origin, *dest)
	}

	e.cacheSet(ctx, cacheKey, est)
	return est
}

// unknownEstimate is the documented worst-case default: distance 0, a
// conservative duration, confidence 0.
func (e *DefaultEstimator) unknownEstimate() models.TravelEstimate {
	return models.TravelEstimate{
		DistanceKm:      0,
		DurationMinutes: config.AppConfig.DefaultTravelMins,
		Source:          models.TravelSourceEstimated,
		Confidence:      0,
	}
}

func (e *DefaultEstimator) cacheGet(ctx context.Context, key string) (models.TravelEstimate, bool) {
	if e.Cache == nil {
		return models.TravelEstimate{}, false
	}
	data, err := e.Cache.Get(ctx, key).Result()
	if err != nil {
		return models.TravelEstimate{}, false
	}
	var est models.TravelEstimate
	if err := json.Unmarshal([]byte(data), &est); err != nil {
		return models.TravelEstimate{}, false
	}
	return est, true
}

func (e *DefaultEstimator) cacheSet(ctx context.Context, key string, est models.TravelEstimate) {
	if e.Cache == nil {
		return
	}
	data, err := json.Marshal(est)
	if err != nil {
		return
	}
	ttl := time.Duration(config.AppConfig.TravelCacheTTLMins) * time.Minute
	if ttl <= 0 {
		ttl = utils.DefaultCacheTTL
	}
	// A stale hit is a freshness trade-off, never a correctness one.
	if err := e.Cache.Set(ctx, key, data, ttl).Err(); err != nil {
		utils.GetLogger().Debug("travel: cache write failed", zap.Error(err))
	}
}

func lonOf(p models.GeoPoint) float64 {
	if len(p.Coordinates) > 0 {
		return p.Coordinates[0]
	}
	return 0
}

func latOf(p models.GeoPoint) float64 {
	if len(p.Coordinates) > 1 {
		return p.Coordinates[1]
	}
	return 0
}
