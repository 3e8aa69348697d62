package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"time"

	"quickserve/config"
	catalogRepo "quickserve/database/repository/catalog"
	marketRepo "quickserve/database/repository/market"
	vendorRepo "quickserve/database/repository/vendor"
	"quickserve/metrics"
	"quickserve/models"
	"quickserve/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

var pincodePattern = regexp.MustCompile(`^[0-9]{4,10}$`)

// Evidence confidence levels for the demand/supply counts behind a price.
const (
	confidenceLive     = 1.0
	confidenceSnapshot = 0.6
	confidenceBaseline = 0.3
)

// snapshotTTL keeps the last known-good counts around long enough to bridge
// a market-store outage.
const snapshotTTL = 48 * time.Hour

// marketCounts is the demand/supply evidence a price is composed from.
type marketCounts struct {
	OpenJobs      int     `json:"openJobs"`
	ActiveVendors int     `json:"activeVendors"`
	Confidence    float64 `json:"confidence"`
	Source        string  `json:"source"` // "live", "snapshot" or "baseline"
}

// DefaultPricingEngine composes the four factor multipliers over live market
// counts, with a short-TTL cache and a stale-snapshot fallback.
type DefaultPricingEngine struct {
	MarketRepo  marketRepo.MarketRepository
	VendorRepo  vendorRepo.VendorRepository
	CatalogRepo catalogRepo.CatalogRepository
	Cache       *redis.Client
	Cfg         FactorConfig
	BandMin     float64
	BandMax     float64

	// Now supplies the clock for the time factor and last-minute detection.
	Now func() time.Time
}

// NewDefaultPricingEngine wires an engine with the configured factor knobs
// and multiplier band.
func NewDefaultPricingEngine(
	market marketRepo.MarketRepository,
	vendors vendorRepo.VendorRepository,
	catalog catalogRepo.CatalogRepository,
	cache *redis.Client,
) *DefaultPricingEngine {
	return &DefaultPricingEngine{
		MarketRepo:  market,
		VendorRepo:  vendors,
		CatalogRepo: catalog,
		Cache:       cache,
		Cfg:         DefaultFactorConfig(),
		BandMin:     config.AppConfig.MultiplierBandMin,
		BandMax:     config.AppConfig.MultiplierBandMax,
		Now:         time.Now,
	}
}

func (pe *DefaultPricingEngine) GetDynamicPrice(ctx context.Context, serviceID, pincode string, scheduledAt *time.Time) (*models.PricingResult, error) {
	if serviceID == "" {
		return nil, utils.InvalidField("serviceId", "must not be empty")
	}
	if !pincodePattern.MatchString(pincode) {
		return nil, utils.InvalidField("pincode", "must be a 4-10 digit code")
	}
	service, err := pe.CatalogRepo.GetServiceByID(serviceID)
	if err != nil {
		return nil, utils.InvalidField("serviceId", "unknown service")
	}

	at := pe.Now()
	if scheduledAt != nil {
		if scheduledAt.Before(at) {
			return nil, utils.InvalidField("scheduledTime", "must not be in the past")
		}
		at = *scheduledAt
	}

	return pe.PriceForVendor(ctx, *service, pincode, at, nil), nil
}

func (pe *DefaultPricingEngine) PriceForVendor(ctx context.Context, service models.Service, pincode string, at time.Time, vendor *models.Vendor) *models.PricingResult {
	counts := pe.getCounts(ctx, pincode, service.Category)
	return pe.compose(service, pincode, at, counts, vendor)
}

// compose builds the explainable result from already-gathered evidence.
// It is deterministic over its inputs.
func (pe *DefaultPricingEngine) compose(service models.Service, pincode string, at time.Time, counts marketCounts, vendor *models.Vendor) *models.PricingResult {
	factors := []models.PricingFactor{
		DemandFactor(counts.OpenJobs, pe.Cfg),
		SupplyFactor(counts.ActiveVendors, pe.Cfg),
		TimeFactor(at, pe.Now(), pe.Cfg),
		PerformanceFactor(vendor, pe.Cfg),
	}

	total := 1.0
	for _, f := range factors {
		total *= f.Multiplier
	}
	total = math.Round(total*1000) / 1000

	clamped := false
	if total < pe.BandMin {
		total = pe.BandMin
		clamped = true
		metrics.PricingClamps.WithLabelValues("min").Inc()
	} else if total > pe.BandMax {
		total = pe.BandMax
		clamped = true
		metrics.PricingClamps.WithLabelValues("max").Inc()
	}

	finalMinor := utils.ApplyMultiplier(service.BasePriceMinor, total)

	result := &models.PricingResult{
		ServiceID:       service.ID,
		Pincode:         pincode,
		Currency:        service.Currency,
		BasePriceMinor:  service.BasePriceMinor,
		FinalPriceMinor: finalMinor,
		BasePrice:       utils.FormatMinor(service.BasePriceMinor),
		FinalPrice:      utils.FormatMinor(finalMinor),
		Factors:         factors,
		TotalMultiplier: total,
		Clamped:         clamped,
		PercentChange:   utils.PercentChange(service.BasePriceMinor, finalMinor),
		Confidence:      counts.Confidence,
	}
	if counts.Source != "live" {
		result.Caveat = fmt.Sprintf("demand/supply counts from %s data", counts.Source)
	}
	return result
}

// getCounts gathers the demand/supply evidence for a (pincode, category):
// cache first, then the live stores, then the last known-good snapshot, then
// configured baselines. Each step down lowers the recorded confidence; none
// of them fails the request.
func (pe *DefaultPricingEngine) getCounts(ctx context.Context, pincode, category string) marketCounts {
	logger := utils.GetLogger()
	cacheKey := fmt.Sprintf("%s%s:%s", utils.MarketCachePrefix, pincode, category)

	if counts, ok := pe.cacheGet(ctx, cacheKey); ok {
		return counts
	}

	openJobs, jobsErr := pe.MarketRepo.CountOpenJobs(pincode, category)
	activeVendors, vendorsErr := pe.VendorRepo.CountActive(pincode, category)
	if jobsErr == nil && vendorsErr == nil {
		counts := marketCounts{
			OpenJobs:      openJobs,
			ActiveVendors: activeVendors,
			Confidence:    confidenceLive,
			Source:        "live",
		}
		pe.cacheSet(ctx, cacheKey, counts)
		pe.saveSnapshot(ctx, pincode, category, counts)
		return counts
	}

	logger.Warn("pricing: market counts unavailable, degrading",
		zap.String("pincode", pincode), zap.String("category", category),
		zap.NamedError("jobsErr", jobsErr), zap.NamedError("vendorsErr", vendorsErr))

	if counts, ok := pe.loadSnapshot(ctx, pincode, category); ok {
		counts.Confidence = confidenceSnapshot
		counts.Source = "snapshot"
		return counts
	}

	return marketCounts{
		OpenJobs:      pe.Cfg.DemandBaseline,
		ActiveVendors: pe.Cfg.SupplyBaseline,
		Confidence:    confidenceBaseline,
		Source:        "baseline",
	}
}

// RefreshSnapshot recomputes the live counts for a pair and stores them as
// the known-good snapshot. Used by the background refresher so the fallback
// path always has recent data.
func (pe *DefaultPricingEngine) RefreshSnapshot(ctx context.Context, pincode, category string) error {
	openJobs, err := pe.MarketRepo.CountOpenJobs(pincode, category)
	if err != nil {
		return fmt.Errorf("refresh snapshot: %w", err)
	}
	activeVendors, err := pe.VendorRepo.CountActive(pincode, category)
	if err != nil {
		return fmt.Errorf("refresh snapshot: %w", err)
	}
	pe.saveSnapshot(ctx, pincode, category, marketCounts{
		OpenJobs:      openJobs,
		ActiveVendors: activeVendors,
		Confidence:    confidenceLive,
		Source:        "live",
	})
	return nil
}

func (pe *DefaultPricingEngine) cacheGet(ctx context.Context, key string) (marketCounts, bool) {
	if pe.Cache == nil {
		return marketCounts{}, false
	}
	data, err := pe.Cache.Get(ctx, key).Result()
	if err != nil {
		return marketCounts{}, false
	}
	var counts marketCounts
	if err := json.Unmarshal([]byte(data), &counts); err != nil {
		return marketCounts{}, false
	}
	return counts, true
}

func (pe *DefaultPricingEngine) cacheSet(ctx context.Context, key string, counts marketCounts) {
	if pe.Cache == nil {
		return
	}
	data, err := json.Marshal(counts)
	if err != nil {
		return
	}
	ttl := time.Duration(config.AppConfig.MarketCacheTTLMins) * time.Minute
	if ttl <= 0 {
		ttl = utils.DefaultCacheTTL
	}
	if err := pe.Cache.Set(ctx, key, data, ttl).Err(); err != nil {
		utils.GetLogger().Debug("pricing: cache write failed", zap.Error(err))
	}
}

// saveSnapshot records the last known-good counts and registers the pair for
// the background refresher.
func (pe *DefaultPricingEngine) saveSnapshot(ctx context.Context, pincode, category string, counts marketCounts) {
	if pe.Cache == nil {
		return
	}
	data, err := json.Marshal(counts)
	if err != nil {
		return
	}
	key := utils.SnapshotKey + pincode + ":" + category
	if err := pe.Cache.Set(ctx, key, data, snapshotTTL).Err(); err != nil {
		utils.GetLogger().Debug("pricing: snapshot write failed", zap.Error(err))
		return
	}
	pe.Cache.SAdd(ctx, utils.MarketPairsKey, pincode+"|"+category)
}

func (pe *DefaultPricingEngine) loadSnapshot(ctx context.Context, pincode, category string) (marketCounts, bool) {
	if pe.Cache == nil {
		return marketCounts{}, false
	}
	data, err := pe.Cache.Get(ctx, utils.SnapshotKey+pincode+":"+category).Result()
	if err != nil {
		return marketCounts{}, false
	}
	var counts marketCounts
	if err := json.Unmarshal([]byte(data), &counts); err != nil {
		return marketCounts{}, false
	}
	return counts, true
}
