package pricing

import (
	"context"
	"sync"
	"time"

	"quickserve/config"
	catalogRepo "quickserve/database/repository/catalog"
	marketRepo "quickserve/database/repository/market"
	"quickserve/models"
	"quickserve/utils"

	"go.uber.org/zap"
)

// buckets are the three time-of-day price points per predicted day, in
// ascending order; ties on the cheapest bucket resolve to the earlier one.
var buckets = []struct {
	name string
	hour int
}{
	{models.BucketMorning, 9},
	{models.BucketAfternoon, 14},
	{models.BucketEvening, 19},
}

// DefaultPredictionEngine fans the pricing engine out across a forward date
// window. Days are independent, so they are priced in parallel.
type DefaultPredictionEngine struct {
	Pricing     *DefaultPricingEngine
	MarketRepo  marketRepo.MarketRepository
	CatalogRepo catalogRepo.CatalogRepository
	MaxDays     int

	Now func() time.Time
}

// NewDefaultPredictionEngine wires a prediction engine over the pricing engine.
func NewDefaultPredictionEngine(pricing *DefaultPricingEngine, market marketRepo.MarketRepository, catalog catalogRepo.CatalogRepository) *DefaultPredictionEngine {
	return &DefaultPredictionEngine{
		Pricing:     pricing,
		MarketRepo:  market,
		CatalogRepo: catalog,
		MaxDays:     config.AppConfig.PredictionMaxDays,
		Now:         time.Now,
	}
}

func (pr *DefaultPredictionEngine) GetPricePrediction(ctx context.Context, serviceID, pincode string, horizonDays int) (*models.PricePrediction, error) {
	if serviceID == "" {
		return nil, utils.InvalidField("serviceId", "must not be empty")
	}
	if !pincodePattern.MatchString(pincode) {
		return nil, utils.InvalidField("pincode", "must be a 4-10 digit code")
	}
	if horizonDays < 1 || horizonDays > pr.MaxDays {
		return nil, utils.InvalidField("horizonDays", "must be between 1 and the configured maximum")
	}
	service, err := pr.CatalogRepo.GetServiceByID(serviceID)
	if err != nil {
		return nil, utils.InvalidField("serviceId", "unknown service")
	}

	now := pr.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	days := make([]models.DayPrediction, horizonDays)
	var wg sync.WaitGroup
	for i := 0; i < horizonDays; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			days[i] = pr.predictDay(ctx, *service, pincode, today.AddDate(0, 0, i+1))
		}(i)
	}
	wg.Wait()

	return &models.PricePrediction{
		ServiceID: serviceID,
		Pincode:   pincode,
		Currency:  service.Currency,
		Days:      days,
	}, nil
}

// predictDay prices the three buckets of one future day from forecast
// counts, falling back to the most recent known-good snapshot (flagged
// stale) when no forecast exists for that date.
func (pr *DefaultPredictionEngine) predictDay(ctx context.Context, service models.Service, pincode string, day time.Time) models.DayPrediction {
	date := day.Format("2006-01-02")
	counts, stale := pr.forecastCounts(ctx, pincode, service.Category, date)

	prediction := models.DayPrediction{
		Date:    date,
		Buckets: make([]models.BucketPrice, 0, len(buckets)),
		Stale:   stale,
	}

	best := 0
	for idx, b := range buckets {
		at := day.Add(time.Duration(b.hour) * time.Hour)
		priced := pr.Pricing.compose(service, pincode, at, counts, nil)
		prediction.Buckets = append(prediction.Buckets, models.BucketPrice{
			Bucket:          b.name,
			Hour:            b.hour,
			FinalPriceMinor: priced.FinalPriceMinor,
			FinalPrice:      priced.FinalPrice,
			TotalMultiplier: priced.TotalMultiplier,
		})
		if priced.FinalPriceMinor < prediction.Buckets[best].FinalPriceMinor {
			best = idx
		}
	}
	prediction.BestTime = prediction.Buckets[best].Bucket
	return prediction
}

func (pr *DefaultPredictionEngine) forecastCounts(ctx context.Context, pincode, category, date string) (marketCounts, bool) {
	forecast, err := pr.MarketRepo.GetForecast(pincode, category, date)
	if err == nil {
		return marketCounts{
			OpenJobs:      forecast.OpenJobs,
			ActiveVendors: forecast.ActiveVendors,
			Confidence:    confidenceLive,
			Source:        "live",
		}, false
	}

	utils.GetLogger().Debug("prediction: no forecast, using last known-good inputs",
		zap.String("pincode", pincode), zap.String("date", date), zap.Error(err))

	if counts, ok := pr.Pricing.loadSnapshot(ctx, pincode, category); ok {
		counts.Confidence = confidenceSnapshot
		counts.Source = "snapshot"
		return counts, true
	}
	return marketCounts{
		OpenJobs:      pr.Pricing.Cfg.DemandBaseline,
		ActiveVendors: pr.Pricing.Cfg.SupplyBaseline,
		Confidence:    confidenceBaseline,
		Source:        "baseline",
	}, true
}
