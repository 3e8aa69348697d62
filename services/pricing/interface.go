package pricing

import (
	"context"
	"time"

	"quickserve/models"
)

// PricingEngine computes demand-aware dynamic prices. Only input validation
// can fail; upstream data problems degrade the result's confidence instead.
type PricingEngine interface {
	// GetDynamicPrice prices a (service, pincode, time) tuple. A nil
	// scheduledAt prices an as-soon-as-possible booking.
	GetDynamicPrice(ctx context.Context, serviceID, pincode string, scheduledAt *time.Time) (*models.PricingResult, error)

	// PriceForVendor prices an already-validated slot for a specific vendor,
	// folding the vendor's performance factor in. It never fails.
	PriceForVendor(ctx context.Context, service models.Service, pincode string, at time.Time, vendor *models.Vendor) *models.PricingResult
}

// PredictionEngine produces multi-day price forecasts.
type PredictionEngine interface {
	GetPricePrediction(ctx context.Context, serviceID, pincode string, horizonDays int) (*models.PricePrediction, error)
}
