package marketRepo

import "quickserve/models"

// MarketRepository exposes the read-only marketplace counts feeding the
// pricing factors: open job demand and per-date forecasts. Current counts are
// computed from the booking collaborator's collections; this core never
// writes them.
type MarketRepository interface {
	// CountOpenJobs returns the number of open/unfulfilled jobs for a
	// (pincode, category) within the rolling demand window.
	CountOpenJobs(pincode, category string) (int, error)
	// GetForecast returns the demand/supply forecast for a future date,
	// or an error when no forecast exists for that day.
	GetForecast(pincode, category, date string) (*models.MarketForecast, error)
}
