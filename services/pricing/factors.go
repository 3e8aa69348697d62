package pricing

import (
	"math"
	"time"

	"quickserve/models"
)

// FactorConfig holds the documented pricing knobs. Each factor is computed
// independently so each is independently testable.
type FactorConfig struct {
	// Demand: multiplier rises 1.0 -> cap as open jobs exceed the baseline.
	DemandBaseline int
	DemandStep     float64
	DemandCap      float64

	// Supply: multiplier rises 1.0 -> cap as active vendors fall below the baseline.
	SupplyBaseline int
	SupplyStep     float64
	SupplyCap      float64

	// Time-of-booking modifiers; applicable ones compose multiplicatively.
	WeekendRate    float64
	HolidayRate    float64
	PeakRate       float64
	PeakStartHour  int
	PeakEndHour    int // exclusive
	LastMinuteRate float64
	LastMinuteLead time.Duration

	// Performance: narrow band around 1.0, monotonic in both inputs.
	// Policy: high performers price up (a premium, not a discount).
	PerfRatingSlope     float64
	PerfCompletionSlope float64
	PerfMin             float64
	PerfMax             float64
}

// DefaultFactorConfig returns the documented default pricing knobs.
func DefaultFactorConfig() FactorConfig {
	return FactorConfig{
		DemandBaseline:      5,
		DemandStep:          0.05,
		DemandCap:           1.6,
		SupplyBaseline:      5,
		SupplyStep:          0.05,
		SupplyCap:           1.6,
		WeekendRate:         1.15,
		HolidayRate:         1.25,
		PeakRate:            1.10,
		PeakStartHour:       18,
		PeakEndHour:         21,
		LastMinuteRate:      1.20,
		LastMinuteLead:      2 * time.Hour,
		PerfRatingSlope:     0.04,
		PerfCompletionSlope: 0.1,
		PerfMin:             0.9,
		PerfMax:             1.1,
	}
}

// holidays are fixed-date public holidays (month-day) that trigger the
// holiday modifier.
var holidays = map[string]bool{
	"01-01": true, // New Year's Day
	"05-01": true, // Labour Day
	"08-15": true, // Independence Day
	"10-02": true, // Gandhi Jayanti
	"12-25": true, // Christmas
}

// DemandFactor maps the open-job count onto a multiplier ≥ 1.0, monotonic
// non-decreasing in demand, 1.0 at or below the baseline.
func DemandFactor(openJobs int, cfg FactorConfig) models.PricingFactor {
	mult := 1.0
	if openJobs > cfg.DemandBaseline {
		mult = math.Min(1.0+cfg.DemandStep*float64(openJobs-cfg.DemandBaseline), cfg.DemandCap)
	}
	return models.PricingFactor{
		Name:       models.FactorDemand,
		Multiplier: round3(mult),
		Evidence: map[string]interface{}{
			"openJobs": openJobs,
			"baseline": cfg.DemandBaseline,
		},
	}
}

// SupplyFactor maps the active-vendor count onto a multiplier ≥ 1.0,
// monotonic non-increasing in supply, 1.0 at or above the baseline.
func SupplyFactor(activeVendors int, cfg FactorConfig) models.PricingFactor {
	mult := 1.0
	if activeVendors < cfg.SupplyBaseline {
		mult = math.Min(1.0+cfg.SupplyStep*float64(cfg.SupplyBaseline-activeVendors), cfg.SupplyCap)
	}
	return models.PricingFactor{
		Name:       models.FactorSupply,
		Multiplier: round3(mult),
		Evidence: map[string]interface{}{
			"activeVendors": activeVendors,
			"baseline":      cfg.SupplyBaseline,
		},
	}
}

// TimeFactor composes the applicable time-of-booking modifiers for the
// scheduled time. With no modifier applicable the multiplier is exactly 1.0.
func TimeFactor(at time.Time, now time.Time, cfg FactorConfig) models.PricingFactor {
	mult := 1.0
	var applied []string

	if wd := at.Weekday(); wd == time.Saturday || wd == time.Sunday {
		mult *= cfg.WeekendRate
		applied = append(applied, "weekend")
	}
	if holidays[at.Format("01-02")] {
		mult *= cfg.HolidayRate
		applied = append(applied, "holiday")
	}
	if h := at.Hour(); h >= cfg.PeakStartHour && h < cfg.PeakEndHour {
		mult *= cfg.PeakRate
		applied = append(applied, "peak_hour")
	}
	if at.After(now) && at.Sub(now) < cfg.LastMinuteLead {
		mult *= cfg.LastMinuteRate
		applied = append(applied, "last_minute")
	}

	evidence := map[string]interface{}{
		"scheduledAt": at.Format(time.RFC3339),
	}
	if len(applied) > 0 {
		evidence["modifiers"] = applied
	}
	return models.PricingFactor{
		Name:       models.FactorTime,
		Multiplier: round3(mult),
		Evidence:   evidence,
	}
}

// PerformanceFactor maps the vendor's historical completion rate and rating
// onto a narrow band around 1.0. Better metrics raise the factor: strong
// vendors command a premium. A nil vendor prices neutrally.
func PerformanceFactor(vendor *models.Vendor, cfg FactorConfig) models.PricingFactor {
	if vendor == nil {
		return models.PricingFactor{
			Name:       models.FactorPerformance,
			Multiplier: 1.0,
			Evidence:   map[string]interface{}{"vendor": "unspecified"},
		}
	}
	perf := vendor.Performance
	mult := 1.0 +
		cfg.PerfRatingSlope*(perf.Rating-4.0) +
		cfg.PerfCompletionSlope*(perf.CompletionRate-0.9)
	mult = math.Max(cfg.PerfMin, math.Min(cfg.PerfMax, mult))

	return models.PricingFactor{
		Name:       models.FactorPerformance,
		Multiplier: round3(mult),
		Evidence: map[string]interface{}{
			"vendorId":       vendor.ID,
			"rating":         perf.Rating,
			"completionRate": perf.CompletionRate,
		},
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
