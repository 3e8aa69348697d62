package pricing

import (
	"testing"
	"time"

	"quickserve/models"

	"github.com/stretchr/testify/assert"
)

// Wednesday, mid-morning, no holiday anywhere near.
var quietTime = time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC)

func TestDemandFactor(t *testing.T) {
	cfg := DefaultFactorConfig()

	assert.Equal(t, 1.0, DemandFactor(0, cfg).Multiplier)
	assert.Equal(t, 1.0, DemandFactor(cfg.DemandBaseline, cfg).Multiplier)
	assert.Equal(t, 1.2, DemandFactor(9, cfg).Multiplier)
	assert.Equal(t, cfg.DemandCap, DemandFactor(500, cfg).Multiplier)

	prev := 0.0
	for jobs := 0; jobs <= 60; jobs++ {
		mult := DemandFactor(jobs, cfg).Multiplier
		assert.GreaterOrEqual(t, mult, prev, "demand factor dipped at %d jobs", jobs)
		prev = mult
	}
}

func TestSupplyFactor(t *testing.T) {
	cfg := DefaultFactorConfig()

	assert.Equal(t, 1.0, SupplyFactor(cfg.SupplyBaseline, cfg).Multiplier)
	assert.Equal(t, 1.0, SupplyFactor(50, cfg).Multiplier)
	assert.Equal(t, 1.1, SupplyFactor(3, cfg).Multiplier)
	assert.Equal(t, 1.25, SupplyFactor(0, cfg).Multiplier)

	prev := 10.0
	for vendors := 0; vendors <= 30; vendors++ {
		mult := SupplyFactor(vendors, cfg).Multiplier
		assert.LessOrEqual(t, mult, prev, "supply factor rose at %d vendors", vendors)
		prev = mult
	}
}

func TestTimeFactorQuietWeekday(t *testing.T) {
	cfg := DefaultFactorConfig()
	f := TimeFactor(quietTime.AddDate(0, 0, 7), quietTime, cfg)
	assert.Equal(t, 1.0, f.Multiplier, "no applicable modifier must price neutrally")
	assert.NotContains(t, f.Evidence, "modifiers")
}

func TestTimeFactorWeekend(t *testing.T) {
	cfg := DefaultFactorConfig()
	saturday := time.Date(2026, time.March, 7, 10, 0, 0, 0, time.UTC)
	f := TimeFactor(saturday, quietTime, cfg)
	assert.Equal(t, 1.15, f.Multiplier)
	assert.Contains(t, f.Evidence["modifiers"], "weekend")
}

func TestTimeFactorHoliday(t *testing.T) {
	cfg := DefaultFactorConfig()
	// 2026-08-15 is a Saturday as well: weekend and holiday compose.
	independence := time.Date(2026, time.August, 15, 10, 0, 0, 0, time.UTC)
	f := TimeFactor(independence, quietTime, cfg)
	assert.Equal(t, round3(1.15*1.25), f.Multiplier)
	assert.Contains(t, f.Evidence["modifiers"], "holiday")
}

func TestTimeFactorPeakHour(t *testing.T) {
	cfg := DefaultFactorConfig()
	peak := time.Date(2026, time.March, 11, 19, 0, 0, 0, time.UTC)
	f := TimeFactor(peak, quietTime, cfg)
	assert.Equal(t, 1.1, f.Multiplier)

	// The window end is exclusive: 21:00 is off-peak.
	offPeak := time.Date(2026, time.March, 11, 21, 0, 0, 0, time.UTC)
	assert.Equal(t, 1.0, TimeFactor(offPeak, quietTime, cfg).Multiplier)
}

func TestTimeFactorLastMinute(t *testing.T) {
	cfg := DefaultFactorConfig()
	soon := quietTime.Add(90 * time.Minute)
	f := TimeFactor(soon, quietTime, cfg)
	assert.Equal(t, 1.2, f.Multiplier)
	assert.Contains(t, f.Evidence["modifiers"], "last_minute")

	later := quietTime.Add(3 * time.Hour)
	assert.Equal(t, 1.0, TimeFactor(later, quietTime, cfg).Multiplier)
}

func TestPerformanceFactorNilVendor(t *testing.T) {
	f := PerformanceFactor(nil, DefaultFactorConfig())
	assert.Equal(t, 1.0, f.Multiplier)
}

func TestPerformanceFactorPremium(t *testing.T) {
	cfg := DefaultFactorConfig()
	strong := &models.Vendor{
		ID: "vendor-001",
		Performance: models.VendorPerformance{
			Rating:         5.0,
			CompletionRate: 1.0,
		},
	}
	f := PerformanceFactor(strong, cfg)
	assert.Equal(t, 1.05, f.Multiplier, "strong vendors command a premium")

	weak := &models.Vendor{
		ID: "vendor-002",
		Performance: models.VendorPerformance{
			Rating:         2.0,
			CompletionRate: 0.5,
		},
	}
	assert.Equal(t, cfg.PerfMin, PerformanceFactor(weak, cfg).Multiplier,
		"the band floor bounds how far performance can discount")
}

func TestPerformanceFactorBand(t *testing.T) {
	cfg := DefaultFactorConfig()
	for rating := 0.0; rating <= 5.0; rating += 0.5 {
		for completion := 0.0; completion <= 1.0; completion += 0.1 {
			v := &models.Vendor{Performance: models.VendorPerformance{
				Rating:         rating,
				CompletionRate: completion,
			}}
			mult := PerformanceFactor(v, cfg).Multiplier
			assert.GreaterOrEqual(t, mult, cfg.PerfMin)
			assert.LessOrEqual(t, mult, cfg.PerfMax)
		}
	}
}
