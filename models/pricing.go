package models

// Pricing factor names.
const (
	FactorDemand      = "demand"
	FactorSupply      = "supply"
	FactorTime        = "time"
	FactorPerformance = "performance"
)

// Time-of-day buckets used by price prediction.
const (
	BucketMorning   = "morning"
	BucketAfternoon = "afternoon"
	BucketEvening   = "evening"
)

// PricingFactor is one independently computed multiplier together with the
// evidence that produced it, so the engine's output is always explainable.
type PricingFactor struct {
	Name       string                 `json:"name"`
	Multiplier float64                `json:"multiplier"`
	Evidence   map[string]interface{} `json:"evidence,omitempty"`
}

// PricingResult explains a dynamic price: the per-factor multipliers, the
// clamped total and the final amount. Monetary fields are minor units.
type PricingResult struct {
	ServiceID       string          `json:"serviceId"`
	Pincode         string          `json:"pincode"`
	Currency        string          `json:"currency"`
	BasePriceMinor  int64           `json:"basePriceMinor"`
	FinalPriceMinor int64           `json:"finalPriceMinor"`
	BasePrice       string          `json:"basePrice"`  // decimal rendering
	FinalPrice      string          `json:"finalPrice"` // decimal rendering
	Factors         []PricingFactor `json:"factors"`
	TotalMultiplier float64         `json:"totalMultiplier"`
	Clamped         bool            `json:"clamped,omitempty"`
	PercentChange   float64         `json:"percentChange"`
	// Confidence reflects the quality of the demand/supply evidence: 1.0 for
	// live counts, lower when priced from a stale snapshot or baselines.
	Confidence float64 `json:"confidence"`
	Caveat     string  `json:"caveat,omitempty"`
}

// BucketPrice is one time-of-day price inside a predicted day.
type BucketPrice struct {
	Bucket          string  `json:"bucket"`
	Hour            int     `json:"hour"`
	FinalPriceMinor int64   `json:"finalPriceMinor"`
	FinalPrice      string  `json:"finalPrice"`
	TotalMultiplier float64 `json:"totalMultiplier"`
}

// DayPrediction carries the three bucket prices for one day; exactly one
// bucket is flagged as BestTime. Stale marks days priced from the most
// recent known-good market snapshot rather than a real forecast.
type DayPrediction struct {
	Date     string        `json:"date"`
	Buckets  []BucketPrice `json:"buckets"`
	BestTime string        `json:"bestTime"`
	Stale    bool          `json:"stale,omitempty"`
}

// PricePrediction is an ordered multi-day price forecast.
type PricePrediction struct {
	ServiceID string          `json:"serviceId"`
	Pincode   string          `json:"pincode"`
	Currency  string          `json:"currency"`
	Days      []DayPrediction `json:"days"`
}
