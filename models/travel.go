package models

// Travel estimate sources.
const (
	TravelSourceLive      = "live"
	TravelSourceEstimated = "estimated"
)

// TravelEstimate is the travel leg between a vendor's reference location and
// the job pincode. Confidence is in [0,1]: 1.0 only for undegraded live
// lookups, strictly below 1.0 for statistical fallbacks, 0 when nothing was
// resolvable and the duration is a conservative default.
type TravelEstimate struct {
	DistanceKm      float64 `json:"distanceKm"`
	DurationMinutes int     `json:"durationMinutes"`
	Source          string  `json:"source"`
	Confidence      float64 `json:"confidence"`
}

// Reliable reports whether the estimate is trustworthy enough to rank a slot
// without a caveat, given the configured confidence threshold.
func (t TravelEstimate) Reliable(threshold float64) bool {
	return t.Confidence >= threshold
}
