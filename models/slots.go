package models

// BufferWindow is the idle time reserved around a job to absorb travel and
// setup/teardown. Both sides are ≥ 0 and derived deterministically from the
// service category and travel duration.
type BufferWindow struct {
	BeforeMinutes int `json:"beforeMinutes"`
	AfterMinutes  int `json:"afterMinutes"`
}

// Total returns the combined buffer minutes on both sides of a job.
func (b BufferWindow) Total() int {
	return b.BeforeMinutes + b.AfterMinutes
}

// TimeSlot is a scored candidate booking window for a vendor/service/date.
// Start and End are minutes from midnight; End covers the service duration
// plus the travel leg and both buffers.
type TimeSlot struct {
	ID                 string         `json:"id"`
	VendorID           string         `json:"vendorId"`
	ServiceID          string         `json:"serviceId"`
	Date               string         `json:"date"` // e.g., "2026-03-14"
	Start              int            `json:"start"`
	End                int            `json:"end"`
	OptimizationScore  float64        `json:"optimizationScore"` // [0,100]
	Travel             TravelEstimate `json:"travel"`
	Buffer             BufferWindow   `json:"buffer"`
	Pricing            *PricingResult `json:"pricing,omitempty"`
	AvailabilityReason string         `json:"availabilityReason"`
	Caveat             string         `json:"caveat,omitempty"`
}

// AvailableSlotsResult is the response shape for slot listings. An empty
// Slots list with TotalSlots 0 is a valid outcome, not an error.
type AvailableSlotsResult struct {
	Slots      []TimeSlot `json:"slots"`
	TotalSlots int        `json:"totalSlots"`
	Date       string     `json:"date"`
	VendorID   string     `json:"vendorId"`
	ServiceID  string     `json:"serviceId"`
}
