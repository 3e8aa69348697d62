package models

import "time"

// MarketStats is a read-only snapshot of marketplace pressure for one
// (pincode, category): the demand/supply evidence behind dynamic pricing.
type MarketStats struct {
	Pincode       string    `bson:"pincode" json:"pincode"`
	Category      string    `bson:"category" json:"category"`
	OpenJobs      int       `bson:"openJobs" json:"openJobs"`
	ActiveVendors int       `bson:"activeVendors" json:"activeVendors"`
	CapturedAt    time.Time `bson:"capturedAt" json:"capturedAt"`
}

// MarketForecast is a per-date forecast of typical demand/supply for a
// (pincode, category), supplied by an external forecasting collaborator.
type MarketForecast struct {
	Pincode       string `bson:"pincode" json:"pincode"`
	Category      string `bson:"category" json:"category"`
	Date          string `bson:"date" json:"date"`
	OpenJobs      int    `bson:"openJobs" json:"openJobs"`
	ActiveVendors int    `bson:"activeVendors" json:"activeVendors"`
}
