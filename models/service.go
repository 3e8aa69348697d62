package models

// Service describes a bookable service offering.
type Service struct {
	ID              string `bson:"id" json:"id"`
	Name            string `bson:"name" json:"name"`
	Category        string `bson:"category" json:"category"`
	BasePriceMinor  int64  `bson:"basePriceMinor" json:"basePriceMinor"` // minor units (cents)
	Currency        string `bson:"currency" json:"currency"`
	DurationMinutes int    `bson:"durationMinutes" json:"durationMinutes"`
}
