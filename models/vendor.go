package models

// GeoPoint is a GeoJSON point: coordinates are [longitude, latitude].
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// WorkingHours is a vendor's open window for one day,
// in minutes from midnight (e.g., 480 for 8:00 AM).
type WorkingHours struct {
	Start int `bson:"start" json:"start"`
	End   int `bson:"end" json:"end"`
}

// Interval is a committed busy window on a given date, minutes from midnight.
type Interval struct {
	Start int `bson:"start" json:"start"`
	End   int `bson:"end" json:"end"`
}

// VendorPerformance holds the historical metrics feeding the performance
// pricing factor.
type VendorPerformance struct {
	CompletionRate float64 `bson:"completionRate" json:"completionRate"` // [0,1]
	Rating         float64 `bson:"rating" json:"rating"`                 // [0,5]
	CompletedJobs  int     `bson:"completedJobs" json:"completedJobs"`
}

// Vendor is the scheduling view of a vendor: identity, reference location,
// weekly working hours and performance inputs. Booking CRUD owns the rest.
type Vendor struct {
	ID           string                  `bson:"id" json:"id"`
	Name         string                  `bson:"name" json:"name"`
	Pincode      string                  `bson:"pincode" json:"pincode"`
	LocationGeo  GeoPoint                `bson:"locationGeo" json:"locationGeo"`
	WorkingHours map[string]WorkingHours `bson:"workingHours" json:"workingHours"` // keyed by lowercase weekday
	Performance  VendorPerformance       `bson:"performance" json:"performance"`
	Categories   []string                `bson:"categories" json:"categories"`
	Active       bool                    `bson:"active" json:"active"`
}
