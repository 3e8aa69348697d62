package main

import (
	"context"
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"quickserve/config"
	"quickserve/database"
	"quickserve/models"

	"go.mongodb.org/mongo-driver/bson"
)

func main() {
	// Initialize the database connection.
	config.LoadConfig()
	database.InitDB()
	client := database.MongoClient
	db := client.Database(config.AppConfig.DatabaseName)

	vendorColl := db.Collection("vendors")
	serviceColl := db.Collection("services")
	pincodeColl := db.Collection("pincodes")
	commitmentColl := db.Collection("commitments")
	jobColl := db.Collection("jobs")
	forecastColl := db.Collection("market_forecasts")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Clear existing seed data.
	for _, coll := range []string{"vendors", "services", "pincodes", "commitments", "jobs", "market_forecasts"} {
		if _, err := db.Collection(coll).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s collection: %v", coll, err)
		}
	}

	// Reference point for simulation (Bangalore), and the pincodes we seed
	// as rings around it.
	centerLon, centerLat := 77.5946, 12.9716
	pincodes := []string{"560001", "560002", "560003"}

	var pincodeDocs []interface{}
	for i, pin := range pincodes {
		// Offset each centroid ~2 km east of the previous one.
		pincodeDocs = append(pincodeDocs, bson.M{
			"pincode": pin,
			"centroid": models.GeoPoint{
				Type:        "Point",
				Coordinates: []float64{centerLon + float64(i)*0.0184, centerLat},
			},
		})
	}
	if _, err := pincodeColl.InsertMany(ctx, pincodeDocs); err != nil {
		log.Fatalf("Failed to seed pincodes: %v", err)
	}

	// Service catalog.
	services := []models.Service{
		{ID: "svc-clean-std", Name: "Standard Home Cleaning", Category: "cleaning", BasePriceMinor: 8000, Currency: "INR", DurationMinutes: 120},
		{ID: "svc-clean-deep", Name: "Deep Cleaning", Category: "cleaning", BasePriceMinor: 15000, Currency: "INR", DurationMinutes: 240},
		{ID: "svc-repair-plumb", Name: "Plumbing Repair", Category: "repair", BasePriceMinor: 6500, Currency: "INR", DurationMinutes: 90},
		{ID: "svc-beauty-home", Name: "At-Home Salon", Category: "beauty", BasePriceMinor: 12000, Currency: "INR", DurationMinutes: 60},
		{ID: "svc-garden", Name: "Garden Maintenance", Category: "landscaping", BasePriceMinor: 9000, Currency: "INR", DurationMinutes: 180},
	}
	var serviceDocs []interface{}
	for _, s := range services {
		serviceDocs = append(serviceDocs, s)
	}
	if _, err := serviceColl.InsertMany(ctx, serviceDocs); err != nil {
		log.Fatalf("Failed to seed services: %v", err)
	}

	// Simulation parameters.
	categories := []string{"cleaning", "repair", "beauty", "landscaping"}
	vendorsPerCategory := 5
	totalVendors := len(categories) * vendorsPerCategory

	// Linearly assign distances so the furthest vendor sits at 5 km and the
	// closest at ~0.01 km from the reference point.
	maxDistance := 5.0
	minDistance := 0.01
	spacing := (maxDistance - minDistance) / float64(totalVendors-1)

	weekdays := []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

	rand.Seed(time.Now().UnixNano())
	vendorCounter := 1
	var vendors []interface{}
	for _, category := range categories {
		for i := 1; i <= vendorsPerCategory; i++ {
			globalIndex := float64(vendorCounter - 1)
			distanceKm := maxDistance - spacing*globalIndex

			// Random angle for positioning within the circle.
			angle := rand.Float64() * 2 * math.Pi

			// Approximate: 1 km ≈ 0.00922° longitude and 1 km ≈ 0.009° latitude
			// at this latitude.
			deltaLon := distanceKm * 0.00922 * math.Cos(angle)
			deltaLat := distanceKm * 0.009 * math.Sin(angle)

			hours := make(map[string]models.WorkingHours, len(weekdays))
			for _, day := range weekdays {
				// 8:00-18:00, with a late start on saturdays.
				start := 480
				if day == "saturday" {
					start = 600
				}
				hours[day] = models.WorkingHours{Start: start, End: 1080}
			}

			vendors = append(vendors, models.Vendor{
				ID:      fmt.Sprintf("vendor-%03d", vendorCounter),
				Name:    fmt.Sprintf("%s Vendor %d", category, i),
				Pincode: pincodes[vendorCounter%len(pincodes)],
				LocationGeo: models.GeoPoint{
					Type:        "Point",
					Coordinates: []float64{centerLon + deltaLon, centerLat + deltaLat},
				},
				WorkingHours: hours,
				Performance: models.VendorPerformance{
					CompletionRate: 0.85 + rand.Float64()*0.15,
					Rating:         3.5 + rand.Float64()*1.5,
					CompletedJobs:  20 + rand.Intn(200),
				},
				Categories: []string{category},
				Active:     true,
			})
			vendorCounter++
		}
	}
	if _, err := vendorColl.InsertMany(ctx, vendors); err != nil {
		log.Fatalf("Failed to seed vendors: %v", err)
	}

	// Dates for the next 7 days.
	var weekDates []string
	today := time.Now()
	for i := 0; i < 7; i++ {
		weekDates = append(weekDates, today.AddDate(0, 0, i).Format("2006-01-02"))
	}

	// A few committed bookings per vendor so slot generation has real gaps
	// to work around.
	var commitments []interface{}
	for v := 1; v <= totalVendors; v++ {
		vendorID := fmt.Sprintf("vendor-%03d", v)
		for _, date := range weekDates[:3] {
			start := 540 + rand.Intn(6)*60 // between 9:00 and 14:00
			commitments = append(commitments, bson.M{
				"vendorId": vendorID,
				"date":     date,
				"start":    start,
				"end":      start + 120,
			})
		}
	}
	if _, err := commitmentColl.InsertMany(ctx, commitments); err != nil {
		log.Fatalf("Failed to seed commitments: %v", err)
	}

	// Open jobs inside the demand window, skewed so 560001 runs hot.
	var jobs []interface{}
	for _, pin := range pincodes {
		for _, category := range categories {
			n := 3 + rand.Intn(5)
			if pin == "560001" {
				n += 8
			}
			for j := 0; j < n; j++ {
				jobs = append(jobs, bson.M{
					"pincode":   pin,
					"category":  category,
					"status":    "open",
					"createdAt": time.Now().Add(-time.Duration(rand.Intn(20)) * time.Hour),
				})
			}
		}
	}
	if _, err := jobColl.InsertMany(ctx, jobs); err != nil {
		log.Fatalf("Failed to seed jobs: %v", err)
	}

	// Forecasts for the prediction horizon.
	var forecasts []interface{}
	for _, pin := range pincodes {
		for _, category := range categories {
			for _, date := range weekDates {
				forecasts = append(forecasts, models.MarketForecast{
					Pincode:       pin,
					Category:      category,
					Date:          date,
					OpenJobs:      4 + rand.Intn(10),
					ActiveVendors: 3 + rand.Intn(6),
				})
			}
		}
	}
	if _, err := forecastColl.InsertMany(ctx, forecasts); err != nil {
		log.Fatalf("Failed to seed market forecasts: %v", err)
	}

	log.Printf("Seeded %d vendors, %d services, %d commitments, %d jobs, %d forecasts across %d pincodes",
		len(vendors), len(services), len(commitments), len(jobs), len(forecasts), len(pincodes))
}
