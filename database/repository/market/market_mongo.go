package marketRepo

import (
	"context"
	"fmt"
	"time"

	"quickserve/config"
	"quickserve/database"
	"quickserve/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// demandWindow is the rolling window over which open jobs count as demand.
const demandWindow = 24 * time.Hour

// MongoMarketRepo implements MarketRepository using MongoDB.
type MongoMarketRepo struct {
	jobs      *mongo.Collection
	forecasts *mongo.Collection
}

// NewMongoMarketRepo creates a new MarketRepository backed by MongoDB.
func NewMongoMarketRepo() MarketRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoMarketRepo{
		jobs:      db.Collection("jobs"),
		forecasts: db.Collection("market_forecasts"),
	}
}

func (r *MongoMarketRepo) CountOpenJobs(pincode, category string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{
		"pincode":   pincode,
		"category":  category,
		"status":    "open",
		"createdAt": bson.M{"$gte": time.Now().Add(-demandWindow)},
	}
	count, err := r.jobs.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count open jobs in %s: %w", pincode, err)
	}
	return int(count), nil
}

func (r *MongoMarketRepo) GetForecast(pincode, category, date string) (*models.MarketForecast, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var fc models.MarketForecast
	filter := bson.M{"pincode": pincode, "category": category, "date": date}
	if err := r.forecasts.FindOne(ctx, filter).Decode(&fc); err != nil {
		return nil, fmt.Errorf("no market forecast for %s/%s on %s: %w", pincode, category, date, err)
	}
	return &fc, nil
}
