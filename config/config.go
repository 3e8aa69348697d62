package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr        string `mapstructure:"REDIS_ADDR"`
	RedisPassword    string `mapstructure:"REDIS_PASSWORD"`
	RedisTravelDB    int    `mapstructure:"REDIS_TRAVEL_DB"`
	RedisMarketDB    int    `mapstructure:"REDIS_MARKET_DB"`
	RedisTaskQueueDB int    `mapstructure:"REDIS_TASK_QUEUE_DB"`

	// Routing provider (distance matrix lookups).
	RoutingAPIKey    string `mapstructure:"ROUTING_API_KEY"`
	RoutingBaseURL   string `mapstructure:"ROUTING_BASE_URL"`
	RoutingTimeoutMs int    `mapstructure:"ROUTING_TIMEOUT_MS"`

	// Slot generation and scoring.
	SlotStepMinutes    int `mapstructure:"SLOT_STEP_MINUTES"`
	BufferMinMinutes   int `mapstructure:"BUFFER_MIN_MINUTES"`
	BufferMaxMinutes   int `mapstructure:"BUFFER_MAX_MINUTES"`
	DefaultTravelMins  int `mapstructure:"DEFAULT_TRAVEL_MINS"`
	LowConfidenceScore int `mapstructure:"LOW_CONFIDENCE_SCORE_CEILING"`
	TravelCacheTTLMins int `mapstructure:"TRAVEL_CACHE_TTL_MINS"`

	// Pricing and prediction.
	MarketCacheTTLMins int     `mapstructure:"MARKET_CACHE_TTL_MINS"`
	PredictionMaxDays  int     `mapstructure:"PREDICTION_MAX_DAYS"`
	MultiplierBandMin  float64 `mapstructure:"MULTIPLIER_BAND_MIN"`
	MultiplierBandMax  float64 `mapstructure:"MULTIPLIER_BAND_MAX"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_TRAVEL_DB", 0)
	viper.SetDefault("REDIS_MARKET_DB", 1)
	viper.SetDefault("REDIS_TASK_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "quickserve")
	viper.SetDefault("ROUTING_API_KEY", "")
	viper.SetDefault("ROUTING_BASE_URL", "https://maps.googleapis.com/maps/api/distancematrix/json")
	viper.SetDefault("ROUTING_TIMEOUT_MS", 2500)
	viper.SetDefault("SLOT_STEP_MINUTES", 30)
	viper.SetDefault("BUFFER_MIN_MINUTES", 10)
	viper.SetDefault("BUFFER_MAX_MINUTES", 45)
	viper.SetDefault("DEFAULT_TRAVEL_MINS", 30)
	viper.SetDefault("LOW_CONFIDENCE_SCORE_CEILING", 55)
	viper.SetDefault("TRAVEL_CACHE_TTL_MINS", 5)
	viper.SetDefault("MARKET_CACHE_TTL_MINS", 3)
	viper.SetDefault("PREDICTION_MAX_DAYS", 30)
	viper.SetDefault("MULTIPLIER_BAND_MIN", 0.5)
	viper.SetDefault("MULTIPLIER_BAND_MAX", 3.0)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
