// File: quickserve/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quickserve/config"
	"quickserve/cron"
	"quickserve/database"
	catalogRepoPkg "quickserve/database/repository/catalog"
	marketRepoPkg "quickserve/database/repository/market"
	vendorRepoPkg "quickserve/database/repository/vendor"
	"quickserve/handlers"
	"quickserve/metrics"
	"quickserve/middleware"
	"quickserve/routes"
	"quickserve/services/pricing"
	"quickserve/services/scheduling"
	"quickserve/services/travel"
	"quickserve/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	metrics.RegisterDefault()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.MetricsMiddleware())

	// repositories.
	vendorRepo := vendorRepoPkg.NewMongoVendorRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	marketRepo := marketRepoPkg.NewMongoMarketRepo()

	// services.
	estimator := travel.NewDefaultEstimator(vendorRepo, utils.GetTravelCacheClient())

	pricingEngine := pricing.NewDefaultPricingEngine(
		marketRepo,
		vendorRepo,
		catalogRepo,
		utils.GetMarketCacheClient(),
	)
	predictionEngine := pricing.NewDefaultPredictionEngine(pricingEngine, marketRepo, catalogRepo)

	schedulingEngine := scheduling.NewDefaultSchedulingEngine(
		vendorRepo,
		catalogRepo,
		estimator,
		pricingEngine,
	)

	schedulingHandler := handlers.NewSchedulingHandler(schedulingEngine, logger)
	pricingHandler := handlers.NewPricingHandler(pricingEngine, predictionEngine, logger)

	// Register routes with the assembled handlers.
	routes.RegisterRoutes(router, schedulingHandler, pricingHandler)

	// Background refresh of market snapshots and liveness monitoring.
	cron.InitSnapshotWorker(pricingEngine, utils.GetMarketCacheClient())
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetTravelCacheClient(), utils.GetMarketCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
