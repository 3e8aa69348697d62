package routes

import (
	"time"

	"quickserve/handlers"
	"quickserve/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterSchedulingRoutes registers the slot endpoints.
func RegisterSchedulingRoutes(r *gin.Engine, sh *handlers.SchedulingHandler) {
	api := r.Group("/api/slots")
	{
		api.GET("", sh.GetAvailableSlots)
		api.GET("/optimal", sh.GetOptimalSlot)
	}
}

// RegisterPricingRoutes registers the pricing endpoints.
func RegisterPricingRoutes(r *gin.Engine, ph *handlers.PricingHandler) {
	api := r.Group("/api/pricing")
	{
		api.GET("/dynamic", ph.GetDynamicPrice)
		api.GET("/prediction", ph.GetPricePrediction)
	}
}

// RegisterRoutes applies CORS and wires all route groups plus the health and
// metrics endpoints.
func RegisterRoutes(r *gin.Engine, sh *handlers.SchedulingHandler, ph *handlers.PricingHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))

	RegisterSchedulingRoutes(r, sh)
	RegisterPricingRoutes(r, ph)

	r.GET("/health", handlers.HealthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))
}
