package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"quickserve/services/pricing"
	"quickserve/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PricingHandler serves the dynamic price and price prediction endpoints.
type PricingHandler struct {
	Engine    pricing.PricingEngine
	Predictor pricing.PredictionEngine
	Logger    *zap.Logger
}

// NewPricingHandler creates a PricingHandler.
func NewPricingHandler(engine pricing.PricingEngine, predictor pricing.PredictionEngine, logger *zap.Logger) *PricingHandler {
	return &PricingHandler{Engine: engine, Predictor: predictor, Logger: logger}
}

// GetDynamicPrice prices a (service, pincode, time) tuple. scheduledTime is
// optional RFC3339; omitted means an as-soon-as-possible booking.
func (h *PricingHandler) GetDynamicPrice(c *gin.Context) {
	serviceID := c.Query("serviceId")
	pincode := c.Query("pincode")

	var scheduledAt *time.Time
	if raw := c.Query("scheduledTime"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.JSONFieldError(c, "scheduledTime", "must be RFC3339 formatted")
			return
		}
		scheduledAt = &t
	}

	result, err := h.Engine.GetDynamicPrice(c.Request.Context(), serviceID, pincode, scheduledAt)
	if err != nil {
		respondPricingError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetPricePrediction returns the multi-day forecast; days defaults to 7.
func (h *PricingHandler) GetPricePrediction(c *gin.Context) {
	serviceID := c.Query("serviceId")
	pincode := c.Query("pincode")

	days := 7
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.JSONFieldError(c, "days", "must be an integer")
			return
		}
		days = parsed
	}

	result, err := h.Predictor.GetPricePrediction(c.Request.Context(), serviceID, pincode, days)
	if err != nil {
		respondPricingError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func respondPricingError(c *gin.Context, err error) {
	var vErr *utils.ValidationError
	if errors.As(err, &vErr) {
		utils.JSONFieldError(c, vErr.Field, vErr.Reason)
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "failed to compute price", err.Error())
}
