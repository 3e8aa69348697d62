package handlers

import (
	"errors"
	"net/http"

	"quickserve/services/scheduling"
	"quickserve/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SchedulingHandler serves the slot listing and optimal-slot endpoints.
type SchedulingHandler struct {
	Engine scheduling.SchedulingEngine
	Logger *zap.Logger
}

// NewSchedulingHandler creates a SchedulingHandler.
func NewSchedulingHandler(engine scheduling.SchedulingEngine, logger *zap.Logger) *SchedulingHandler {
	return &SchedulingHandler{Engine: engine, Logger: logger}
}

// GetAvailableSlots returns the scored, priced candidate slots for a
// vendor/service/pincode/date. An empty list is a 200, not an error.
func (h *SchedulingHandler) GetAvailableSlots(c *gin.Context) {
	vendorID := c.Query("vendorId")
	serviceID := c.Query("serviceId")
	pincode := c.Query("pincode")
	date := c.Query("date")

	result, err := h.Engine.GetAvailableSlots(c.Request.Context(), vendorID, serviceID, pincode, date)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetOptimalSlot returns the single best slot, or available=false when the
// vendor has no feasible slot on the date.
func (h *SchedulingHandler) GetOptimalSlot(c *gin.Context) {
	vendorID := c.Query("vendorId")
	serviceID := c.Query("serviceId")
	pincode := c.Query("pincode")
	date := c.Query("date")

	result, err := h.Engine.GetOptimalSlot(c.Request.Context(), vendorID, serviceID, pincode, date)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func respondSchedulingError(c *gin.Context, err error) {
	var vErr *utils.ValidationError
	if errors.As(err, &vErr) {
		utils.JSONFieldError(c, vErr.Field, vErr.Reason)
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "failed to compute slots", err.Error())
}
