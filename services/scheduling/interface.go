package scheduling

import (
	"context"

	"quickserve/models"
)

// OptimalSlotResult wraps the single best slot; Available is false when the
// vendor has no feasible slots on the date ("none available" is not an error).
type OptimalSlotResult struct {
	Available bool             `json:"available"`
	Slot      *models.TimeSlot `json:"slot,omitempty"`
}

// SchedulingEngine generates, scores and prices candidate slots.
type SchedulingEngine interface {
	GetAvailableSlots(ctx context.Context, vendorID, serviceID, pincode, date string) (*models.AvailableSlotsResult, error)
	GetOptimalSlot(ctx context.Context, vendorID, serviceID, pincode, date string) (*OptimalSlotResult, error)
}
