package scheduling

import (
	"fmt"

	"quickserve/models"

	"github.com/google/uuid"
)

// slotNamespace seeds deterministic slot IDs: identical inputs must always
// produce byte-identical output, so IDs are derived, not random.
var slotNamespace = uuid.MustParse("7b9e0a44-52c1-46f8-9f5e-2d3a8c1b6e90")

// GenerateSlots enumerates feasible candidate slots for one vendor, service
// and date. Candidates start on the step grid inside the working-hours
// window; a candidate is feasible when its busy span
// [start-before, start+serviceDuration+after] stays inside working hours and
// clears every committed interval. After emitting a candidate the walk skips
// the whole busy span (rounded up to the grid) so emitted candidates never
// overlap each other once buffers are counted.
//
// The returned slice is ordered ascending by start time. Empty output is a
// valid outcome, not an error. Emitted End times additionally cover the
// travel leg, so End - Start == serviceDuration + travel + both buffers.
func GenerateSlots(
	vendorID, serviceID, date string,
	hours models.WorkingHours,
	committed []models.Interval,
	serviceDuration int,
	travel models.TravelEstimate,
	buffer models.BufferWindow,
	stepMinutes int,
	earliestStart int,
) []models.TimeSlot {
	if stepMinutes <= 0 {
		stepMinutes = 30
	}
	if serviceDuration <= 0 || hours.End <= hours.Start {
		return nil
	}

	busySpan := buffer.BeforeMinutes + serviceDuration + buffer.AfterMinutes
	slotSpan := serviceDuration + travel.DurationMinutes + buffer.Total()

	start := roundUpToStep(hours.Start+buffer.BeforeMinutes, stepMinutes)
	if earliestStart > start {
		start = roundUpToStep(earliestStart, stepMinutes)
	}

	var slots []models.TimeSlot
	for ; start+serviceDuration+buffer.AfterMinutes <= hours.End; start += stepMinutes {
		busyStart := start - buffer.BeforeMinutes
		busyEnd := start + serviceDuration + buffer.AfterMinutes
		if overlapsAny(busyStart, busyEnd, committed) {
			continue
		}

		slots = append(slots, models.TimeSlot{
			ID:        slotID(vendorID, serviceID, date, start),
			VendorID:  vendorID,
			ServiceID: serviceID,
			Date:      date,
			Start:     start,
			End:       start + slotSpan,
			Travel:    travel,
			Buffer:    buffer,
		})

		// Skip past the emitted busy span, minus the loop's own step.
		start += roundUpToStep(busySpan, stepMinutes) - stepMinutes
	}
	return slots
}

func roundUpToStep(minute, step int) int {
	if rem := minute % step; rem != 0 {
		return minute + step - rem
	}
	return minute
}

func overlapsAny(start, end int, intervals []models.Interval) bool {
	for _, iv := range intervals {
		if start < iv.End && iv.Start < end {
			return true
		}
	}
	return false
}

func slotID(vendorID, serviceID, date string, start int) string {
	return uuid.NewSHA1(slotNamespace, []byte(fmt.Sprintf("%s|%s|%s|%d", vendorID, serviceID, date, start))).String()
}
