package scheduling

import (
	"testing"

	"quickserve/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTravel = models.TravelEstimate{
	DistanceKm:      4.2,
	DurationMinutes: 20,
	Source:          models.TravelSourceLive,
	Confidence:      1.0,
}

func generate(committed []models.Interval, earliest int) []models.TimeSlot {
	return GenerateSlots(
		"vendor-001", "svc-clean-std", "2026-09-03",
		models.WorkingHours{Start: 480, End: 1080}, // 8:00-18:00
		committed,
		120, // two-hour service
		testTravel,
		models.BufferWindow{BeforeMinutes: 10, AfterMinutes: 10},
		30,
		earliest,
	)
}

func TestGenerateSlotsWalksTheGrid(t *testing.T) {
	slots := generate(nil, 0)
	require.Len(t, slots, 3)

	// First candidate is the earliest grid point whose leading buffer still
	// fits inside working hours: round-up(480+10) = 510.
	assert.Equal(t, 510, slots[0].Start)
	assert.Equal(t, 660, slots[1].Start)
	assert.Equal(t, 810, slots[2].Start)

	for _, slot := range slots {
		assert.Zero(t, slot.Start%30, "slot %d off the step grid", slot.Start)
		assert.Equal(t, 120+20+20, slot.End-slot.Start,
			"end must cover service, travel and both buffers")
		assert.GreaterOrEqual(t, slot.Start-10, 480)
		assert.LessOrEqual(t, slot.Start+120+10, 1080)
	}
}

func TestGenerateSlotsNeverOverlap(t *testing.T) {
	slots := generate(nil, 0)
	for i := 1; i < len(slots); i++ {
		prevBusyEnd := slots[i-1].Start + 120 + 10
		nextBusyStart := slots[i].Start - 10
		assert.GreaterOrEqual(t, nextBusyStart, prevBusyEnd,
			"slots %d and %d overlap once buffers are counted", i-1, i)
	}
}

func TestGenerateSlotsClearCommitments(t *testing.T) {
	committed := []models.Interval{{Start: 630, End: 760}}
	slots := generate(committed, 0)
	require.NotEmpty(t, slots)

	for _, slot := range slots {
		busyStart := slot.Start - 10
		busyEnd := slot.Start + 120 + 10
		assert.False(t, overlapsAny(busyStart, busyEnd, committed),
			"slot at %d collides with a committed interval", slot.Start)
	}
}

func TestGenerateSlotsFullyBookedDay(t *testing.T) {
	committed := []models.Interval{{Start: 480, End: 1080}}
	assert.Empty(t, generate(committed, 0))
}

func TestGenerateSlotsRespectsEarliestStart(t *testing.T) {
	slots := generate(nil, 700)
	require.NotEmpty(t, slots)
	assert.GreaterOrEqual(t, slots[0].Start, 700)
}

func TestGenerateSlotsSortedAscending(t *testing.T) {
	slots := generate(nil, 0)
	for i := 1; i < len(slots); i++ {
		assert.Greater(t, slots[i].Start, slots[i-1].Start)
	}
}

func TestGenerateSlotsDeterministic(t *testing.T) {
	first := generate(nil, 0)
	second := generate(nil, 0)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID, "slot IDs must be derived, not random")
		assert.Equal(t, first[i], second[i])
	}
}

func TestGenerateSlotsDistinctIDs(t *testing.T) {
	slots := generate(nil, 0)
	seen := make(map[string]bool, len(slots))
	for _, slot := range slots {
		assert.False(t, seen[slot.ID], "duplicate slot ID %s", slot.ID)
		seen[slot.ID] = true
	}

	// A different date yields different IDs for the same start times.
	other := GenerateSlots(
		"vendor-001", "svc-clean-std", "2026-09-04",
		models.WorkingHours{Start: 480, End: 1080},
		nil, 120, testTravel,
		models.BufferWindow{BeforeMinutes: 10, AfterMinutes: 10},
		30, 0,
	)
	for _, slot := range other {
		assert.False(t, seen[slot.ID], "slot ID reused across dates")
	}
}

func TestGenerateSlotsDegenerateInputs(t *testing.T) {
	assert.Nil(t, GenerateSlots("v", "s", "2026-09-03",
		models.WorkingHours{Start: 600, End: 600}, nil, 60,
		testTravel, models.BufferWindow{}, 30, 0))

	assert.Nil(t, GenerateSlots("v", "s", "2026-09-03",
		models.WorkingHours{Start: 480, End: 1080}, nil, 0,
		testTravel, models.BufferWindow{}, 30, 0))
}
