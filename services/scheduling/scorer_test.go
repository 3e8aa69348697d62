package scheduling

import (
	"testing"

	"quickserve/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScorerConfig() ScorerConfig {
	return ScorerConfig{
		TravelWeight:         0.45,
		BufferWeight:         0.25,
		TimeOfDayWeight:      0.30,
		TravelCeilingMins:    60,
		MinBufferMinutes:     10,
		MaxBufferMinutes:     45,
		ConfidenceThreshold:  0.8,
		LowConfidenceCeiling: 55,
	}
}

func slotAt(start, travelMins int, confidence float64) models.TimeSlot {
	return models.TimeSlot{
		Start: start,
		End:   start + 160,
		Travel: models.TravelEstimate{
			DurationMinutes: travelMins,
			Source:          models.TravelSourceLive,
			Confidence:      confidence,
		},
		Buffer: models.BufferWindow{BeforeMinutes: 10, AfterMinutes: 10},
	}
}

func TestScoreSlotsRange(t *testing.T) {
	cfg := testScorerConfig()
	slots := []models.TimeSlot{
		slotAt(540, 5, 1.0),
		slotAt(300, 90, 1.0), // 5:00, long travel: bottom of every sub-score
		slotAt(1140, 45, 1.0),
	}
	for _, slot := range ScoreSlots(slots, cfg) {
		assert.GreaterOrEqual(t, slot.OptimizationScore, 0.0)
		assert.LessOrEqual(t, slot.OptimizationScore, 100.0)
		assert.NotEmpty(t, slot.AvailabilityReason)
	}
}

func TestScoreSlotsShorterTravelNeverScoresLower(t *testing.T) {
	cfg := testScorerConfig()
	for travel := 0; travel < 90; travel += 5 {
		near := slotAt(600, travel, 1.0)
		far := slotAt(600, travel+5, 1.0)
		scoreSlot(&near, cfg)
		scoreSlot(&far, cfg)
		assert.GreaterOrEqual(t, near.OptimizationScore, far.OptimizationScore,
			"travel %d outranked travel %d", travel+5, travel)
	}
}

func TestScoreSlotsTimeOfDayPreference(t *testing.T) {
	cfg := testScorerConfig()
	morning := slotAt(600, 20, 1.0)    // 10:00
	lateNight := slotAt(1260, 20, 1.0) // 21:00
	scoreSlot(&morning, cfg)
	scoreSlot(&lateNight, cfg)
	assert.Greater(t, morning.OptimizationScore, lateNight.OptimizationScore)
	assert.Contains(t, morning.AvailabilityReason, "morning slot")
	assert.Contains(t, lateNight.AvailabilityReason, "evening slot")
}

func TestScoreSlotsLowConfidenceCeiling(t *testing.T) {
	cfg := testScorerConfig()

	// A near-perfect slot: short travel, minimal buffers, mid-morning.
	slot := slotAt(600, 5, 0.65)
	scoreSlot(&slot, cfg)
	assert.LessOrEqual(t, slot.OptimizationScore, cfg.LowConfidenceCeiling)
	assert.Equal(t, "travel time is estimated; actual arrival may vary", slot.Caveat)

	reliable := slotAt(600, 5, 1.0)
	scoreSlot(&reliable, cfg)
	assert.Greater(t, reliable.OptimizationScore, cfg.LowConfidenceCeiling)
	assert.Empty(t, reliable.Caveat)
}

func TestScoreSlotsUnknownTravelCaveat(t *testing.T) {
	cfg := testScorerConfig()
	slot := slotAt(600, 30, 0)
	scoreSlot(&slot, cfg)
	assert.Equal(t, "travel time unknown; worst-case buffers applied", slot.Caveat)
	assert.Contains(t, slot.AvailabilityReason, "travel unknown")
	assert.LessOrEqual(t, slot.OptimizationScore, cfg.LowConfidenceCeiling)
}

func TestScoreSlotsOrderedBestFirst(t *testing.T) {
	cfg := testScorerConfig()
	slots := ScoreSlots([]models.TimeSlot{
		slotAt(1140, 45, 1.0),
		slotAt(540, 5, 1.0),
		slotAt(840, 25, 1.0),
	}, cfg)

	for i := 1; i < len(slots); i++ {
		assert.GreaterOrEqual(t, slots[i-1].OptimizationScore, slots[i].OptimizationScore)
	}
}

func TestScoreSlotsTieBreaksOnEarlierStart(t *testing.T) {
	cfg := testScorerConfig()

	// Identical inputs except start times inside the same curve plateau
	// (9:00-11:00 all score 1.0), so the scores tie exactly.
	slots := ScoreSlots([]models.TimeSlot{
		slotAt(660, 20, 1.0), // 11:00
		slotAt(540, 20, 1.0), // 09:00
	}, cfg)

	require.Len(t, slots, 2)
	assert.Equal(t, slots[0].OptimizationScore, slots[1].OptimizationScore)
	assert.Equal(t, 540, slots[0].Start, "earlier start must win the tie")
}

func TestScoreSlotsRoundedToOneDecimal(t *testing.T) {
	cfg := testScorerConfig()
	slot := slotAt(540, 7, 1.0)
	scoreSlot(&slot, cfg)
	rounded := float64(int(slot.OptimizationScore*10)) / 10
	assert.Equal(t, rounded, slot.OptimizationScore)
}
