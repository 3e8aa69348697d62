package scheduling

import (
	"math"
	"sort"

	"quickserve/config"
	"quickserve/models"
)

// ScorerConfig holds the documented scoring weights and thresholds. Weights
// sum to 1.0 so the weighted sum of [0,1] sub-scores maps cleanly onto 0-100.
type ScorerConfig struct {
	TravelWeight    float64
	BufferWeight    float64
	TimeOfDayWeight float64

	// TravelCeilingMins is the travel duration at which the travel sub-score
	// bottoms out at 0.
	TravelCeilingMins int

	MinBufferMinutes int
	MaxBufferMinutes int

	// Slots whose travel confidence falls below ConfidenceThreshold are
	// capped at LowConfidenceCeiling and carry a visible caveat.
	ConfidenceThreshold  float64
	LowConfidenceCeiling float64
}

// DefaultScorerConfig builds a scorer config from the loaded configuration.
func DefaultScorerConfig() ScorerConfig {
	return ScorerConfig{
		TravelWeight:         0.45,
		BufferWeight:         0.25,
		TimeOfDayWeight:      0.30,
		TravelCeilingMins:    60,
		MinBufferMinutes:     config.AppConfig.BufferMinMinutes,
		MaxBufferMinutes:     config.AppConfig.BufferMaxMinutes,
		ConfidenceThreshold:  0.8,
		LowConfidenceCeiling: float64(config.AppConfig.LowConfidenceScore),
	}
}

// timeOfDayCurve maps the slot's start hour to a desirability in [0,1].
// Mid-morning and early afternoon are favored; very early and late hours are
// penalized.
var timeOfDayCurve = [24]float64{
	0, 0, 0, 0, 0, 0.1, // 00-05
	0.2, 0.4, 0.75, // 06-08
	1.0, 1.0, 1.0, // 09-11
	0.75, 0.9, 0.9, 0.9, 0.9, // 12-16
	0.6, 0.6, // 17-18
	0.4, 0.2, 0.1, 0, 0, // 19-23
}

// ScoreSlots assigns every candidate an optimization score in [0,100] plus a
// one-line availability reason, then orders the slice best-first. Ties on
// score break toward the earlier start time.
func ScoreSlots(slots []models.TimeSlot, cfg ScorerConfig) []models.TimeSlot {
	for i := range slots {
		scoreSlot(&slots[i], cfg)
	}

	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].OptimizationScore != slots[j].OptimizationScore {
			return slots[i].OptimizationScore > slots[j].OptimizationScore
		}
		return slots[i].Start < slots[j].Start
	})
	return slots
}

func scoreSlot(slot *models.TimeSlot, cfg ScorerConfig) {
	travelScore := clamp01(1 - float64(slot.Travel.DurationMinutes)/float64(cfg.TravelCeilingMins))

	maxExtra := float64(2 * (cfg.MaxBufferMinutes - cfg.MinBufferMinutes))
	bufferScore := 1.0
	if maxExtra > 0 {
		extra := float64(slot.Buffer.Total() - 2*cfg.MinBufferMinutes)
		bufferScore = clamp01(1 - extra/maxExtra)
	}

	todScore := timeOfDayCurve[hourOf(slot.Start)]

	score := 100 * (cfg.TravelWeight*travelScore +
		cfg.BufferWeight*bufferScore +
		cfg.TimeOfDayWeight*todScore)

	slot.AvailabilityReason = availabilityReason(slot, travelScore, todScore)

	if !slot.Travel.Reliable(cfg.ConfidenceThreshold) {
		if score > cfg.LowConfidenceCeiling {
			score = cfg.LowConfidenceCeiling
		}
		if slot.Travel.Confidence == 0 {
			slot.Caveat = "travel time unknown; worst-case buffers applied"
		} else {
			slot.Caveat = "travel time is estimated; actual arrival may vary"
		}
	}

	slot.OptimizationScore = math.Round(score*10) / 10
}

func availabilityReason(slot *models.TimeSlot, travelScore, todScore float64) string {
	var travelDesc string
	switch {
	case slot.Travel.Confidence == 0:
		travelDesc = "travel unknown"
	case slot.Travel.DurationMinutes <= 15:
		travelDesc = "minimal travel time"
	case slot.Travel.DurationMinutes <= 35:
		travelDesc = "moderate travel"
	default:
		travelDesc = "long travel leg"
	}

	var todDesc string
	switch h := hourOf(slot.Start); {
	case h < 12:
		todDesc = "morning slot"
	case h < 17:
		todDesc = "afternoon slot"
	default:
		todDesc = "evening slot"
	}

	return travelDesc + ", " + todDesc
}

func hourOf(minuteOfDay int) int {
	h := minuteOfDay / 60
	if h < 0 {
		return 0
	}
	if h > 23 {
		return 23
	}
	return h
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
