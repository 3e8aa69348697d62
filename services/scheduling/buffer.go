package scheduling

import (
	"math"

	"quickserve/config"
	"quickserve/models"
)

// BufferPolicy derives the pre/post-job buffer from the service category and
// the travel duration. It is a pure function over its inputs: no I/O, no
// clock reads.
type BufferPolicy struct {
	MinMinutes int     // floor, applies regardless of travel
	Fraction   float64 // share of travel duration converted to buffer
	MaxMinutes int     // default per-side ceiling

	// CategoryCeilings overrides MaxMinutes per service category, to avoid
	// pathological over-buffering on long-distance jobs.
	CategoryCeilings map[string]int
}

// DefaultBufferPolicy builds a policy from the loaded configuration.
func DefaultBufferPolicy() BufferPolicy {
	return BufferPolicy{
		MinMinutes: config.AppConfig.BufferMinMinutes,
		Fraction:   0.5,
		MaxMinutes: config.AppConfig.BufferMaxMinutes,
		CategoryCeilings: map[string]int{
			"cleaning":    30,
			"repair":      45,
			"beauty":      20,
			"landscaping": 60,
		},
	}
}

// Window returns the buffer window for a category and travel duration.
// Output is symmetric, monotonic non-decreasing in travel duration, never
// below MinMinutes and never above the category ceiling.
func (p BufferPolicy) Window(category string, travelMinutes int) models.BufferWindow {
	side := int(math.Round(float64(travelMinutes) * p.Fraction))
	if side < p.MinMinutes {
		side = p.MinMinutes
	}
	if ceiling := p.ceilingFor(category); side > ceiling {
		side = ceiling
	}
	return models.BufferWindow{BeforeMinutes: side, AfterMinutes: side}
}

// WorstCase is the window applied when travel is unknown (confidence 0):
// the full category ceiling on both sides.
func (p BufferPolicy) WorstCase(category string) models.BufferWindow {
	ceiling := p.ceilingFor(category)
	return models.BufferWindow{BeforeMinutes: ceiling, AfterMinutes: ceiling}
}

func (p BufferPolicy) ceilingFor(category string) int {
	if c, ok := p.CategoryCeilings[category]; ok {
		return c
	}
	return p.MaxMinutes
}
