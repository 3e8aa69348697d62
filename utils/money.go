package utils

import (
	"fmt"
	"math"
)

// Monetary amounts are carried as int64 minor units (cents) so multiplier
// composition never accumulates floating-point drift. Rendering to a decimal
// string happens only at the boundary.

// ApplyMultiplier scales an amount in minor units, rounding half away from zero.
func ApplyMultiplier(amountMinor int64, multiplier float64) int64 {
	return int64(math.Round(float64(amountMinor) * multiplier))
}

// PercentChange returns the relative change from base to final, in percent,
// rounded to one decimal place.
func PercentChange(baseMinor, finalMinor int64) float64 {
	if baseMinor == 0 {
		return 0
	}
	pct := float64(finalMinor-baseMinor) / float64(baseMinor) * 100
	return math.Round(pct*10) / 10
}

// FormatMinor renders a minor-unit amount as a decimal string, e.g. 10560 -> "105.60".
func FormatMinor(amountMinor int64) string {
	sign := ""
	if amountMinor < 0 {
		sign = "-"
		amountMinor = -amountMinor
	}
	return fmt.Sprintf("%s%d.%02d", sign, amountMinor/100, amountMinor%100)
}
