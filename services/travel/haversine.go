package travel

import (
	"math"

	"quickserve/models"
)

// Urban speed bands for converting great-circle distance to a duration when
// live routing is unavailable. Short hops crawl through local streets, longer
// legs pick up arterial speed.
var speedBands = []struct {
	maxKm float64
	kmh   float64
}{
	{3, 18},
	{10, 25},
	{math.MaxFloat64, 35},
}

func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371
	dLat := (lat2 - lat1) * (math.Pi / 180)
	dLon := (lon2 - lon1) * (math.Pi / 180)
	lat1Rad := lat1 * (math.Pi / 180)
	lat2Rad := lat2 * (math.Pi / 180)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return R * c
}

// haversineEstimate is the statistical fallback: straight-line distance
// mapped through the speed bands, tagged with reduced confidence.
func haversineEstimate(origin, dest models.GeoPoint) models.TravelEstimate {
	distKm := haversine(
		origin.Coordinates[1], origin.Coordinates[0],
		dest.Coordinates[1], dest.Coordinates[0],
	)

	kmh := speedBands[len(speedBands)-1].kmh
	for _, band := range speedBands {
		if distKm <= band.maxKm {
			kmh = band.kmh
			break
		}
	}

	mins := int(math.Ceil(distKm / kmh * 60))
	if mins < 5 {
		mins = 5
	}

	return models.TravelEstimate{
		DistanceKm:      math.Round(distKm*10) / 10,
		DurationMinutes: mins,
		Source:          models.TravelSourceEstimated,
		Confidence:      fallbackConfidence,
	}
}
