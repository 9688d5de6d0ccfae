// Package engine implements the intelligent quote pipeline: property
// analysis, system selection, sizing, job classification and pricing.
package engine

import (
	"math"

	"boiler-quote-engine/internal/models"
)

// minHeatLoadByBedrooms is the minimum heat load safety floor in kW, keyed by
// bedroom count (5 covers 5+).
var minHeatLoadByBedrooms = map[int]float64{
	1: 12,
	2: 18,
	3: 24,
	4: 30,
	5: 36,
}

// Analyze derives the heating requirement for a property: heat load, hot
// water demand and the simultaneous usage score. The figures are heuristic
// proxies calibrated against reference installations, not thermal models.
func Analyze(profile *models.PropertyProfile) models.HeatingRequirement {
	return models.HeatingRequirement{
		HeatLoadKw:             calculateHeatLoad(profile),
		HotWaterDemandKw:       calculateHotWaterDemand(profile),
		SimultaneousUsageScore: simultaneousUsageScore(profile),
	}
}

// calculateHeatLoad estimates the space-heating requirement in kW from a
// radiator-count proxy: one radiator per bedroom and bathroom plus an
// allowance for living spaces that depends on the property type.
func calculateHeatLoad(profile *models.PropertyProfile) int {
	bedrooms := profile.BedroomCount()
	bathrooms := profile.BathroomCount()

	radiators := float64(bedrooms + bathrooms)

	var heatLoad float64
	if profile.IsHouse() {
		// Living room, kitchen, dining room plus hallway.
		radiators += 3 + 1
		if bedrooms >= 4 {
			radiators++ // study/utility
		}
		if bedrooms >= 5 {
			radiators++ // conservatory/additional reception
		}

		// Houses lose more heat through external walls.
		heatLoad = radiators * 2.0
		if bedrooms >= 4 {
			heatLoad += 3
		}
		if bedrooms >= 5 {
			heatLoad += 5
		}
	} else {
		// Flats: fewer living spaces, shared walls reduce losses.
		radiators += 2 + 0.5
		heatLoad = radiators * 1.7
	}

	// Safety floor by bedroom count.
	key := bedrooms
	if key > 5 {
		key = 5
	}
	if key < 1 {
		key = 1
	}
	if min := minHeatLoadByBedrooms[key]; heatLoad < min {
		heatLoad = min
	}

	return int(math.Round(heatLoad))
}

// calculateHotWaterDemand estimates peak hot water demand in kW. Peak flow is
// the larger of bathroom demand (10 L/min each) and personal demand
// (2.5 L/min per occupant), converted at 2.5 kW per L/min, plus a buffer for
// simultaneous use in multi-bathroom properties.
func calculateHotWaterDemand(profile *models.PropertyProfile) int {
	bathrooms := profile.BathroomCount()
	occupants := profile.OccupantCount()

	peakLitresPerMinute := math.Max(float64(bathrooms)*10, float64(occupants)*2.5)
	demand := peakLitresPerMinute * 2.5

	if bathrooms > 1 {
		demand += math.Min(float64(bathrooms)*2, 8)
	}

	return int(math.Round(demand))
}

// simultaneousUsageScore is a relative ranking signal for concurrent hot
// water draw. Zero unless the property has both multiple bathrooms and more
// than two occupants.
func simultaneousUsageScore(profile *models.PropertyProfile) int {
	bathrooms := profile.BathroomCount()
	occupants := profile.OccupantCount()

	if bathrooms > 1 && occupants > 2 {
		return bathrooms * occupants
	}
	return 0
}
