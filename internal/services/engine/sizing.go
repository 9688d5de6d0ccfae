package engine

import (
	"boiler-quote-engine/internal/models"
)

// standardBoilerSizesKw are the outputs boilers actually ship in.
var standardBoilerSizesKw = []int{24, 28, 30, 32, 35, 40, 42, 50}

// standardCylinderSizesL are stock unvented cylinder capacities.
var standardCylinderSizesL = []int{120, 150, 170, 210, 250, 300, 350, 400, 500}

// cylinderRoundThresholds holds, for each stocked capacity, the highest
// computed demand it still covers; anything above the last entry takes the
// 500L cylinder.
var cylinderRoundThresholds = []int{125, 145, 165, 195, 235, 285, 335, 435}

// Size computes the recommended boiler output and cylinder capacity for a
// property and chosen topology.
//
// Resolution is a prioritized chain: a proven conversion scenario, then the
// closest reference installation, then formula sizing from the heating
// requirement. Each resolver either answers definitively or declines; the
// first answer wins.
func Size(profile *models.PropertyProfile, topology models.BoilerTopology, req models.HeatingRequirement) models.SizingResult {
	bedrooms := profile.BedroomCount()
	bathrooms := profile.BathroomCount()
	occupants := profile.OccupantCount()
	class := profile.CurrentBoilerClass()
	propertyType := models.PropertyTypeFlat
	if profile.IsHouse() {
		propertyType = models.PropertyTypeHouse
	}

	result := models.SizingResult{
		BoilerOutputKw:    formulaBoilerSize(bedrooms, bathrooms, topology, req.HeatLoadKw),
		CylinderCapacityL: 0,
	}

	conversion := findConversionScenario(bedrooms, bathrooms, occupants, class)
	if conversion != nil && conversion.System != topology {
		conversion = nil
	}
	scenario := findBestHeatingScenario(bedrooms, bathrooms, occupants, propertyType, topology)

	switch {
	case conversion != nil:
		result.BoilerOutputKw = conversion.BoilerKw
	case scenario != nil:
		result.BoilerOutputKw = scenario.BoilerKw
	}

	if topology == models.TopologyCombi {
		return result
	}

	switch {
	case conversion != nil && conversion.CylinderL > 0:
		result.CylinderCapacityL = conversion.CylinderL
	case scenario != nil && scenario.CylinderL > 0:
		result.CylinderCapacityL = scenario.CylinderL
	default:
		result.CylinderCapacityL = formulaCylinderSize(bedrooms, bathrooms, occupants)
	}

	return result
}

// boilerSizeBaseline is the starting recommendation before heat-load
// widening, by bedroom band.
func boilerSizeBaseline(bedrooms int, topology models.BoilerTopology) int {
	if topology == models.TopologyCombi {
		switch {
		case bedrooms <= 1:
			return 24
		case bedrooms == 2:
			return 26
		case bedrooms == 3:
			return 30
		case bedrooms == 4:
			return 35
		default:
			return 40
		}
	}

	switch {
	case bedrooms <= 2:
		return 18
	case bedrooms == 3:
		return 24
	case bedrooms == 4:
		return 28
	default:
		return 32
	}
}

// formulaBoilerSize computes output from the baseline recommendation widened
// by heat load, with topology-specific floors and ceilings per property
// band, then rounds up to a standard size.
func formulaBoilerSize(bedrooms, bathrooms int, topology models.BoilerTopology, heatLoadKw int) int {
	baseline := boilerSizeBaseline(bedrooms, topology)
	size := baseline

	if topology == models.TopologyCombi {
		// Combi: DHW output is the critical dimension.
		switch {
		case bedrooms <= 2 && bathrooms <= 1:
			size = clampInt(maxInt(baseline, heatLoadKw+6), 24, 27)
		case bedrooms <= 3 && bathrooms <= 2:
			size = clampInt(maxInt(baseline, heatLoadKw+8), 28, 34)
		default:
			size = clampInt(maxInt(baseline, heatLoadKw+10), 35, 42)
		}

		// Two or more bathrooms need DHW headroom.
		if bathrooms >= 2 {
			size = maxInt(size, 32)
		}
	} else {
		// System/Regular: central heating output is primary.
		switch {
		case bedrooms <= 2:
			size = clampInt(maxInt(baseline, heatLoadKw+2), 18, 30)
		case bedrooms <= 3:
			size = clampInt(maxInt(baseline, heatLoadKw+3), 24, 35)
		default:
			size = clampInt(maxInt(baseline, heatLoadKw+4), 28, 50)
		}

		if bedrooms >= 4 {
			size = maxInt(size, 28)
		}
		if bedrooms >= 5 {
			size = maxInt(size, 30)
		}
	}

	return roundUpToCatalog(size, standardBoilerSizesKw)
}

// cylinderBaseline is the starting cylinder recommendation by bedroom band.
func cylinderBaseline(bedrooms int) int {
	switch {
	case bedrooms <= 1:
		return 120
	case bedrooms == 2:
		return 150
	case bedrooms == 3:
		return 180
	case bedrooms == 4:
		return 210
	default:
		return 300
	}
}

// formulaCylinderSize computes stored hot water capacity from per-occupant
// and per-bathroom litre weights banded by property profile, plus buffers
// for multi-bathroom and high-occupancy households.
func formulaCylinderSize(bedrooms, bathrooms, occupants int) int {
	baseline := cylinderBaseline(bedrooms)

	var capacity int
	switch {
	case bedrooms <= 1 && bathrooms <= 1:
		capacity = clampInt(maxInt(baseline, occupants*45+bathrooms*30), 120, 150)
	case bedrooms <= 2 && bathrooms <= 1:
		capacity = clampInt(maxInt(baseline, occupants*42+bathrooms*35), 150, 180)
	case bedrooms <= 3 && bathrooms <= 2:
		capacity = clampInt(maxInt(baseline, occupants*40+bathrooms*40), 180, 250)
	case bedrooms <= 4 && bathrooms <= 2:
		capacity = clampInt(maxInt(baseline, occupants*38+bathrooms*45), 210, 300)
	default:
		capacity = maxInt(300, maxInt(baseline, occupants*35+bathrooms*50))
	}

	// Simultaneous draw buffer for multi-bathroom properties.
	if bathrooms >= 2 {
		capacity += minInt(bathrooms*30, 90)
	}

	// Peak demand buffer for larger households.
	if occupants >= 4 {
		capacity += minInt((occupants-3)*20, 60)
	}

	// Round to a stocked cylinder. The bands are calibrated, not uniform:
	// a computed 420L still fits a 400L cylinder, but 440L steps to 500L.
	for i, limit := range cylinderRoundThresholds {
		if capacity <= limit {
			return standardCylinderSizesL[i]
		}
	}
	return standardCylinderSizesL[len(standardCylinderSizesL)-1]
}

// roundUpToCatalog rounds n up to the nearest catalog value, clamping to the
// largest entry.
func roundUpToCatalog(n int, catalog []int) int {
	for _, v := range catalog {
		if n <= v {
			return v
		}
	}
	return catalog[len(catalog)-1]
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func clampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
