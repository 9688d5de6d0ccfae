package engine

import (
	"boiler-quote-engine/internal/models"
)

// SelectTopology decides the recommended boiler configuration for a property.
//
// The decision is an ordered list of guarded rules evaluated top to bottom;
// the first rule that fires wins and later rules are unreachable. The order
// is the contract: reordering changes recommendations and breaks price
// consistency across repeated quotes.
//
// The tipping point for abandoning a combi is simultaneous hot water demand
// (bathrooms and likely shower concurrency), not raw bedroom count. A
// customer who already has a combi and wants to keep one is accommodated
// where a high-output combi can cope, but never past the mandatory System
// ceilings in rules 1 and 2.
func SelectTopology(profile *models.PropertyProfile) models.BoilerTopology {
	bedrooms := profile.BedroomCount()
	bathrooms := profile.BathroomCount()
	occupants := profile.OccupantCount()
	class := profile.CurrentBoilerClass()

	// Rule 1: extreme bathroom count always requires a System boiler.
	if bathrooms >= 6 {
		return models.TopologySystem
	}

	// Rule 2: very large house with high occupancy.
	if bedrooms >= 6 && occupants >= 6 {
		return models.TopologySystem
	}

	// Rule 3: accommodate a customer who already has a combi.
	if class == models.BoilerClassCombi {
		// High-output combi covers 3-4 bathrooms when the customer insists.
		if bathrooms >= 3 && bathrooms <= 4 {
			return models.TopologyCombi
		}
		if bedrooms <= 2 {
			return models.TopologyCombi
		}
		if bedrooms <= 3 && bathrooms <= 3 {
			return models.TopologyCombi
		}
	}

	// Rule 4: single bathroom properties suit a combi unless the property is
	// large and heavily occupied.
	if bathrooms == 1 {
		if bedrooms >= 5 && occupants >= 5 {
			return models.TopologySystem
		}
		return models.TopologyCombi
	}

	// Rule 5: two bathrooms is the critical assessment zone; simultaneous
	// usage likelihood decides.
	if bathrooms == 2 {
		if occupants >= 4 || (occupants >= 3 && bedrooms >= 3) || bedrooms >= 4 {
			return models.TopologySystem
		}
		return models.TopologyCombi
	}

	// Rule 6: preserve an existing regular/open-vent system in larger
	// properties rather than forcing a conversion.
	if class == models.BoilerClassRegular && (bathrooms >= 2 || bedrooms >= 4) {
		return models.TopologyRegular
	}

	// Rule 7: premium properties need maximum stored capacity.
	if bedrooms >= 5 && bathrooms >= 3 {
		return models.TopologyRegular
	}

	// Rule 8: default.
	return models.TopologyCombi
}
