package engine

import (
	"boiler-quote-engine/internal/models"
)

// HeatingScenario is a reference installation: a real property profile with
// the boiler output and cylinder size that proved adequate for it. Scenario
// data takes priority over formula sizing because it reflects installs that
// are known to work.
type HeatingScenario struct {
	ID           string
	Bedrooms     int
	Bathrooms    int
	Occupants    int
	PropertyType models.PropertyType
	SystemType   models.BoilerTopology
	BoilerKw     int
	CylinderL    int
	Description  string
}

// ConversionScenario is a proven system-change installation keyed by the
// property counts and the class of the boiler being replaced.
type ConversionScenario struct {
	ID           string
	Bedrooms     int
	Bathrooms    int
	Occupants    int
	CurrentClass models.BoilerClass
	System       models.BoilerTopology
	BoilerKw     int
	CylinderL    int
	Reasoning    string
}

// heatingScenarios is the reference installation database.
var heatingScenarios = []HeatingScenario{
	{"UKS-001", 1, 1, 1, models.PropertyTypeFlat, models.TopologyCombi, 24, 0, "1-bed city flat, single occupant"},
	{"UKS-002", 1, 1, 2, models.PropertyTypeFlat, models.TopologyCombi, 24, 0, "1-bed flat, couple"},
	{"UKS-003", 2, 1, 2, models.PropertyTypeFlat, models.TopologyCombi, 24, 0, "2-bed purpose-built flat"},
	{"UKS-004", 2, 1, 2, models.PropertyTypeHouse, models.TopologyCombi, 28, 0, "2-bed terraced house"},
	{"UKS-005", 3, 1, 3, models.PropertyTypeHouse, models.TopologyCombi, 30, 0, "3-bed semi, single bathroom"},
	{"UKS-006", 3, 2, 2, models.PropertyTypeHouse, models.TopologyCombi, 32, 0, "3-bed semi, low simultaneous usage"},
	{"UKS-007", 4, 3, 5, models.PropertyTypeHouse, models.TopologyCombi, 40, 0, "4-bed house on high-output combi"},
	{"UKS-008", 3, 2, 4, models.PropertyTypeHouse, models.TopologySystem, 28, 210, "3-bed family home, two bathrooms"},
	{"UKS-009", 4, 2, 4, models.PropertyTypeHouse, models.TopologySystem, 32, 250, "4-bed detached, two bathrooms"},
	{"UKS-010", 5, 3, 5, models.PropertyTypeHouse, models.TopologySystem, 35, 300, "5-bed detached, three bathrooms"},
	{"UKS-011", 5, 4, 6, models.PropertyTypeHouse, models.TopologySystem, 40, 400, "5-bed house, four bathrooms"},
	{"UKS-012", 6, 4, 8, models.PropertyTypeHouse, models.TopologySystem, 50, 500, "6-bed multi-generational household"},
	{"UKS-013", 4, 2, 4, models.PropertyTypeHouse, models.TopologyRegular, 32, 250, "4-bed house retaining open-vent system"},
	{"UKS-014", 5, 3, 5, models.PropertyTypeHouse, models.TopologyRegular, 40, 350, "5-bed period property, gravity-fed"},
	{"UKS-015", 6, 4, 7, models.PropertyTypeHouse, models.TopologyRegular, 50, 500, "6-bed period property, maximum capacity"},
}

// conversionScenarios is the proven system-change database.
var conversionScenarios = []ConversionScenario{
	{"CNV-001", 2, 1, 2, models.BoilerClassRegular, models.TopologyCombi, 28, 0, "Small open-vent system replaced by combi"},
	{"CNV-002", 3, 1, 3, models.BoilerClassRegular, models.TopologyCombi, 30, 0, "3-bed regular to combi, cylinder removed"},
	{"CNV-003", 3, 2, 4, models.BoilerClassRegular, models.TopologySystem, 30, 210, "Regular to sealed system, two bathrooms"},
	{"CNV-004", 4, 2, 4, models.BoilerClassRegular, models.TopologySystem, 32, 250, "Regular to sealed system, 4-bed family home"},
	{"CNV-005", 5, 2, 5, models.BoilerClassRegular, models.TopologySystem, 35, 300, "Regular to sealed system, 5-bed house"},
	{"CNV-006", 4, 3, 5, models.BoilerClassRegular, models.TopologyRegular, 35, 300, "Like-for-like regular upgrade, 4-bed"},
	{"CNV-007", 5, 3, 6, models.BoilerClassRegular, models.TopologyRegular, 40, 350, "Like-for-like regular upgrade, 5-bed"},
	{"CNV-008", 2, 1, 2, models.BoilerClassSystem, models.TopologyCombi, 28, 0, "System to combi, small property"},
	{"CNV-009", 3, 2, 3, models.BoilerClassSystem, models.TopologySystem, 30, 210, "Like-for-like system replacement"},
	{"CNV-010", 4, 2, 5, models.BoilerClassSystem, models.TopologySystem, 32, 250, "Like-for-like system, high occupancy"},
}

// scenarioMatchMaxDistance caps how far a reference installation's counts may
// be from the property's before the match is considered meaningless.
const scenarioMatchMaxDistance = 2

// findConversionScenario looks up a proven conversion by exact property
// counts and current boiler class. Returns nil when no scenario matches.
func findConversionScenario(bedrooms, bathrooms, occupants int, class models.BoilerClass) *ConversionScenario {
	for i := range conversionScenarios {
		s := &conversionScenarios[i]
		if s.Bedrooms == bedrooms && s.Bathrooms == bathrooms &&
			s.Occupants == occupants && s.CurrentClass == class {
			return s
		}
	}
	return nil
}

// findBestHeatingScenario finds the closest reference installation for the
// given property and topology. The topology must match exactly; candidates
// are ranked by total attribute distance across the three counts, with an
// exact property-type match breaking ties. Returns nil when nothing is
// within scenarioMatchMaxDistance.
func findBestHeatingScenario(bedrooms, bathrooms, occupants int, propertyType models.PropertyType, topology models.BoilerTopology) *HeatingScenario {
	var best *HeatingScenario
	bestDistance := scenarioMatchMaxDistance + 1

	for i := range heatingScenarios {
		s := &heatingScenarios[i]
		if s.SystemType != topology {
			continue
		}

		distance := abs(s.Bedrooms-bedrooms) + abs(s.Bathrooms-bathrooms) + abs(s.Occupants-occupants)
		if distance > scenarioMatchMaxDistance {
			continue
		}

		if distance < bestDistance {
			best = s
			bestDistance = distance
			continue
		}
		if distance == bestDistance && best != nil &&
			best.PropertyType != propertyType && s.PropertyType == propertyType {
			best = s
		}
	}

	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
