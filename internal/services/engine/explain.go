package engine

import (
	"fmt"

	"boiler-quote-engine/internal/models"
)

// buildRecommendations generates the customer-facing rationale: why this
// system type, why this output, what else would work and what to expect on
// installation day.
func buildRecommendations(in pricingInput, req models.HeatingRequirement) models.Recommendations {
	return models.Recommendations{
		SystemExplanation:  systemExplanation(in.Profile, in.Topology, in.Sizing),
		WhyThisBoiler:      whyThisBoiler(in.Topology, in.Sizing, req),
		AlternativeOptions: alternativeOptions(in.Profile, in.Topology),
		InstallationNotes:  installationNotes(in.Profile, in.Job, in.Sizing),
	}
}

func systemExplanation(profile *models.PropertyProfile, topology models.BoilerTopology, sizing models.SizingResult) string {
	bathrooms := profile.BathroomCount()
	occupants := profile.OccupantCount()

	switch topology {
	case models.TopologySystem:
		return fmt.Sprintf(
			"A system boiler with a %dL hot water cylinder is recommended for your property. "+
				"With %d bathroom(s) and %d occupant(s), stored hot water means everyone can shower at the same time without the water running cold.",
			sizing.CylinderCapacityL, bathrooms, occupants)
	case models.TopologyRegular:
		return fmt.Sprintf(
			"A regular (open-vent) boiler with a %dL cylinder is recommended. "+
				"It works with your existing tanks and pipework, which keeps the installation straightforward in a property of this size.",
			sizing.CylinderCapacityL)
	default:
		return "A combi boiler is recommended for your property. " +
			"It heats water on demand straight from the mains, so there is no cylinder to find space for and no waiting for a tank to reheat."
	}
}

func whyThisBoiler(topology models.BoilerTopology, sizing models.SizingResult, req models.HeatingRequirement) string {
	if topology == models.TopologyCombi {
		return fmt.Sprintf(
			"The %dkW output covers your estimated heat load of %dkW and a peak hot water demand of %dkW, "+
				"with enough headroom to keep shower performance strong on the coldest days.",
			sizing.BoilerOutputKw, req.HeatLoadKw, req.HotWaterDemandKw)
	}
	return fmt.Sprintf(
		"The %dkW output covers your estimated heat load of %dkW, and the %dL cylinder stores enough hot water for your household's peak demand.",
		sizing.BoilerOutputKw, req.HeatLoadKw, sizing.CylinderCapacityL)
}

func alternativeOptions(profile *models.PropertyProfile, topology models.BoilerTopology) []string {
	bathrooms := profile.BathroomCount()

	switch topology {
	case models.TopologyCombi:
		if bathrooms >= 2 {
			return []string{
				"A system boiler with a hot water cylinder would improve simultaneous shower performance, at the cost of cupboard space and a higher installation price.",
			}
		}
		return []string{
			"A system boiler is possible but offers no practical benefit for a property of this size.",
		}
	case models.TopologySystem:
		if bathrooms <= 2 {
			return []string{
				"A high-output combi could serve this property if cylinder space is an issue, though simultaneous hot water use would be limited.",
			}
		}
		return []string{
			"A regular (open-vent) system would also work if you want to keep existing loft tanks.",
		}
	default:
		return []string{
			"A sealed system boiler would remove the loft tanks and improve water pressure, at the cost of a more involved installation.",
		}
	}
}

func installationNotes(profile *models.PropertyProfile, job models.JobComplexity, sizing models.SizingResult) []string {
	notes := []string{
		"Installation carried out by a Gas Safe registered engineer.",
		"Includes a full system flush, magnetic filter and system inhibitor.",
		"The system is commissioned, registered with the manufacturer and notified to building control.",
	}

	if job.Complexity == models.ComplexityComplex {
		notes = append(notes, "This is a full system conversion: allow 2-3 days on site and expect some pipework alterations.")
	} else if job.Complexity == models.ComplexityMedium {
		notes = append(notes, "This installation changes your system type, so allow up to 2 days on site.")
	}

	if sizing.CylinderCapacityL > 0 {
		notes = append(notes, fmt.Sprintf("A %dL unvented cylinder will be installed; it needs roughly an airing-cupboard's worth of space.", sizing.CylinderCapacityL))
	}

	if profile.WantsBoilerMoved() {
		notes = append(notes, "Relocating the boiler will be surveyed and priced separately before work begins.")
	}

	if !profile.DrainIsNearby() {
		notes = append(notes, "A condensate pump is included because there is no gravity drain near the boiler position.")
	}

	if models.ParseCount(profile.ParkingDistance, 0) > freeParkingDistanceMetres {
		notes = append(notes, "An access charge applies for the extended carry distance from parking to the property.")
	}

	if profile.HasPaidParking() {
		notes = append(notes, "This property is in a paid parking area; parking costs are not included. Our engineer will arrange parking with you, either through a visitor permit or by reimbursement of the parking charge.")
	}

	return notes
}
