package engine

import (
	"fmt"
	"math"

	"boiler-quote-engine/internal/models"
	"boiler-quote-engine/internal/services/database"
)

const vatRatePercent = 20

// Labour fallbacks in pence, used when the catalog has no rate for the job.
const (
	defaultStandardLabour int64 = 135000
	defaultPremiumLabour  int64 = 160000
)

// tierBoilers is the boiler chosen for each quote tier.
type tierBoilers struct {
	Standard models.BoilerOffering
	Premium  models.BoilerOffering
	Luxury   models.BoilerOffering
}

// pricingInput bundles everything the pricing composer needs. The snapshot is
// read-only; pricing never talks to the catalog directly.
type pricingInput struct {
	Profile  *models.PropertyProfile
	Topology models.BoilerTopology
	Sizing   models.SizingResult
	Job      models.JobComplexity
	Snapshot *models.CatalogSnapshot
}

// composePricing builds the three tiered quote options and the itemized
// breakdown for the Standard tier. All arithmetic is in integer pence; the
// only floating-point steps are the labour multiplier and the location
// multiplier, rounded half-up once each.
func composePricing(in pricingInput) ([]models.QuoteOption, models.PriceBreakdown) {
	boilers := selectTierBoilers(in.Snapshot.Boilers, in.Topology, in.Sizing.BoilerOutputKw)

	cylinderPrice := CylinderPrice(in.Sizing.CylinderCapacityL)
	flueMetres := models.ParseCount(in.Profile.FlueExtension, 0)
	fluePrice := FlueExtensionPrice(flueMetres)
	parkingMetres := models.ParseCount(in.Profile.ParkingDistance, 0)
	parkingFee := ParkingFee(parkingMetres)

	var condensatePrice int64
	if !in.Profile.DrainIsNearby() {
		condensatePrice = condensatePumpPrice
	}

	var thermostatPrice int64
	if in.Profile.WantsThermostatUpgrade() {
		thermostatPrice = thermostatUpgradePrice
	}

	locMult := 1.0
	if loc := database.MatchLocation(in.Snapshot.Locations, in.Profile.Postcode); loc != nil {
		locMult = loc.PriceMultiplier
	}

	standardLabour := applyLabourMultipliers(
		labourBaseRate(in.Snapshot.LabourCosts, in.Job.JobType, models.LabourTierStandard, defaultStandardLabour),
		in.Job.Multiplier, locMult)
	premiumLabour := applyLabourMultipliers(
		labourBaseRate(in.Snapshot.LabourCosts, in.Job.JobType, models.LabourTierPremium, defaultPremiumLabour),
		in.Job.Multiplier, locMult)

	// Sundries are a fixed professional bundle, never looked up: seed data
	// changes must not silently move every quote.
	baseSundries := sundryBundlePrice

	addOns := cylinderPrice + fluePrice + condensatePrice + thermostatPrice + parkingFee

	quote := func(tier models.QuoteTier, boiler models.BoilerOffering, labour, sundries int64) (models.QuoteOption, int64) {
		subtotal := boiler.SupplyPrice + labour + sundries + addOns
		total := subtotal + vatAmount(subtotal)

		return models.QuoteOption{
			Tier:          tier,
			BoilerMake:    boiler.Make,
			BoilerModel:   boiler.Model,
			BoilerType:    in.Topology,
			Warranty:      fmt.Sprintf("%d Years", boiler.WarrantyYears),
			BasePrice:     total,
			IsRecommended: tier == models.QuoteTierStandard,
			KwOutput:      boilerOutputKw(boiler, in.Sizing.BoilerOutputKw),
			FlowRateLpm:   boilerFlowRate(boiler, in.Topology, tier),
			Efficiency:    boilerEfficiency(boiler),
		}, subtotal
	}

	standard, standardSubtotal := quote(models.QuoteTierStandard, boilers.Standard, standardLabour, baseSundries)
	premium, _ := quote(models.QuoteTierPremium, boilers.Premium, premiumLabour, baseSundries)
	luxury, _ := quote(models.QuoteTierLuxury, boilers.Luxury, premiumLabour, baseSundries+smartThermostatPrice)

	breakdown := models.PriceBreakdown{
		BoilerPrice:         boilers.Standard.SupplyPrice,
		LabourPrice:         standardLabour,
		CylinderPrice:       cylinderPrice,
		SundryPrice:         baseSundries,
		FlueExtensionPrice:  fluePrice,
		CondensatePumpPrice: condensatePrice,
		ThermostatPrice:     thermostatPrice,
		ParkingFee:          parkingFee,
		AccessFee:           0,
		LocationMultiplier:  locMult,
		Subtotal:            standardSubtotal,
		VatAmount:           vatAmount(standardSubtotal),
		TotalPrice:          standardSubtotal + vatAmount(standardSubtotal),
	}
	breakdown.Components = buildComponents(boilers.Standard, breakdown, flueMetres)

	return []models.QuoteOption{standard, premium, luxury}, breakdown
}

// vatAmount computes VAT on a pence subtotal, rounding half-up.
func vatAmount(subtotal int64) int64 {
	return (subtotal*vatRatePercent + 50) / 100
}

// applyLabourMultipliers applies the job complexity and location multipliers
// to a base labour rate, rounding half-up to whole pence.
func applyLabourMultipliers(base int64, jobMultiplier, locationMultiplier float64) int64 {
	return int64(math.Floor(float64(base)*jobMultiplier*locationMultiplier + 0.5))
}

// labourBaseRate finds the catalog labour rate for a job type and tier,
// falling back to the default when the catalog has no entry.
func labourBaseRate(costs []models.LabourCost, jobType string, tier models.LabourTier, fallback int64) int64 {
	for _, c := range costs {
		if c.JobType == jobType && c.Tier == tier {
			return c.Price
		}
	}
	return fallback
}

// selectTierBoilers picks one boiler per quote tier from the catalog,
// filtered by system type and DHW output tolerance around the recommended
// size. Combi boilers may only size up (undersized DHW means cold showers);
// System and Regular boilers get a small band either side because the
// cylinder covers peak demand.
func selectTierBoilers(catalog []models.BoilerOffering, topology models.BoilerTopology, sizeKw int) tierBoilers {
	var candidates []models.BoilerOffering
	for _, b := range catalog {
		if !b.IsActive || b.BoilerType != topology {
			continue
		}
		if withinSizeTolerance(b.DhwKw, sizeKw, topology) {
			candidates = append(candidates, b)
		}
	}

	// No size matches: relax to any active boiler of the right type rather
	// than returning nothing.
	if len(candidates) == 0 {
		for _, b := range catalog {
			if b.IsActive && b.BoilerType == topology {
				candidates = append(candidates, b)
			}
		}
	}

	var budget, mid, premium []models.BoilerOffering
	for _, b := range candidates {
		switch b.Tier {
		case models.TierBudget:
			budget = append(budget, b)
		case models.TierMidRange:
			mid = append(mid, b)
		case models.TierPremium:
			premium = append(premium, b)
		}
	}

	pick := func(preferred []models.BoilerOffering, fallbacks ...[]models.BoilerOffering) (models.BoilerOffering, bool) {
		if len(preferred) > 0 {
			return preferred[0], true
		}
		for _, fb := range fallbacks {
			if len(fb) > 0 {
				return fb[0], true
			}
		}
		if len(candidates) > 0 {
			return candidates[0], true
		}
		return models.BoilerOffering{}, false
	}

	result := tierBoilers{
		Standard: defaultBoiler(models.QuoteTierStandard, topology),
		Premium:  defaultBoiler(models.QuoteTierPremium, topology),
		Luxury:   defaultBoiler(models.QuoteTierLuxury, topology),
	}
	if b, ok := pick(budget, mid); ok {
		result.Standard = b
	}
	if b, ok := pick(mid, premium); ok {
		result.Premium = b
	}
	if b, ok := pick(premium); ok {
		result.Luxury = b
	}
	return result
}

// withinSizeTolerance reports whether a boiler's DHW output suits the
// recommended size for the given system type.
func withinSizeTolerance(dhwKw, sizeKw int, topology models.BoilerTopology) bool {
	if topology == models.TopologyCombi {
		return dhwKw >= sizeKw && dhwKw <= sizeKw+6
	}
	return dhwKw >= sizeKw-3 && dhwKw <= sizeKw+5
}

// defaultBoiler is the hardcoded fallback offering per tier, used when the
// catalog yields nothing usable. FlowRateLpm is left zero so the
// topology-aware fallback in boilerFlowRate applies.
func defaultBoiler(tier models.QuoteTier, topology models.BoilerTopology) models.BoilerOffering {
	switch tier {
	case models.QuoteTierPremium:
		return models.BoilerOffering{
			Make:             "Ideal",
			Model:            "Logic Max Combi2 C28",
			BoilerType:       topology,
			Tier:             models.TierMidRange,
			DhwKw:            28,
			SupplyPrice:      150000,
			WarrantyYears:    10,
			FlowRateLpm:      0,
			EfficiencyRating: "A",
			IsActive:         true,
		}
	case models.QuoteTierLuxury:
		return models.BoilerOffering{
			Make:             "Vaillant",
			Model:            "EcoTec Pro 32kW",
			BoilerType:       topology,
			Tier:             models.TierPremium,
			DhwKw:            32,
			SupplyPrice:      180000,
			WarrantyYears:    12,
			FlowRateLpm:      0,
			EfficiencyRating: "A",
			IsActive:         true,
		}
	default:
		return models.BoilerOffering{
			Make:             "Baxi",
			Model:            "800 Combi 2 24kW",
			BoilerType:       topology,
			Tier:             models.TierBudget,
			DhwKw:            24,
			SupplyPrice:      120000,
			WarrantyYears:    10,
			FlowRateLpm:      0,
			EfficiencyRating: "A",
			IsActive:         true,
		}
	}
}

func boilerOutputKw(b models.BoilerOffering, recommendedKw int) int {
	if b.DhwKw > 0 {
		return b.DhwKw
	}
	return recommendedKw
}

func boilerFlowRate(b models.BoilerOffering, topology models.BoilerTopology, tier models.QuoteTier) int {
	if b.FlowRateLpm > 0 {
		return b.FlowRateLpm
	}

	// Cylinder-fed systems deliver higher flow than the boiler alone.
	base := map[models.QuoteTier]int{
		models.QuoteTierStandard: 12,
		models.QuoteTierPremium:  14,
		models.QuoteTierLuxury:   16,
	}[tier]
	if topology != models.TopologyCombi {
		base += 8
	}
	return base
}

func boilerEfficiency(b models.BoilerOffering) string {
	if b.EfficiencyRating != "" {
		return b.EfficiencyRating
	}
	return "A"
}

// buildComponents itemizes every charged line of the Standard-tier quote.
// Zero-value lines are omitted; the sum of component totals always equals
// the subtotal.
func buildComponents(boiler models.BoilerOffering, b models.PriceBreakdown, flueMetres int) []models.QuoteComponent {
	components := []models.QuoteComponent{
		{
			Name:        "Boiler",
			Description: fmt.Sprintf("%s %s (supply only)", boiler.Make, boiler.Model),
			Quantity:    1,
			UnitPrice:   b.BoilerPrice,
			TotalPrice:  b.BoilerPrice,
		},
		{
			Name:        "Installation Labour",
			Description: "Full installation by Gas Safe registered engineer",
			Quantity:    1,
			UnitPrice:   b.LabourPrice,
			TotalPrice:  b.LabourPrice,
		},
		{
			Name:        "Sundries",
			Description: "System flush, magnetic filter, inhibitor and flue parts",
			Quantity:    1,
			UnitPrice:   b.SundryPrice,
			TotalPrice:  b.SundryPrice,
		},
	}

	if b.CylinderPrice > 0 {
		components = append(components, models.QuoteComponent{
			Name:        "Hot Water Cylinder",
			Description: "Unvented cylinder, supplied and fitted",
			Quantity:    1,
			UnitPrice:   b.CylinderPrice,
			TotalPrice:  b.CylinderPrice,
		})
	}
	if b.FlueExtensionPrice > 0 {
		components = append(components, models.QuoteComponent{
			Name:        "Flue Extension",
			Description: fmt.Sprintf("Flue extension, %dm", flueMetres),
			Quantity:    flueMetres,
			UnitPrice:   flueExtensionPricePerMetre,
			TotalPrice:  b.FlueExtensionPrice,
		})
	}
	if b.CondensatePumpPrice > 0 {
		components = append(components, models.QuoteComponent{
			Name:        "Condensate Pump",
			Description: "Condensate pump for installations without a nearby drain",
			Quantity:    1,
			UnitPrice:   b.CondensatePumpPrice,
			TotalPrice:  b.CondensatePumpPrice,
		})
	}
	if b.ThermostatPrice > 0 {
		components = append(components, models.QuoteComponent{
			Name:        "Thermostat Upgrade",
			Description: "Wireless programmable room thermostat",
			Quantity:    1,
			UnitPrice:   b.ThermostatPrice,
			TotalPrice:  b.ThermostatPrice,
		})
	}
	if b.ParkingFee > 0 {
		components = append(components, models.QuoteComponent{
			Name:        "Access / Parking",
			Description: "Extended carry distance from parking to property",
			Quantity:    1,
			UnitPrice:   b.ParkingFee,
			TotalPrice:  b.ParkingFee,
		})
	}

	return components
}
