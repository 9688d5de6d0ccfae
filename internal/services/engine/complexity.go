package engine

import (
	"boiler-quote-engine/internal/models"
)

// ClassifyJob maps the current boiler class and the recommended topology to
// an installation complexity tier, a labour multiplier and a customer-facing
// job type description.
func ClassifyJob(currentClass models.BoilerClass, topology models.BoilerTopology) models.JobComplexity {
	switch {
	case currentClass == models.BoilerClassCombi && topology == models.TopologyCombi:
		return models.JobComplexity{
			Complexity: models.ComplexitySimple,
			Multiplier: 1.0,
			JobType:    "Combi Boiler Replacement (Like-for-Like)",
		}
	case currentClass == models.BoilerClassSystem && topology == models.TopologySystem:
		return models.JobComplexity{
			Complexity: models.ComplexitySimple,
			Multiplier: 1.0,
			JobType:    "System Boiler Replacement (Like-for-Like)",
		}
	case currentClass == models.BoilerClassRegular && topology == models.TopologyRegular:
		return models.JobComplexity{
			Complexity: models.ComplexitySimple,
			Multiplier: 1.0,
			JobType:    "Regular Boiler Replacement (Like-for-Like)",
		}
	case currentClass == models.BoilerClassCombi && topology == models.TopologySystem:
		// New cylinder, pipework rerouted to the airing cupboard.
		return models.JobComplexity{
			Complexity: models.ComplexityMedium,
			Multiplier: 1.3,
			JobType:    "Combi to System Boiler Conversion",
		}
	case currentClass == models.BoilerClassSystem && topology == models.TopologyCombi:
		// Cylinder stripped out, DHW moved to mains pressure.
		return models.JobComplexity{
			Complexity: models.ComplexityMedium,
			Multiplier: 1.3,
			JobType:    "System to Combi Boiler Conversion",
		}
	case currentClass == models.BoilerClassRegular && topology == models.TopologyCombi:
		// Tanks and cylinder removed, full system flush and rerouting.
		return models.JobComplexity{
			Complexity: models.ComplexityComplex,
			Multiplier: 1.7,
			JobType:    "Regular to Combi Boiler Conversion",
		}
	case currentClass == models.BoilerClassRegular && topology == models.TopologySystem:
		return models.JobComplexity{
			Complexity: models.ComplexityMedium,
			Multiplier: 1.2,
			JobType:    "Regular to System Boiler Conversion",
		}
	default:
		// Unknown current system: price conservatively, confirm on survey.
		return models.JobComplexity{
			Complexity: models.ComplexityMedium,
			Multiplier: 1.4,
			JobType:    "Boiler Replacement (Survey Required)",
		}
	}
}
