package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"boiler-quote-engine/internal/models"
)

func TestClassifyJobLikeForLike(t *testing.T) {
	tests := []struct {
		class    models.BoilerClass
		topology models.BoilerTopology
		jobType  string
	}{
		{models.BoilerClassCombi, models.TopologyCombi, "Combi Boiler Replacement (Like-for-Like)"},
		{models.BoilerClassSystem, models.TopologySystem, "System Boiler Replacement (Like-for-Like)"},
		{models.BoilerClassRegular, models.TopologyRegular, "Regular Boiler Replacement (Like-for-Like)"},
	}

	for _, tt := range tests {
		job := ClassifyJob(tt.class, tt.topology)
		assert.Equal(t, models.ComplexitySimple, job.Complexity)
		assert.Equal(t, 1.0, job.Multiplier)
		assert.Equal(t, tt.jobType, job.JobType)
	}
}

func TestClassifyJobConversions(t *testing.T) {
	tests := []struct {
		class      models.BoilerClass
		topology   models.BoilerTopology
		complexity models.ComplexityTier
		multiplier float64
	}{
		{models.BoilerClassCombi, models.TopologySystem, models.ComplexityMedium, 1.3},
		{models.BoilerClassSystem, models.TopologyCombi, models.ComplexityMedium, 1.3},
		{models.BoilerClassRegular, models.TopologySystem, models.ComplexityMedium, 1.2},
		{models.BoilerClassRegular, models.TopologyCombi, models.ComplexityComplex, 1.7},
	}

	for _, tt := range tests {
		job := ClassifyJob(tt.class, tt.topology)
		assert.Equal(t, tt.complexity, job.Complexity, "%s -> %s", tt.class, tt.topology)
		assert.Equal(t, tt.multiplier, job.Multiplier, "%s -> %s", tt.class, tt.topology)
	}
}

func TestClassifyJobUnknownCurrentSystem(t *testing.T) {
	for _, topology := range []models.BoilerTopology{
		models.TopologyCombi, models.TopologySystem, models.TopologyRegular,
	} {
		job := ClassifyJob(models.BoilerClassUnknown, topology)
		assert.Equal(t, models.ComplexityMedium, job.Complexity)
		assert.Equal(t, 1.4, job.Multiplier)
		assert.Equal(t, "Boiler Replacement (Survey Required)", job.JobType)
	}
}

func TestClassifyJobRegularToCombiIsHardest(t *testing.T) {
	hardest := ClassifyJob(models.BoilerClassRegular, models.TopologyCombi)

	for _, class := range []models.BoilerClass{
		models.BoilerClassCombi, models.BoilerClassSystem, models.BoilerClassRegular,
	} {
		for _, topology := range []models.BoilerTopology{
			models.TopologyCombi, models.TopologySystem, models.TopologyRegular,
		} {
			job := ClassifyJob(class, topology)
			assert.LessOrEqual(t, job.Multiplier, hardest.Multiplier)
		}
	}
}
