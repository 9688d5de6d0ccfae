package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"boiler-quote-engine/internal/models"
)

func parkingProfile(situation string) *models.PropertyProfile {
	return &models.PropertyProfile{
		Bedrooms:         "2",
		Bathrooms:        "1",
		Occupants:        "2",
		PropertyType:     "Flat",
		ParkingSituation: situation,
	}
}

func hasNoteContaining(notes []string, substr string) bool {
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n), substr) {
			return true
		}
	}
	return false
}

func TestInstallationNotesPaidParking(t *testing.T) {
	job := models.JobComplexity{Complexity: models.ComplexitySimple, Multiplier: 1.0, JobType: "Combi Boiler Replacement (Like-for-Like)"}

	notes := installationNotes(parkingProfile("Paid parking / permit holders only"), job, models.SizingResult{BoilerOutputKw: 24})
	assert.True(t, hasNoteContaining(notes, "paid parking"), "expected a paid parking arrangements note")

	notes = installationNotes(parkingProfile("Free parking outside"), job, models.SizingResult{BoilerOutputKw: 24})
	assert.False(t, hasNoteContaining(notes, "paid parking"))
}
