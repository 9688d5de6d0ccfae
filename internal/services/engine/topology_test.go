package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"boiler-quote-engine/internal/models"
)

func TestSelectTopologyRuleOrder(t *testing.T) {
	tests := []struct {
		name     string
		profile  *models.PropertyProfile
		expected models.BoilerTopology
	}{
		{
			name:     "six bathrooms forces system regardless of anything else",
			profile:  profile("2", "6", "2", "Flat", "Combi"),
			expected: models.TopologySystem,
		},
		{
			name:     "large household forces system",
			profile:  profile("6", "2", "6", "House", "Combi"),
			expected: models.TopologySystem,
		},
		{
			name:     "existing combi in small property stays combi",
			profile:  profile("2", "1", "2", "Flat", "Combi"),
			expected: models.TopologyCombi,
		},
		{
			name:     "existing combi with three bathrooms stays combi",
			profile:  profile("4", "3", "4", "House", "Combi"),
			expected: models.TopologyCombi,
		},
		{
			name:     "single bathroom defaults to combi",
			profile:  profile("3", "1", "3", "House", "Regular"),
			expected: models.TopologyCombi,
		},
		{
			name:     "single bathroom but very large household goes system",
			profile:  profile("5", "1", "5", "House", "Regular"),
			expected: models.TopologySystem,
		},
		{
			name:     "two bathrooms with high occupancy goes system",
			profile:  profile("4", "2", "4", "House", "Regular"),
			expected: models.TopologySystem,
		},
		{
			name:     "two bathrooms with low occupancy stays combi",
			profile:  profile("2", "2", "2", "House", "Combi"),
			expected: models.TopologyCombi,
		},
		{
			name:     "regular boiler with multiple bathrooms keeps open vent",
			profile:  profile("5", "3", "5", "House", "Conventional"),
			expected: models.TopologyRegular,
		},
		{
			name:     "large period property without known boiler goes regular",
			profile:  profile("5", "3", "4", "House", ""),
			expected: models.TopologyRegular,
		},
		{
			name:     "system boiler household falls through to default combi",
			profile:  profile("4", "3", "5", "House", "System"),
			expected: models.TopologyCombi,
		},
		{
			name:     "nothing matches falls to default combi",
			profile:  profile("3", "3", "2", "Flat", ""),
			expected: models.TopologyCombi,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SelectTopology(tt.profile))
		})
	}
}

func TestSelectTopologyBathroomCeilingBeatsCombiLoyalty(t *testing.T) {
	// The existing-combi rules would keep this on a combi, but six bathrooms
	// is checked first.
	p := profile("3", "6", "3", "House", "Combi")
	assert.Equal(t, models.TopologySystem, SelectTopology(p))
}
