package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boiler-quote-engine/internal/models"
)

func testLocations() []models.LocationMultiplier {
	return []models.LocationMultiplier{
		{ID: 1, PostcodePattern: "SW", Area: "South West London", PriceMultiplier: 1.2},
		{ID: 2, PostcodePattern: "SW1", Area: "Central London", PriceMultiplier: 1.3},
		{ID: 3, PostcodePattern: "NE", Area: "Newcastle", PriceMultiplier: 0.9},
		{ID: 4, PostcodePattern: "N", Area: "North London", PriceMultiplier: 1.15},
	}
}

func TestMatchLocationLongestPrefixWins(t *testing.T) {
	loc := MatchLocation(testLocations(), "SW1A 1AA")
	require.NotNil(t, loc)
	assert.Equal(t, "Central London", loc.Area)
	assert.Equal(t, 1.3, loc.PriceMultiplier)

	loc = MatchLocation(testLocations(), "SW19 8UN")
	require.NotNil(t, loc)
	assert.Equal(t, "South West London", loc.Area)
}

func TestMatchLocationDistrictBoundary(t *testing.T) {
	// SW10 through SW20 belong to the SW area, not the SW1 district.
	loc := MatchLocation(testLocations(), "SW10 9XX")
	require.NotNil(t, loc)
	assert.Equal(t, "South West London", loc.Area)

	// A lettered subdistrict still matches SW1.
	loc = MatchLocation(testLocations(), "SW1W 8RE")
	require.NotNil(t, loc)
	assert.Equal(t, "Central London", loc.Area)
}

func TestMatchLocationNormalizesCaseAndSpaces(t *testing.T) {
	loc := MatchLocation(testLocations(), "  sw1a1aa ")
	require.NotNil(t, loc)
	assert.Equal(t, "Central London", loc.Area)
}

func TestMatchLocationAmbiguousSingleLetterPrefix(t *testing.T) {
	// NE1 matches both N and NE; the longer pattern wins.
	loc := MatchLocation(testLocations(), "NE1 4ST")
	require.NotNil(t, loc)
	assert.Equal(t, "Newcastle", loc.Area)

	loc = MatchLocation(testLocations(), "N7 9AB")
	require.NotNil(t, loc)
	assert.Equal(t, "North London", loc.Area)
}

func TestMatchLocationNoMatch(t *testing.T) {
	assert.Nil(t, MatchLocation(testLocations(), "EH1 1AA"))
	assert.Nil(t, MatchLocation(testLocations(), ""))
	assert.Nil(t, MatchLocation(nil, "SW1A 1AA"))
}
