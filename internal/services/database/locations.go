package database

import (
	"context"
	"fmt"
	"strings"

	"boiler-quote-engine/internal/models"
)

// LocationRepository handles postcode price-multiplier database operations.
type LocationRepository struct {
	db *DB
}

// NewLocationRepository creates a new location repository.
func NewLocationRepository(db *DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// GetAll retrieves all location multiplier entries.
func (r *LocationRepository) GetAll(ctx context.Context) ([]models.LocationMultiplier, error) {
	query := `
		SELECT id, postcode_pattern, area, price_multiplier
		FROM location_multipliers
		ORDER BY postcode_pattern`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query location multipliers: %w", err)
	}
	defer rows.Close()

	var locations []models.LocationMultiplier
	for rows.Next() {
		var l models.LocationMultiplier
		if err := rows.Scan(&l.ID, &l.PostcodePattern, &l.Area, &l.PriceMultiplier); err != nil {
			return nil, fmt.Errorf("failed to scan location multiplier: %w", err)
		}
		locations = append(locations, l)
	}

	return locations, nil
}

// GetByPostcode retrieves the multiplier whose pattern prefixes the given
// postcode, or nil when no pattern matches. Longer patterns win so that
// "SW1" beats "SW" for postcode "SW1A 1AA".
func (r *LocationRepository) GetByPostcode(ctx context.Context, postcode string) (*models.LocationMultiplier, error) {
	locations, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return MatchLocation(locations, postcode), nil
}

// MatchLocation finds the best location multiplier for a postcode from an
// already-fetched list. Matching is case-insensitive prefix match on the
// normalized postcode; the longest matching pattern wins. A pattern naming a
// full district ("SW1") only matches that district: it must not swallow
// "SW19", so a pattern ending in a digit is rejected when the next postcode
// character is also a digit.
func MatchLocation(locations []models.LocationMultiplier, postcode string) *models.LocationMultiplier {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(postcode), " ", ""))
	if normalized == "" {
		return nil
	}

	var best *models.LocationMultiplier
	for i := range locations {
		pattern := strings.ToUpper(strings.ReplaceAll(locations[i].PostcodePattern, " ", ""))
		if pattern == "" || !strings.HasPrefix(normalized, pattern) {
			continue
		}
		if crossesDistrictBoundary(pattern, normalized) {
			continue
		}
		if best == nil || len(pattern) > len(strings.ReplaceAll(best.PostcodePattern, " ", "")) {
			best = &locations[i]
		}
	}
	return best
}

// crossesDistrictBoundary reports whether a pattern ending in a district
// number continues into a longer district number in the postcode ("SW1"
// against "SW198UN").
func crossesDistrictBoundary(pattern, postcode string) bool {
	if len(postcode) <= len(pattern) {
		return false
	}
	last := pattern[len(pattern)-1]
	next := postcode[len(pattern)]
	return last >= '0' && last <= '9' && next >= '0' && next <= '9'
}
