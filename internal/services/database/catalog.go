package database

import (
	"context"

	"boiler-quote-engine/internal/models"
)

// CatalogStore bundles the catalog repositories behind the read-only lookup
// surface the quote engine consumes.
type CatalogStore struct {
	boilers   *BoilerRepository
	labour    *LabourCostRepository
	sundries  *SundryRepository
	locations *LocationRepository
}

// NewCatalogStore creates a catalog store over an open database connection.
func NewCatalogStore(db *DB) *CatalogStore {
	return &CatalogStore{
		boilers:   NewBoilerRepository(db),
		labour:    NewLabourCostRepository(db),
		sundries:  NewSundryRepository(db),
		locations: NewLocationRepository(db),
	}
}

// GetBoilers returns all active boiler offerings.
func (c *CatalogStore) GetBoilers(ctx context.Context) ([]models.BoilerOffering, error) {
	return c.boilers.GetAllActive(ctx)
}

// GetLabourCosts returns all labour cost entries.
func (c *CatalogStore) GetLabourCosts(ctx context.Context) ([]models.LabourCost, error) {
	return c.labour.GetAll(ctx)
}

// GetSundries returns all sundry cost entries.
func (c *CatalogStore) GetSundries(ctx context.Context) ([]models.SundryCost, error) {
	return c.sundries.GetAll(ctx)
}

// GetLocations returns all location multiplier entries.
func (c *CatalogStore) GetLocations(ctx context.Context) ([]models.LocationMultiplier, error) {
	return c.locations.GetAll(ctx)
}

// GetLocationByPostcode returns the multiplier matching a postcode, or nil.
func (c *CatalogStore) GetLocationByPostcode(ctx context.Context, postcode string) (*models.LocationMultiplier, error) {
	return c.locations.GetByPostcode(ctx, postcode)
}

// GetLabourCostByType returns the labour cost for a job type and tier, or nil.
func (c *CatalogStore) GetLabourCostByType(ctx context.Context, jobType string, tier models.LabourTier) (*models.LabourCost, error) {
	return c.labour.GetByType(ctx, jobType, tier)
}
