package engine

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"boiler-quote-engine/internal/models"
	"boiler-quote-engine/internal/utils"
)

// Catalog is the pricing data source the engine reads. The engine works from
// a snapshot of these four tables; keyed lookups stay on the concrete
// repositories. *database.CatalogStore satisfies it; tests substitute an
// in-memory implementation.
type Catalog interface {
	GetBoilers(ctx context.Context) ([]models.BoilerOffering, error)
	GetLabourCosts(ctx context.Context) ([]models.LabourCost, error)
	GetSundries(ctx context.Context) ([]models.SundryCost, error)
	GetLocations(ctx context.Context) ([]models.LocationMultiplier, error)
}

// Service computes intelligent quotes from property profiles.
type Service struct {
	catalog Catalog
	logger  *zap.Logger
}

// NewService creates a new quote engine service.
func NewService(catalog Catalog) *Service {
	return &Service{
		catalog: catalog,
		logger:  utils.GetLogger(),
	}
}

// CalculateQuote runs the full quote pipeline for a property profile:
// analysis, system selection, sizing, job classification, pricing and
// recommendations. The same profile always produces the same quote apart
// from the request ID.
//
// Catalog errors never fail the request. Individual fetch failures fall back
// to defaults for that price class; if the entire catalog is unreachable the
// quote is computed from the hardcoded baseline prices and flagged Degraded.
func (s *Service) CalculateQuote(ctx context.Context, profile *models.PropertyProfile) (*models.QuoteResult, error) {
	requestID := uuid.New().String()
	logger := s.logger.With(zap.String("request_id", requestID))

	requirement := Analyze(profile)
	topology := SelectTopology(profile)
	sizing := Size(profile, topology, requirement)
	job := ClassifyJob(profile.CurrentBoilerClass(), topology)

	logger.Info("Property analyzed",
		zap.Int("bedrooms", profile.BedroomCount()),
		zap.Int("bathrooms", profile.BathroomCount()),
		zap.Int("occupants", profile.OccupantCount()),
		zap.Int("heat_load_kw", requirement.HeatLoadKw),
		zap.Int("hot_water_demand_kw", requirement.HotWaterDemandKw),
		zap.String("system_type", string(topology)),
		zap.Int("boiler_kw", sizing.BoilerOutputKw),
		zap.Int("cylinder_l", sizing.CylinderCapacityL),
		zap.String("job_type", job.JobType))

	snapshot, degraded := s.fetchCatalog(ctx, logger)

	in := pricingInput{
		Profile:  profile,
		Topology: topology,
		Sizing:   sizing,
		Job:      job,
		Snapshot: snapshot,
	}
	quotes, breakdown := composePricing(in)
	recommendations := buildRecommendations(in, requirement)

	logger.Info("Quote calculated",
		zap.Int64("standard_total", quotes[0].BasePrice),
		zap.Float64("location_multiplier", breakdown.LocationMultiplier),
		zap.Bool("degraded", degraded))

	return &models.QuoteResult{
		RequestID: requestID,
		Quotes:    quotes,
		Analysis: models.AnalysisSummary{
			RecommendedBoilerSize:  sizing.BoilerOutputKw,
			RecommendedBoilerType:  topology,
			CylinderCapacity:       sizing.CylinderCapacityL,
			HeatLoadKw:             requirement.HeatLoadKw,
			HotWaterDemandKw:       requirement.HotWaterDemandKw,
			SimultaneousUsageScore: requirement.SimultaneousUsageScore,
			PropertyComplexity:     job.Complexity,
			JobType:                job.JobType,
			InstallationMultiplier: job.Multiplier,
		},
		PriceBreakdown:  breakdown,
		Recommendations: recommendations,
		Degraded:        degraded,
	}, nil
}

// fetchCatalog loads the four catalog tables concurrently. A failed fetch
// logs and leaves that table empty so pricing falls back to defaults; the
// degraded flag is set only when every fetch failed.
func (s *Service) fetchCatalog(ctx context.Context, logger *zap.Logger) (*models.CatalogSnapshot, bool) {
	snapshot := &models.CatalogSnapshot{}
	errs := make([]error, 4)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		snapshot.Boilers, errs[0] = s.catalog.GetBoilers(gctx)
		return nil
	})
	g.Go(func() error {
		snapshot.LabourCosts, errs[1] = s.catalog.GetLabourCosts(gctx)
		return nil
	})
	g.Go(func() error {
		snapshot.Sundries, errs[2] = s.catalog.GetSundries(gctx)
		return nil
	})
	g.Go(func() error {
		snapshot.Locations, errs[3] = s.catalog.GetLocations(gctx)
		return nil
	})
	_ = g.Wait()

	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
			logger.Warn("Catalog fetch failed, using defaults", zap.Error(err))
		}
	}

	return snapshot, failed == len(errs)
}

// UnavailableCatalog satisfies Catalog when no database connection exists;
// every call reports the catalog as unavailable so quotes come from the
// degraded baseline pricing.
type UnavailableCatalog struct{}

func (UnavailableCatalog) GetBoilers(ctx context.Context) ([]models.BoilerOffering, error) {
	return nil, models.ErrCatalogUnavailable
}

func (UnavailableCatalog) GetLabourCosts(ctx context.Context) ([]models.LabourCost, error) {
	return nil, models.ErrCatalogUnavailable
}

func (UnavailableCatalog) GetSundries(ctx context.Context) ([]models.SundryCost, error) {
	return nil, models.ErrCatalogUnavailable
}

func (UnavailableCatalog) GetLocations(ctx context.Context) ([]models.LocationMultiplier, error) {
	return nil, models.ErrCatalogUnavailable
}
