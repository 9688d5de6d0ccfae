package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boiler-quote-engine/internal/models"
)

// memoryCatalog serves a fixed snapshot, optionally failing every call.
type memoryCatalog struct {
	snapshot *models.CatalogSnapshot
	err      error
}

func (m *memoryCatalog) GetBoilers(ctx context.Context) ([]models.BoilerOffering, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.snapshot.Boilers, nil
}

func (m *memoryCatalog) GetLabourCosts(ctx context.Context) ([]models.LabourCost, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.snapshot.LabourCosts, nil
}

func (m *memoryCatalog) GetSundries(ctx context.Context) ([]models.SundryCost, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.snapshot.Sundries, nil
}

func (m *memoryCatalog) GetLocations(ctx context.Context) ([]models.LocationMultiplier, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.snapshot.Locations, nil
}

func TestCalculateQuoteFullPipeline(t *testing.T) {
	svc := NewService(&memoryCatalog{snapshot: testSnapshot()})

	p := profile("3", "2", "3", "House", "Combi")
	p.Postcode = "SW1A 1AA"

	result, err := svc.CalculateQuote(context.Background(), p)
	require.NoError(t, err)
	require.Len(t, result.Quotes, 3)

	assert.NotEmpty(t, result.RequestID)
	assert.False(t, result.Degraded)

	assert.Equal(t, models.TopologyCombi, result.Analysis.RecommendedBoilerType)
	assert.Equal(t, 30, result.Analysis.RecommendedBoilerSize)
	assert.Equal(t, 0, result.Analysis.CylinderCapacity)
	assert.Equal(t, models.ComplexitySimple, result.Analysis.PropertyComplexity)
	assert.Equal(t, "Combi Boiler Replacement (Like-for-Like)", result.Analysis.JobType)

	assert.Equal(t, result.PriceBreakdown.Subtotal+result.PriceBreakdown.VatAmount, result.PriceBreakdown.TotalPrice)
	assert.NotEmpty(t, result.Recommendations.SystemExplanation)
	assert.NotEmpty(t, result.Recommendations.InstallationNotes)
}

func TestCalculateQuoteDeterministicApartFromRequestID(t *testing.T) {
	svc := NewService(&memoryCatalog{snapshot: testSnapshot()})

	p := profile("4", "2", "4", "House", "Regular")
	p.Postcode = "SW1A 1AA"

	first, err := svc.CalculateQuote(context.Background(), p)
	require.NoError(t, err)
	second, err := svc.CalculateQuote(context.Background(), p)
	require.NoError(t, err)

	assert.NotEqual(t, first.RequestID, second.RequestID)

	first.RequestID = ""
	second.RequestID = ""
	assert.Equal(t, first, second)
}

func TestCalculateQuoteDegradesWhenCatalogUnreachable(t *testing.T) {
	svc := NewService(&memoryCatalog{err: errors.New("connection refused")})

	p := profile("2", "1", "2", "Flat", "Combi")

	result, err := svc.CalculateQuote(context.Background(), p)
	require.NoError(t, err)

	assert.True(t, result.Degraded)
	require.Len(t, result.Quotes, 3)

	// Baseline pricing still produces a complete, internally consistent quote.
	assert.Equal(t, int64(360000), result.Quotes[0].BasePrice)
	assert.Equal(t, result.PriceBreakdown.Subtotal+result.PriceBreakdown.VatAmount, result.PriceBreakdown.TotalPrice)

	recommended := 0
	for _, q := range result.Quotes {
		if q.IsRecommended {
			recommended++
			assert.Equal(t, models.QuoteTierStandard, q.Tier)
		}
	}
	assert.Equal(t, 1, recommended)
}

func TestCalculateQuoteOnlyStandardIsRecommended(t *testing.T) {
	svc := NewService(&memoryCatalog{snapshot: testSnapshot()})

	result, err := svc.CalculateQuote(context.Background(), profile("1", "1", "1", "Flat", ""))
	require.NoError(t, err)

	assert.True(t, result.Quotes[0].IsRecommended)
	assert.False(t, result.Quotes[1].IsRecommended)
	assert.False(t, result.Quotes[2].IsRecommended)
}
