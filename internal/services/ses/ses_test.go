package ses

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boiler-quote-engine/internal/models"
)

func TestFormatPence(t *testing.T) {
	tests := []struct {
		pence    int64
		expected string
	}{
		{0, "£0.00"},
		{99, "£0.99"},
		{100, "£1.00"},
		{358800, "£3,588.00"},
		{429050, "£4,290.50"},
		{123456789, "£1,234,567.89"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatPence(tt.pence), "pence=%d", tt.pence)
	}
}

func TestBuildQuoteEmailParams(t *testing.T) {
	result := &models.QuoteResult{
		Quotes: []models.QuoteOption{
			{Tier: models.QuoteTierStandard, BoilerMake: "Baxi", BoilerModel: "830", Warranty: "7 Years", BasePrice: 358800, IsRecommended: true},
			{Tier: models.QuoteTierPremium, BoilerMake: "Ideal", BoilerModel: "Logic Max Combi2 C28", Warranty: "10 Years", BasePrice: 403200},
		},
		PriceBreakdown: models.PriceBreakdown{TotalPrice: 358800},
	}

	params := BuildQuoteEmailParams("Jo Bloggs", "jo@example.com", "BQ-1A2B3C4D", result)

	require.Len(t, params.Options, 2)
	assert.Equal(t, "Standard", params.Options[0].Tier)
	assert.Equal(t, "Baxi 830", params.Options[0].Boiler)
	assert.Equal(t, "£3,588.00", params.Options[0].PricePounds)
	assert.True(t, params.Options[0].Recommended)
	assert.False(t, params.Options[1].Recommended)
	assert.Equal(t, "£3,588.00", params.TotalPounds)
	assert.Equal(t, 30, params.ValidDays)
}

func TestRenderQuoteSummary(t *testing.T) {
	s := &Service{}
	params := QuoteEmailParams{
		CustomerName: "Jo Bloggs",
		QuoteRef:     "BQ-1A2B3C4D",
		Options: []QuoteOptionInfo{
			{Tier: "Standard", Boiler: "Baxi 830", Warranty: "7 Years", PricePounds: "£3,588.00", Recommended: true},
		},
		ValidDays: 30,
	}

	html, err := s.renderQuoteSummaryHTML(params)
	require.NoError(t, err)
	assert.Contains(t, html, "BQ-1A2B3C4D")
	assert.Contains(t, html, "Baxi 830")
	assert.Contains(t, html, "£3,588.00")
	assert.Contains(t, html, "Recommended")

	text := s.renderQuoteSummaryText(params)
	assert.True(t, strings.Contains(text, "Jo Bloggs"))
	assert.True(t, strings.Contains(text, "BQ-1A2B3C4D"))
	assert.True(t, strings.Contains(text, "(Recommended)"))
}
