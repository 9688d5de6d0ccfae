package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boiler-quote-engine/internal/models"
)

func testSnapshot() *models.CatalogSnapshot {
	return &models.CatalogSnapshot{
		Boilers: []models.BoilerOffering{
			{ID: 1, Make: "Baxi", Model: "830", BoilerType: models.TopologyCombi, Tier: models.TierBudget, DhwKw: 30, SupplyPrice: 98000, WarrantyYears: 7, FlowRateLpm: 12, EfficiencyRating: "A", IsActive: true},
			{ID: 2, Make: "Worcester Bosch", Model: "Greenstar 4000 30kW", BoilerType: models.TopologyCombi, Tier: models.TierMidRange, DhwKw: 30, SupplyPrice: 135000, WarrantyYears: 10, FlowRateLpm: 12, EfficiencyRating: "A", IsActive: true},
			{ID: 3, Make: "Vaillant", Model: "EcoTec Plus 832", BoilerType: models.TopologyCombi, Tier: models.TierPremium, DhwKw: 32, SupplyPrice: 165000, WarrantyYears: 12, FlowRateLpm: 13, EfficiencyRating: "A", IsActive: true},
			{ID: 4, Make: "Retired", Model: "Old 30kW", BoilerType: models.TopologyCombi, Tier: models.TierBudget, DhwKw: 30, SupplyPrice: 50000, WarrantyYears: 2, IsActive: false},
		},
		LabourCosts: []models.LabourCost{
			{JobType: "Combi Boiler Replacement (Like-for-Like)", Tier: models.LabourTierStandard, Price: 120000},
			{JobType: "Combi Boiler Replacement (Like-for-Like)", Tier: models.LabourTierPremium, Price: 150000},
		},
		Sundries: []models.SundryCost{
			{Name: "System flush", Price: 15000},
			{Name: "Magnetic filter", Price: 12000},
			{Name: "Inhibitor and cleaner", Price: 10000},
			{Name: "Flue parts", Price: 8000},
		},
		Locations: []models.LocationMultiplier{
			{PostcodePattern: "SW", Area: "South West London", PriceMultiplier: 1.2},
			{PostcodePattern: "SW1", Area: "Central London", PriceMultiplier: 1.3},
		},
	}
}

func pricingFixture(p *models.PropertyProfile, snapshot *models.CatalogSnapshot) pricingInput {
	req := Analyze(p)
	topology := SelectTopology(p)
	return pricingInput{
		Profile:  p,
		Topology: topology,
		Sizing:   Size(p, topology, req),
		Job:      ClassifyJob(p.CurrentBoilerClass(), topology),
		Snapshot: snapshot,
	}
}

func TestComposePricingThreeTiers(t *testing.T) {
	p := profile("3", "2", "3", "House", "Combi")
	p.Postcode = "SW1A 1AA"

	quotes, breakdown := composePricing(pricingFixture(p, testSnapshot()))
	require.Len(t, quotes, 3)

	standard, premium, luxury := quotes[0], quotes[1], quotes[2]

	assert.Equal(t, models.QuoteTierStandard, standard.Tier)
	assert.Equal(t, "Baxi", standard.BoilerMake)
	assert.True(t, standard.IsRecommended)

	assert.Equal(t, models.QuoteTierPremium, premium.Tier)
	assert.Equal(t, "Worcester Bosch", premium.BoilerMake)
	assert.False(t, premium.IsRecommended)

	assert.Equal(t, models.QuoteTierLuxury, luxury.Tier)
	assert.Equal(t, "Vaillant", luxury.BoilerMake)
	assert.False(t, luxury.IsRecommended)

	// Standard labour 120000 at 1.0 job multiplier and 1.3 central London
	// uplift; Premium and Luxury carry the 150000 premium labour rate.
	assert.Equal(t, int64(156000), breakdown.LabourPrice)
	assert.Equal(t, 1.3, breakdown.LocationMultiplier)

	assert.Equal(t, int64(358800), standard.BasePrice)
	assert.Equal(t, int64(450000), premium.BasePrice)
	assert.Equal(t, int64(510000), luxury.BasePrice)

	// Tiers are ordered by price.
	assert.Less(t, standard.BasePrice, premium.BasePrice)
	assert.Less(t, premium.BasePrice, luxury.BasePrice)
}

func TestComposePricingPremiumTierUsesPremiumLabour(t *testing.T) {
	// No postcode: location multiplier stays 1.0, so the premium quote is
	// boiler 135000 + premium labour 150000 + sundries 45000, plus VAT.
	p := profile("3", "2", "3", "House", "Combi")

	quotes, _ := composePricing(pricingFixture(p, testSnapshot()))
	require.Len(t, quotes, 3)

	assert.Equal(t, int64(396000), quotes[1].BasePrice)
}

func TestComposePricingSundriesAreFixedBundle(t *testing.T) {
	// The sundry bundle is a fixed professional constant; reseeding the
	// catalog sundries table must not move the quote.
	p := profile("3", "2", "3", "House", "Combi")

	snapshot := testSnapshot()
	for i := range snapshot.Sundries {
		snapshot.Sundries[i].Price *= 2
	}

	_, breakdown := composePricing(pricingFixture(p, snapshot))
	assert.Equal(t, int64(45000), breakdown.SundryPrice)
}

func TestComposePricingVatInvariant(t *testing.T) {
	p := profile("3", "2", "3", "House", "Combi")
	p.Postcode = "SW1A 1AA"

	_, breakdown := composePricing(pricingFixture(p, testSnapshot()))

	assert.Equal(t, int64(299000), breakdown.Subtotal)
	assert.Equal(t, int64(59800), breakdown.VatAmount)
	assert.Equal(t, breakdown.Subtotal+breakdown.VatAmount, breakdown.TotalPrice)
}

func TestComposePricingComponentsSumToSubtotal(t *testing.T) {
	p := profile("3", "2", "3", "House", "Combi")
	p.Postcode = "SW1A 1AA"
	p.FlueExtension = "2"
	p.ParkingDistance = "15"
	p.DrainNearby = "no"
	p.ThermostatUpgrade = "yes"

	_, breakdown := composePricing(pricingFixture(p, testSnapshot()))

	var componentTotal int64
	names := make([]string, 0, len(breakdown.Components))
	for _, c := range breakdown.Components {
		componentTotal += c.TotalPrice
		names = append(names, c.Name)
	}

	assert.Equal(t, breakdown.Subtotal, componentTotal)
	assert.Contains(t, names, "Boiler")
	assert.Contains(t, names, "Installation Labour")
	assert.Contains(t, names, "Sundries")
	assert.Contains(t, names, "Flue Extension")
	assert.Contains(t, names, "Condensate Pump")
	assert.Contains(t, names, "Thermostat Upgrade")
	assert.Contains(t, names, "Access / Parking")
}

func TestComposePricingAddOns(t *testing.T) {
	p := profile("3", "2", "3", "House", "Combi")
	p.Postcode = "SW1A 1AA"
	p.FlueExtension = "2"
	p.ParkingDistance = "15"
	p.DrainNearby = "no"
	p.ThermostatUpgrade = "yes"

	_, breakdown := composePricing(pricingFixture(p, testSnapshot()))

	assert.Equal(t, int64(16000), breakdown.FlueExtensionPrice)
	assert.Equal(t, int64(2500), breakdown.ParkingFee)
	assert.Equal(t, int64(25000), breakdown.CondensatePumpPrice)
	assert.Equal(t, int64(15000), breakdown.ThermostatPrice)
	assert.Equal(t, int64(357500), breakdown.Subtotal)
	assert.Equal(t, int64(429000), breakdown.TotalPrice)
}

func TestComposePricingNoChargeWithinParkingAllowance(t *testing.T) {
	p := profile("3", "2", "3", "House", "Combi")
	p.ParkingDistance = "10"

	_, breakdown := composePricing(pricingFixture(p, testSnapshot()))
	assert.Zero(t, breakdown.ParkingFee)
}

func TestComposePricingCylinderChargedForSystemQuote(t *testing.T) {
	p := profile("4", "2", "4", "House", "Regular")

	in := pricingFixture(p, testSnapshot())
	require.Equal(t, models.TopologySystem, in.Topology)
	require.Equal(t, 250, in.Sizing.CylinderCapacityL)

	quotes, breakdown := composePricing(in)

	assert.Equal(t, int64(200000), breakdown.CylinderPrice)

	names := make([]string, 0, len(breakdown.Components))
	for _, c := range breakdown.Components {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "Hot Water Cylinder")

	// Cylinder-fed quote reports system boilers throughout.
	for _, q := range quotes {
		assert.Equal(t, models.TopologySystem, q.BoilerType)
	}
}

func TestComposePricingFallsBackToDefaultsOnEmptyCatalog(t *testing.T) {
	p := profile("2", "1", "2", "Flat", "Combi")

	quotes, breakdown := composePricing(pricingFixture(p, &models.CatalogSnapshot{}))
	require.Len(t, quotes, 3)

	// Hardcoded baseline: Baxi at 120000, default labour, default sundries.
	assert.Equal(t, "Baxi", quotes[0].BoilerMake)
	assert.Equal(t, int64(120000), breakdown.BoilerPrice)
	assert.Equal(t, int64(135000), breakdown.LabourPrice)
	assert.Equal(t, int64(45000), breakdown.SundryPrice)
	assert.Equal(t, int64(300000), breakdown.Subtotal)
	assert.Equal(t, int64(360000), breakdown.TotalPrice)
	assert.Equal(t, 1.0, breakdown.LocationMultiplier)

	// Baseline warranty and combi flow-rate defaults per tier.
	assert.Equal(t, "10 Years", quotes[0].Warranty)
	assert.Equal(t, "10 Years", quotes[1].Warranty)
	assert.Equal(t, "12 Years", quotes[2].Warranty)
	assert.Equal(t, 12, quotes[0].FlowRateLpm)
	assert.Equal(t, 14, quotes[1].FlowRateLpm)
	assert.Equal(t, 16, quotes[2].FlowRateLpm)
}

func TestSelectTierBoilersIgnoresInactiveAndWrongType(t *testing.T) {
	boilers := selectTierBoilers(testSnapshot().Boilers, models.TopologyCombi, 30)

	assert.Equal(t, "830", boilers.Standard.Model)
	assert.NotEqual(t, "Retired", boilers.Standard.Make)
}

func TestSelectTierBoilersCombiOnlySizesUp(t *testing.T) {
	// Recommended 32kW: the 30kW combis are undersized and must be skipped;
	// only the 32kW premium model qualifies, so it backs every tier.
	boilers := selectTierBoilers(testSnapshot().Boilers, models.TopologyCombi, 32)

	assert.Equal(t, "Vaillant", boilers.Standard.Make)
	assert.Equal(t, "Vaillant", boilers.Premium.Make)
	assert.Equal(t, "Vaillant", boilers.Luxury.Make)
}

func TestVatAmountRoundsHalfUp(t *testing.T) {
	assert.Equal(t, int64(20), vatAmount(100))
	assert.Equal(t, int64(21), vatAmount(103)) // 20.6 rounds up
	assert.Equal(t, int64(20), vatAmount(102)) // 20.4 rounds down
	assert.Equal(t, int64(1), vatAmount(3))    // 0.6 rounds up
}
