package models

import (
	"time"
)

// PriceTier is the quality bracket of a catalog item.
type PriceTier string

const (
	TierBudget   PriceTier = "Budget"
	TierMidRange PriceTier = "Mid-Range"
	TierPremium  PriceTier = "Premium"
)

// LabourTier distinguishes standard and premium installation teams.
type LabourTier string

const (
	LabourTierStandard LabourTier = "Standard"
	LabourTierPremium  LabourTier = "Premium"
)

// BoilerOffering is a boiler model available for supply. SupplyPrice is in
// integer pence.
type BoilerOffering struct {
	ID               int64          `json:"id" db:"id"`
	Make             string         `json:"make" db:"make"`
	Model            string         `json:"model" db:"model"`
	BoilerType       BoilerTopology `json:"boiler_type" db:"boiler_type"`
	Tier             PriceTier      `json:"tier" db:"tier"`
	DhwKw            int            `json:"dhw_kw" db:"dhw_kw"`
	SupplyPrice      int64          `json:"supply_price" db:"supply_price"`
	WarrantyYears    int            `json:"warranty_years" db:"warranty_years"`
	FlowRateLpm      int            `json:"flow_rate_lpm" db:"flow_rate_lpm"`
	EfficiencyRating string         `json:"efficiency_rating" db:"efficiency_rating"`
	IsActive         bool           `json:"is_active" db:"is_active"`
	CreatedAt        time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at" db:"updated_at"`
}

// LabourCost is an installation labour rate keyed by job type and tier.
// Price is in integer pence.
type LabourCost struct {
	ID      int64      `json:"id" db:"id"`
	JobType string     `json:"job_type" db:"job_type"`
	Tier    LabourTier `json:"tier" db:"tier"`
	Price   int64      `json:"price" db:"price"`
}

// SundryCost is a consumable or small part priced per installation.
// Price is in integer pence.
type SundryCost struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	Price       int64  `json:"price" db:"price"`
}

// LocationMultiplier scales labour pricing by postcode area.
type LocationMultiplier struct {
	ID              int64   `json:"id" db:"id"`
	PostcodePattern string  `json:"postcode_pattern" db:"postcode_pattern"`
	Area            string  `json:"area" db:"area"`
	PriceMultiplier float64 `json:"price_multiplier" db:"price_multiplier"`
}

// CatalogSnapshot is the pricing data a single quote computation reads. It is
// fetched once per request and never mutated afterwards.
type CatalogSnapshot struct {
	Boilers     []BoilerOffering
	LabourCosts []LabourCost
	Sundries    []SundryCost
	Locations   []LocationMultiplier
}
