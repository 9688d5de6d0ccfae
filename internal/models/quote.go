package models

import (
	"time"
)

// QuoteTier is the customer-facing pricing tier of a quote option.
type QuoteTier string

const (
	QuoteTierStandard QuoteTier = "Standard"
	QuoteTierPremium  QuoteTier = "Premium"
	QuoteTierLuxury   QuoteTier = "Luxury"
)

// QuoteOption is one of the three tiered offers presented to the customer.
// BasePrice is VAT-inclusive, in integer pence.
type QuoteOption struct {
	Tier          QuoteTier      `json:"tier"`
	BoilerMake    string         `json:"boilerMake"`
	BoilerModel   string         `json:"boilerModel"`
	BoilerType    BoilerTopology `json:"boilerType"`
	Warranty      string         `json:"warranty"`
	BasePrice     int64          `json:"basePrice"`
	IsRecommended bool           `json:"isRecommended"`
	KwOutput      int            `json:"kWOutput"`
	FlowRateLpm   int            `json:"flowRate"`
	Efficiency    string         `json:"efficiency"`
}

// QuoteComponent is one itemized line of the price breakdown shown to the
// customer. Prices are in integer pence.
type QuoteComponent struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unitPrice"`
	TotalPrice  int64  `json:"totalPrice"`
}

// PriceBreakdown itemizes the Standard-tier quote. All monetary fields are in
// integer pence; Subtotal + VatAmount == TotalPrice always holds.
type PriceBreakdown struct {
	BoilerPrice         int64            `json:"boilerPrice"`
	LabourPrice         int64            `json:"labourPrice"`
	CylinderPrice       int64            `json:"cylinderPrice"`
	SundryPrice         int64            `json:"sundryPrice"`
	FlueExtensionPrice  int64            `json:"flueExtensionPrice"`
	CondensatePumpPrice int64            `json:"condensatePumpPrice"`
	ThermostatPrice     int64            `json:"thermostatPrice"`
	ParkingFee          int64            `json:"parkingFee"`
	AccessFee           int64            `json:"accessFee"`
	LocationMultiplier  float64          `json:"locationMultiplier"`
	Subtotal            int64            `json:"subtotal"`
	VatAmount           int64            `json:"vatAmount"`
	TotalPrice          int64            `json:"totalPrice"`
	Components          []QuoteComponent `json:"components"`
}

// AnalysisSummary reports the engine's sizing and system decisions.
type AnalysisSummary struct {
	RecommendedBoilerSize  int            `json:"recommendedBoilerSize"`
	RecommendedBoilerType  BoilerTopology `json:"recommendedBoilerType"`
	CylinderCapacity       int            `json:"cylinderCapacity"`
	HeatLoadKw             int            `json:"heatLoadCalculation"`
	HotWaterDemandKw       int            `json:"hotWaterDemand"`
	SimultaneousUsageScore int            `json:"simultaneousUsageScore"`
	PropertyComplexity     ComplexityTier `json:"propertyComplexity"`
	JobType                string         `json:"jobType"`
	InstallationMultiplier float64        `json:"installationMultiplier"`
}

// Recommendations carries the human-readable rationale for the quote.
type Recommendations struct {
	SystemExplanation  string   `json:"systemExplanation"`
	WhyThisBoiler      string   `json:"whyThisBoiler"`
	AlternativeOptions []string `json:"alternativeOptions"`
	InstallationNotes  []string `json:"installationNotes"`
}

// QuoteResult is the complete output of a quote calculation. It is
// constructed fresh per request and never mutated after return. Degraded is
// set when the pricing catalog was unreachable and the hardcoded baseline
// quote was substituted.
type QuoteResult struct {
	RequestID       string          `json:"requestId"`
	Quotes          []QuoteOption   `json:"quotes"`
	Analysis        AnalysisSummary `json:"analysis"`
	PriceBreakdown  PriceBreakdown  `json:"priceBreakdown"`
	Recommendations Recommendations `json:"recommendations"`
	Degraded        bool            `json:"degraded,omitempty"`
}

// QuoteRecord is a persisted accepted quote: the profile the customer
// submitted plus the totals they were shown.
type QuoteRecord struct {
	ID            int64           `json:"id" db:"id"`
	QuoteRef      string          `json:"quote_ref" db:"quote_ref"`
	CustomerName  string          `json:"customer_name" db:"customer_name"`
	CustomerEmail string          `json:"customer_email" db:"customer_email"`
	CustomerPhone string          `json:"customer_phone" db:"customer_phone"`
	Profile       PropertyProfile `json:"profile" db:"profile"`
	SelectedTier  QuoteTier       `json:"selected_tier" db:"selected_tier"`
	TotalPrice    int64           `json:"total_price" db:"total_price"`
	BoilerType    BoilerTopology  `json:"boiler_type" db:"boiler_type"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}

// QuoteRecordCreate is the data needed to persist an accepted quote.
type QuoteRecordCreate struct {
	QuoteRef      string          `json:"quote_ref"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	CustomerPhone string          `json:"customer_phone"`
	Profile       PropertyProfile `json:"profile"`
	SelectedTier  QuoteTier       `json:"selected_tier"`
	TotalPrice    int64           `json:"total_price"`
	BoilerType    BoilerTopology  `json:"boiler_type"`
}
