// Package models defines the data structures for the boiler quote engine.
package models

import (
	"strconv"
	"strings"
)

// PropertyType represents the type of property being quoted.
type PropertyType string

const (
	PropertyTypeHouse PropertyType = "House"
	PropertyTypeFlat  PropertyType = "Flat"
)

// BoilerTopology represents the recommended boiler system configuration.
type BoilerTopology string

const (
	TopologyCombi   BoilerTopology = "Combi"
	TopologySystem  BoilerTopology = "System"
	TopologyRegular BoilerTopology = "Regular"
)

// BoilerClass is the classification of the customer's current boiler,
// derived from free-text input by substring matching.
type BoilerClass string

const (
	BoilerClassCombi   BoilerClass = "combi"
	BoilerClassSystem  BoilerClass = "system"
	BoilerClassRegular BoilerClass = "regular"
	BoilerClassUnknown BoilerClass = "unknown"
)

// ClassifyBoilerType maps free-text boiler descriptions to a BoilerClass.
// "Conventional" and "heat only" count as regular open-vent systems.
func ClassifyBoilerType(description string) BoilerClass {
	normalized := strings.ToLower(strings.TrimSpace(description))

	switch {
	case strings.Contains(normalized, "combi"):
		return BoilerClassCombi
	case strings.Contains(normalized, "system"):
		return BoilerClassSystem
	case strings.Contains(normalized, "regular"),
		strings.Contains(normalized, "conventional"),
		strings.Contains(normalized, "heat only"):
		return BoilerClassRegular
	default:
		return BoilerClassUnknown
	}
}

// PropertyProfile is the immutable input to a quote calculation. Counts are
// strings as captured by the form wizard and may carry a "+" suffix meaning
// "at least N"; ParseCount strips the suffix and uses the numeric floor.
type PropertyProfile struct {
	Bedrooms      string `json:"bedrooms"`
	Bathrooms     string `json:"bathrooms"`
	Occupants     string `json:"occupants"`
	PropertyType  string `json:"propertyType"`
	CurrentBoiler string `json:"currentBoiler"`
	FlueLocation  string `json:"flueLocation,omitempty"`
	DrainNearby   string `json:"drainNearby,omitempty"`
	MoveBoiler    string `json:"moveBoiler,omitempty"`
	Postcode      string `json:"postcode"`

	// Site access and add-on inputs from the later wizard steps.
	FlueExtension     string `json:"flueExtension,omitempty"`
	ParkingDistance   string `json:"parkingDistance,omitempty"`
	ParkingSituation  string `json:"parkingSituation,omitempty"`
	ThermostatUpgrade string `json:"thermostatUpgrade,omitempty"`
}

// ParseCount parses a count field, stripping any "+" suffix. Missing or
// unparseable values fall back to the supplied default.
func ParseCount(raw string, fallback int) int {
	trimmed := strings.TrimSuffix(strings.TrimSpace(raw), "+")
	n, err := strconv.Atoi(trimmed)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

// BedroomCount returns the parsed bedroom count (default 1).
func (p *PropertyProfile) BedroomCount() int {
	return ParseCount(p.Bedrooms, 1)
}

// BathroomCount returns the parsed bathroom count (default 1).
func (p *PropertyProfile) BathroomCount() int {
	return ParseCount(p.Bathrooms, 1)
}

// OccupantCount returns the parsed occupant count (default 2).
func (p *PropertyProfile) OccupantCount() int {
	return ParseCount(p.Occupants, 2)
}

// IsHouse reports whether the property is a house. Anything other than an
// explicit house is treated as a flat for heat-loss purposes.
func (p *PropertyProfile) IsHouse() bool {
	return strings.EqualFold(strings.TrimSpace(p.PropertyType), string(PropertyTypeHouse))
}

// CurrentBoilerClass classifies the customer's existing boiler.
func (p *PropertyProfile) CurrentBoilerClass() BoilerClass {
	return ClassifyBoilerType(p.CurrentBoiler)
}

// DrainIsNearby reports whether a condensate drain is available. Unknown
// counts as available so the pump is only priced when the customer has
// confirmed there is no drain.
func (p *PropertyProfile) DrainIsNearby() bool {
	return !strings.EqualFold(strings.TrimSpace(p.DrainNearby), "no")
}

// WantsThermostatUpgrade reports whether the customer asked for a smart
// thermostat upgrade.
func (p *PropertyProfile) WantsThermostatUpgrade() bool {
	return strings.EqualFold(strings.TrimSpace(p.ThermostatUpgrade), "yes")
}

// WantsBoilerMoved reports whether the customer asked to relocate the boiler.
func (p *PropertyProfile) WantsBoilerMoved() bool {
	return strings.EqualFold(strings.TrimSpace(p.MoveBoiler), "yes")
}

// HasPaidParking reports whether the property sits in a paid parking area.
func (p *PropertyProfile) HasPaidParking() bool {
	return strings.Contains(strings.ToLower(p.ParkingSituation), "paid")
}

// HeatingRequirement holds the derived heating demand figures for a property.
type HeatingRequirement struct {
	HeatLoadKw             int `json:"heat_load_kw"`
	HotWaterDemandKw       int `json:"hot_water_demand_kw"`
	SimultaneousUsageScore int `json:"simultaneous_usage_score"`
}

// SizingResult holds the recommended boiler output and cylinder capacity.
// CylinderCapacityL is always 0 for Combi systems.
type SizingResult struct {
	BoilerOutputKw    int `json:"boiler_output_kw"`
	CylinderCapacityL int `json:"cylinder_capacity_l"`
}

// ComplexityTier grades how involved the installation job is.
type ComplexityTier string

const (
	ComplexitySimple  ComplexityTier = "Simple"
	ComplexityMedium  ComplexityTier = "Medium"
	ComplexityComplex ComplexityTier = "Complex"
)

// JobComplexity is the classified installation job: a complexity tier, the
// labour multiplier applied to base labour pricing, and the job-type label
// used for labour cost lookup.
type JobComplexity struct {
	Complexity ComplexityTier `json:"complexity"`
	Multiplier float64        `json:"multiplier"`
	JobType    string         `json:"job_type"`
}
