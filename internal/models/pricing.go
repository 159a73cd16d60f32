package models

import "github.com/shopspring/decimal"

// ProductSize is the fulfilment size tier of a product.
type ProductSize string

// Location is the fulfilment centre placement of the shipment.
type Location string

// ShippingMode selects who carries the shipment.
type ShippingMode string

// ServiceLevel is the seller's programme tier. It is validated but does not
// currently influence any fee; rates may differentiate on it later.
type ServiceLevel string

const (
	SizeStandard   ProductSize = "Standard"
	SizeHeavyBulky ProductSize = "Heavy & Bulky"

	LocationLocal    Location = "Local"
	LocationRegional Location = "Regional"
	LocationNational Location = "National"
	LocationIXD      Location = "IXD"

	ModeEasyShip ShippingMode = "Easy Ship"
	ModeFBA      ShippingMode = "FBA"
	ModeSelfShip ShippingMode = "Self Ship"

	LevelPremium  ServiceLevel = "Premium"
	LevelAdvanced ServiceLevel = "Advanced"
	LevelStandard ServiceLevel = "Standard"
	LevelBasic    ServiceLevel = "Basic"
)

// ProductSizes lists every known size tier, in display order.
func ProductSizes() []ProductSize {
	return []ProductSize{SizeStandard, SizeHeavyBulky}
}

// Locations lists every known fulfilment location, in display order.
func Locations() []Location {
	return []Location{LocationLocal, LocationRegional, LocationNational, LocationIXD}
}

// ShippingModes lists every known shipping mode, in display order.
func ShippingModes() []ShippingMode {
	return []ShippingMode{ModeEasyShip, ModeFBA, ModeSelfShip}
}

// ServiceLevels lists every known service level, in display order.
func ServiceLevels() []ServiceLevel {
	return []ServiceLevel{LevelPremium, LevelAdvanced, LevelStandard, LevelBasic}
}

func (s ProductSize) Valid() bool {
	switch s {
	case SizeStandard, SizeHeavyBulky:
		return true
	}
	return false
}

func (l Location) Valid() bool {
	switch l {
	case LocationLocal, LocationRegional, LocationNational, LocationIXD:
		return true
	}
	return false
}

func (m ShippingMode) Valid() bool {
	switch m {
	case ModeEasyShip, ModeFBA, ModeSelfShip:
		return true
	}
	return false
}

func (l ServiceLevel) Valid() bool {
	switch l {
	case LevelPremium, LevelAdvanced, LevelStandard, LevelBasic:
		return true
	}
	return false
}

// PricingRequest is the calculator input posted by the seller-facing form.
// Prices are in INR, weight in kilograms.
type PricingRequest struct {
	ProductCategory string          `json:"productCategory"`
	ProductSize     ProductSize     `json:"productSize"`
	Location        Location        `json:"location"`
	ShippingMode    ShippingMode    `json:"shippingMode"`
	ServiceLevel    ServiceLevel    `json:"serviceLevel"`
	SellingPrice    decimal.Decimal `json:"sellingPrice"`
	Weight          decimal.Decimal `json:"weight"`
}

// FeeBreakdown is the result of a fee calculation. Every component is
// already rounded to 2 decimal places; TotalFees is the exact sum of the
// rounded components and NetEarnings may be negative.
type FeeBreakdown struct {
	ReferralFee       decimal.Decimal `json:"referralFee"`
	WeightHandlingFee decimal.Decimal `json:"weightHandlingFee"`
	ClosingFee        decimal.Decimal `json:"closingFee"`
	PickAndPackFee    decimal.Decimal `json:"pickAndPackFee"`
	TotalFees         decimal.Decimal `json:"totalFees"`
	NetEarnings       decimal.Decimal `json:"netEarnings"`
}

// FeeBreakdownResponse is the wire form of a FeeBreakdown. The client reads
// these fields off the response root, as plain numbers.
type FeeBreakdownResponse struct {
	ReferralFee       float64 `json:"referralFee"`
	WeightHandlingFee float64 `json:"weightHandlingFee"`
	ClosingFee        float64 `json:"closingFee"`
	PickAndPackFee    float64 `json:"pickAndPackFee"`
	TotalFees         float64 `json:"totalFees"`
	NetEarnings       float64 `json:"netEarnings"`
}

// Response converts the breakdown to its wire form. The components carry at
// most 2 decimal places, so the float conversion is exact.
func (b *FeeBreakdown) Response() FeeBreakdownResponse {
	return FeeBreakdownResponse{
		ReferralFee:       b.ReferralFee.InexactFloat64(),
		WeightHandlingFee: b.WeightHandlingFee.InexactFloat64(),
		ClosingFee:        b.ClosingFee.InexactFloat64(),
		PickAndPackFee:    b.PickAndPackFee.InexactFloat64(),
		TotalFees:         b.TotalFees.InexactFloat64(),
		NetEarnings:       b.NetEarnings.InexactFloat64(),
	}
}
