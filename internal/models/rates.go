package models

import "github.com/shopspring/decimal"

// Rate rows for the Postgres catalog source. Each row mirrors one entry of
// the corresponding catalog table; a NULL upper bound marks the unbounded
// top band.

type ReferralRateRow struct {
	ID         uint             `gorm:"primaryKey"`
	Category   string           `gorm:"index;not null"`
	PriceLower decimal.Decimal  `gorm:"type:numeric;not null"`
	PriceUpper *decimal.Decimal `gorm:"type:numeric"`
	Percent    decimal.Decimal  `gorm:"type:numeric;not null"`
}

type WeightBandRow struct {
	ID           uint             `gorm:"primaryKey"`
	Location     Location         `gorm:"index:idx_weight_lane;not null"`
	ShippingMode ShippingMode     `gorm:"index:idx_weight_lane;not null"`
	WeightLower  decimal.Decimal  `gorm:"type:numeric;not null"`
	WeightUpper  *decimal.Decimal `gorm:"type:numeric"`
	Amount       decimal.Decimal  `gorm:"type:numeric;not null"`
}

type ClosingFeeRow struct {
	ID         uint             `gorm:"primaryKey"`
	Category   string           `gorm:"index;not null"`
	PriceLower decimal.Decimal  `gorm:"type:numeric;not null"`
	PriceUpper *decimal.Decimal `gorm:"type:numeric"`
	Amount     decimal.Decimal  `gorm:"type:numeric;not null"`
}

type PickPackRateRow struct {
	ID           uint            `gorm:"primaryKey"`
	ProductSize  ProductSize     `gorm:"index:idx_pickpack_key;not null"`
	ShippingMode ShippingMode    `gorm:"index:idx_pickpack_key;not null"`
	Amount       decimal.Decimal `gorm:"type:numeric;not null"`
}
