package calculator

import (
	"context"

	"profitcalc/internal/catalog"
	"profitcalc/internal/models"
)

// Service defines the fee calculation service interface
type Service interface {
	// Calculate validates a request and computes its fee breakdown.
	Calculate(ctx context.Context, req models.PricingRequest) (*models.FeeBreakdown, error)

	// Options returns the enumerations a client form can offer, sourced
	// from the catalog currently in service.
	Options() Options
}

// CatalogProvider supplies the catalog currently in service.
type CatalogProvider interface {
	Current() *catalog.Catalog
}

// BreakdownCache caches computed breakdowns. Keys embed the catalog
// version, so entries never need invalidation.
type BreakdownCache interface {
	GetBreakdown(ctx context.Context, key string) (*models.FeeBreakdown, bool, error)
	CacheBreakdown(ctx context.Context, key string, breakdown *models.FeeBreakdown) error
}

// Options lists the valid values for every request enumeration.
type Options struct {
	CatalogVersion    string                `json:"catalogVersion"`
	ProductCategories []string              `json:"productCategories"`
	ProductSizes      []models.ProductSize  `json:"productSizes"`
	Locations         []models.Location     `json:"locations"`
	ShippingModes     []models.ShippingMode `json:"shippingModes"`
	ServiceLevels     []models.ServiceLevel `json:"serviceLevels"`
}
