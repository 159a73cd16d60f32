// Package calculator computes marketplace selling-fee breakdowns from the
// rate catalog.
package calculator

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"strings"

	"profitcalc/internal/errors"
	"profitcalc/internal/models"
	"profitcalc/internal/validation"
)

var errCatalogUnavailable = &errors.DomainError{
	Code:    "CATALOG_UNAVAILABLE",
	Message: "rate catalog is not loaded",
}

type service struct {
	catalogs CatalogProvider
	cache    BreakdownCache // optional, may be nil
}

// NewService creates the calculation service. cache may be nil to disable
// breakdown caching.
func NewService(catalogs CatalogProvider, cache BreakdownCache) Service {
	return &service{
		catalogs: catalogs,
		cache:    cache,
	}
}

// Calculate validates the request against the catalog in service, then runs
// the engine. The catalog reference is taken once, so a concurrent reload
// cannot mix tables within a single calculation. Cache failures only cost
// the cache; the calculation itself never depends on it.
func (s *service) Calculate(ctx context.Context, req models.PricingRequest) (*models.FeeBreakdown, error) {
	cat := s.catalogs.Current()
	if cat == nil {
		return nil, errCatalogUnavailable
	}

	if err := validation.ValidatePricingRequest(&req, cat); err != nil {
		return nil, err
	}

	var key string
	if s.cache != nil {
		key = breakdownKey(cat.Version(), req)
		cached, found, err := s.cache.GetBreakdown(ctx, key)
		if err != nil {
			log.Printf("breakdown cache read failed: %v", err)
		} else if found {
			return cached, nil
		}
	}

	breakdown, err := Compute(req, cat)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.CacheBreakdown(ctx, key, breakdown); err != nil {
			log.Printf("breakdown cache write failed: %v", err)
		}
	}
	return breakdown, nil
}

// Options reports the catalog's category list and the closed enumerations.
func (s *service) Options() Options {
	opts := Options{
		ProductSizes:  models.ProductSizes(),
		Locations:     models.Locations(),
		ShippingModes: models.ShippingModes(),
		ServiceLevels: models.ServiceLevels(),
	}
	if cat := s.catalogs.Current(); cat != nil {
		opts.CatalogVersion = cat.Version()
		opts.ProductCategories = cat.Categories()
	}
	return opts
}

// breakdownKey derives the cache key from the catalog version and every
// request field, serviceLevel included so future rate differentiation can
// never serve entries computed without it.
func breakdownKey(version string, req models.PricingRequest) string {
	h := sha256.Sum256([]byte(strings.Join([]string{
		req.ProductCategory,
		string(req.ProductSize),
		string(req.Location),
		string(req.ShippingMode),
		string(req.ServiceLevel),
		req.SellingPrice.String(),
		req.Weight.String(),
	}, "|")))
	return "breakdown:" + version + ":" + hex.EncodeToString(h[:])
}
