// Package catalog holds the immutable rate catalog: referral-fee rules per
// category, weight-handling bands per fulfilment lane, closing-fee bands per
// category and pick-and-pack rates per size tier. A catalog is built once
// from a Source, validated, and never mutated; reloads swap the whole
// catalog atomically.
package catalog

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"profitcalc/internal/errors"
	"profitcalc/internal/models"
)

// Lane keys the weight-handling table.
type Lane struct {
	Location     models.Location
	ShippingMode models.ShippingMode
}

func (l Lane) String() string {
	return fmt.Sprintf("%s/%s", l.Location, l.ShippingMode)
}

// SizeMode keys the pick-and-pack table.
type SizeMode struct {
	ProductSize  models.ProductSize
	ShippingMode models.ShippingMode
}

func (k SizeMode) String() string {
	return fmt.Sprintf("%s/%s", k.ProductSize, k.ShippingMode)
}

// RateTier is one half-open price interval [Lower, Upper) of a referral
// rule. A nil Upper marks the unbounded top tier. Percent is the commission
// percentage applied to the selling price.
type RateTier struct {
	Lower   decimal.Decimal
	Upper   *decimal.Decimal
	Percent decimal.Decimal
}

// ReferralRule is the referral-fee rule for one category. A flat rule is a
// single unbounded tier.
type ReferralRule struct {
	Tiers []RateTier
}

// RateFor returns the commission percentage for the tier containing price.
func (r ReferralRule) RateFor(price decimal.Decimal) (decimal.Decimal, bool) {
	i := sort.Search(len(r.Tiers), func(i int) bool {
		return r.Tiers[i].Upper == nil || price.LessThan(*r.Tiers[i].Upper)
	})
	if i >= len(r.Tiers) || price.LessThan(r.Tiers[i].Lower) {
		return decimal.Decimal{}, false
	}
	return r.Tiers[i].Percent, true
}

// AmountBand is one half-open interval [Lower, Upper) mapping to a flat fee
// amount. A nil Upper marks the unbounded top band.
type AmountBand struct {
	Lower  decimal.Decimal
	Upper  *decimal.Decimal
	Amount decimal.Decimal
}

// Tables is the raw rate data a Source produces. New validates and freezes
// it into a Catalog.
type Tables struct {
	ReferralRules map[string]ReferralRule
	WeightBands   map[Lane][]AmountBand
	ClosingFees   map[string][]AmountBand
	PickPackRates map[SizeMode]decimal.Decimal
}

// Catalog is a validated, immutable, versioned set of rate tables.
type Catalog struct {
	version  string
	loadedAt time.Time
	tables   Tables
}

// New validates tables and builds a Catalog. Band and tier slices are
// sorted by lower bound before validation. If version is empty a fresh
// UUID is assigned. Returns *errors.CatalogLoadError on malformed data.
func New(version string, tables Tables) (*Catalog, error) {
	for _, rule := range tables.ReferralRules {
		sort.Slice(rule.Tiers, func(i, j int) bool {
			return rule.Tiers[i].Lower.LessThan(rule.Tiers[j].Lower)
		})
	}
	for _, bands := range tables.WeightBands {
		sortBands(bands)
	}
	for _, bands := range tables.ClosingFees {
		sortBands(bands)
	}

	if problems := validateTables(tables); len(problems) > 0 {
		return nil, &errors.CatalogLoadError{Problems: problems}
	}

	if version == "" {
		version = uuid.NewString()
	}
	return &Catalog{
		version:  version,
		loadedAt: time.Now().UTC(),
		tables:   tables,
	}, nil
}

func sortBands(bands []AmountBand) {
	sort.Slice(bands, func(i, j int) bool {
		return bands[i].Lower.LessThan(bands[j].Lower)
	})
}

// Version identifies this catalog load. Calculations against the same
// version are bit-identical for identical requests.
func (c *Catalog) Version() string { return c.version }

// LoadedAt is when this catalog was built.
func (c *Catalog) LoadedAt() time.Time { return c.loadedAt }

// HasCategory reports whether name is a configured product category.
func (c *Catalog) HasCategory(name string) bool {
	_, ok := c.tables.ReferralRules[name]
	return ok
}

// Categories returns the configured category names, sorted.
func (c *Catalog) Categories() []string {
	names := make([]string, 0, len(c.tables.ReferralRules))
	for name := range c.tables.ReferralRules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupReferralRule returns the referral rule for a category.
func (c *Catalog) LookupReferralRule(category string) (ReferralRule, bool) {
	rule, ok := c.tables.ReferralRules[category]
	return rule, ok
}

// LookupWeightBand returns the weight-handling fee for the band containing
// weight on the given lane.
func (c *Catalog) LookupWeightBand(loc models.Location, mode models.ShippingMode, weight decimal.Decimal) (decimal.Decimal, bool) {
	return lookupBand(c.tables.WeightBands[Lane{Location: loc, ShippingMode: mode}], weight)
}

// LookupClosingBand returns the closing fee for the price band containing
// price for the given category.
func (c *Catalog) LookupClosingBand(price decimal.Decimal, category string) (decimal.Decimal, bool) {
	return lookupBand(c.tables.ClosingFees[category], price)
}

// LookupPickPack returns the pick-and-pack fee for a size tier and
// shipping mode.
func (c *Catalog) LookupPickPack(size models.ProductSize, mode models.ShippingMode) (decimal.Decimal, bool) {
	amount, ok := c.tables.PickPackRates[SizeMode{ProductSize: size, ShippingMode: mode}]
	return amount, ok
}

// lookupBand finds the band whose [Lower, Upper) interval contains value.
// Bands are sorted, so the first band not strictly below value is the only
// candidate.
func lookupBand(bands []AmountBand, value decimal.Decimal) (decimal.Decimal, bool) {
	i := sort.Search(len(bands), func(i int) bool {
		return bands[i].Upper == nil || value.LessThan(*bands[i].Upper)
	})
	if i >= len(bands) || value.LessThan(bands[i].Lower) {
		return decimal.Decimal{}, false
	}
	return bands[i].Amount, true
}

// Tables exposes the underlying rate tables, for persistence. Callers must
// treat the returned maps as read-only.
func (c *Catalog) Tables() Tables {
	return c.tables
}

// TableSizes reports row counts per table, for the admin surface.
func (c *Catalog) TableSizes() map[string]int {
	return map[string]int{
		"referralRules": len(c.tables.ReferralRules),
		"weightBands":   len(c.tables.WeightBands),
		"closingFees":   len(c.tables.ClosingFees),
		"pickPackRates": len(c.tables.PickPackRates),
	}
}
