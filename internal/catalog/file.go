package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"profitcalc/internal/errors"
	"profitcalc/internal/models"
)

// FileSource loads the catalog from a JSON rates file.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

type ratesFile struct {
	Version       string                 `json:"version"`
	ReferralRules map[string][]fileTier  `json:"referralRules"`
	WeightBands   []fileLane             `json:"weightBands"`
	ClosingFees   map[string][]fileBand  `json:"closingFees"`
	PickPackRates []filePickPack         `json:"pickPackRates"`
}

type fileTier struct {
	Lower   decimal.Decimal  `json:"lower"`
	Upper   *decimal.Decimal `json:"upper"`
	Percent decimal.Decimal  `json:"percent"`
}

type fileBand struct {
	Lower  decimal.Decimal  `json:"lower"`
	Upper  *decimal.Decimal `json:"upper"`
	Amount decimal.Decimal  `json:"amount"`
}

type fileLane struct {
	Location     models.Location     `json:"location"`
	ShippingMode models.ShippingMode `json:"shippingMode"`
	Bands        []fileBand          `json:"bands"`
}

type filePickPack struct {
	ProductSize  models.ProductSize  `json:"productSize"`
	ShippingMode models.ShippingMode `json:"shippingMode"`
	Amount       decimal.Decimal     `json:"amount"`
}

// Load reads and validates the rates file. Malformed data is returned as a
// *errors.CatalogLoadError.
func (s *FileSource) Load(_ context.Context) (*Catalog, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &errors.CatalogLoadError{
			Problems: []string{fmt.Sprintf("read %s: %v", s.path, err)},
		}
	}

	var f ratesFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, &errors.CatalogLoadError{
			Problems: []string{fmt.Sprintf("parse %s: %v", s.path, err)},
		}
	}

	tables := Tables{
		ReferralRules: make(map[string]ReferralRule, len(f.ReferralRules)),
		WeightBands:   make(map[Lane][]AmountBand, len(f.WeightBands)),
		ClosingFees:   make(map[string][]AmountBand, len(f.ClosingFees)),
		PickPackRates: make(map[SizeMode]decimal.Decimal, len(f.PickPackRates)),
	}

	for category, tiers := range f.ReferralRules {
		rule := ReferralRule{Tiers: make([]RateTier, len(tiers))}
		for i, t := range tiers {
			rule.Tiers[i] = RateTier{Lower: t.Lower, Upper: t.Upper, Percent: t.Percent}
		}
		tables.ReferralRules[category] = rule
	}

	for _, lane := range f.WeightBands {
		key := Lane{Location: lane.Location, ShippingMode: lane.ShippingMode}
		tables.WeightBands[key] = toAmountBands(lane.Bands)
	}

	for category, bands := range f.ClosingFees {
		tables.ClosingFees[category] = toAmountBands(bands)
	}

	for _, pp := range f.PickPackRates {
		key := SizeMode{ProductSize: pp.ProductSize, ShippingMode: pp.ShippingMode}
		tables.PickPackRates[key] = pp.Amount
	}

	return New(f.Version, tables)
}

func toAmountBands(bands []fileBand) []AmountBand {
	out := make([]AmountBand, len(bands))
	for i, b := range bands {
		out[i] = AmountBand{Lower: b.Lower, Upper: b.Upper, Amount: b.Amount}
	}
	return out
}
