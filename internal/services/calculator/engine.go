package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"profitcalc/internal/catalog"
	"profitcalc/internal/errors"
	"profitcalc/internal/models"
)

var hundred = decimal.NewFromInt(100)

// Compute derives the fee breakdown for an already validated request. It is
// a pure function of the request and the catalog: the four components are
// independent of each other, evaluated in a fixed order so a catalog gap is
// always reported against the same component first.
//
// Each component is rounded once, half-to-even, to 2 decimal places.
// TotalFees is the plain sum of the rounded components and is not rounded
// again; NetEarnings is sellingPrice minus TotalFees and may be negative.
func Compute(req models.PricingRequest, cat *catalog.Catalog) (*models.FeeBreakdown, error) {
	rule, ok := cat.LookupReferralRule(req.ProductCategory)
	if !ok {
		return nil, &errors.CalculationError{
			Component: errors.ComponentReferral,
			Key:       req.ProductCategory,
		}
	}
	rate, ok := rule.RateFor(req.SellingPrice)
	if !ok {
		return nil, &errors.CalculationError{
			Component: errors.ComponentReferral,
			Key:       fmt.Sprintf("%s at price %s", req.ProductCategory, req.SellingPrice),
		}
	}
	referral := req.SellingPrice.Mul(rate).Div(hundred).RoundBank(2)

	weightFee, ok := cat.LookupWeightBand(req.Location, req.ShippingMode, req.Weight)
	if !ok {
		return nil, &errors.CalculationError{
			Component: errors.ComponentWeightHandling,
			Key:       fmt.Sprintf("%s/%s at weight %skg", req.Location, req.ShippingMode, req.Weight),
		}
	}
	weightFee = weightFee.RoundBank(2)

	closing, ok := cat.LookupClosingBand(req.SellingPrice, req.ProductCategory)
	if !ok {
		return nil, &errors.CalculationError{
			Component: errors.ComponentClosing,
			Key:       fmt.Sprintf("%s at price %s", req.ProductCategory, req.SellingPrice),
		}
	}
	closing = closing.RoundBank(2)

	pickPack, ok := cat.LookupPickPack(req.ProductSize, req.ShippingMode)
	if !ok {
		return nil, &errors.CalculationError{
			Component: errors.ComponentPickAndPack,
			Key:       fmt.Sprintf("%s/%s", req.ProductSize, req.ShippingMode),
		}
	}
	pickPack = pickPack.RoundBank(2)

	total := referral.Add(weightFee).Add(closing).Add(pickPack)

	return &models.FeeBreakdown{
		ReferralFee:       referral,
		WeightHandlingFee: weightFee,
		ClosingFee:        closing,
		PickAndPackFee:    pickPack,
		TotalFees:         total,
		NetEarnings:       req.SellingPrice.Sub(total),
	}, nil
}
