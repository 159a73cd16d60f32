package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profitcalc/internal/catalog"
	"profitcalc/internal/errors"
	"profitcalc/internal/models"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New("test", catalog.Tables{
		ReferralRules: map[string]catalog.ReferralRule{
			"Books": {Tiers: []catalog.RateTier{
				{Lower: decimal.Zero, Percent: decimal.NewFromInt(7)},
			}},
		},
	})
	require.NoError(t, err)
	return cat
}

func validRequest() models.PricingRequest {
	return models.PricingRequest{
		ProductCategory: "Books",
		ProductSize:     models.SizeStandard,
		Location:        models.LocationLocal,
		ShippingMode:    models.ModeEasyShip,
		ServiceLevel:    models.LevelStandard,
		SellingPrice:    decimal.NewFromInt(500),
		Weight:          decimal.RequireFromString("0.3"),
	}
}

func TestValidatePricingRequest(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*models.PricingRequest)
		wantField  string
		wantReason string
	}{
		{
			name:   "valid request",
			mutate: func(*models.PricingRequest) {},
		},
		{
			name:       "empty category",
			mutate:     func(r *models.PricingRequest) { r.ProductCategory = "" },
			wantField:  "productCategory",
			wantReason: "must not be empty",
		},
		{
			name:       "unknown category",
			mutate:     func(r *models.PricingRequest) { r.ProductCategory = "Furniture" },
			wantField:  "productCategory",
			wantReason: "unknown product category",
		},
		{
			name:       "unknown size",
			mutate:     func(r *models.PricingRequest) { r.ProductSize = "Oversized" },
			wantField:  "productSize",
			wantReason: "unknown product size",
		},
		{
			name:       "unknown location",
			mutate:     func(r *models.PricingRequest) { r.Location = "Orbital" },
			wantField:  "location",
			wantReason: "unknown location",
		},
		{
			name:       "unknown shipping mode",
			mutate:     func(r *models.PricingRequest) { r.ShippingMode = "Teleport" },
			wantField:  "shippingMode",
			wantReason: "unknown shipping mode",
		},
		{
			name:       "unknown service level",
			mutate:     func(r *models.PricingRequest) { r.ServiceLevel = "Platinum" },
			wantField:  "serviceLevel",
			wantReason: "unknown service level",
		},
		{
			name:       "negative selling price",
			mutate:     func(r *models.PricingRequest) { r.SellingPrice = decimal.NewFromInt(-1) },
			wantField:  "sellingPrice",
			wantReason: "must not be negative",
		},
		{
			name:       "negative weight",
			mutate:     func(r *models.PricingRequest) { r.Weight = decimal.RequireFromString("-0.1") },
			wantField:  "weight",
			wantReason: "must not be negative",
		},
	}

	cat := testCatalog(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := ValidatePricingRequest(&req, cat)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var validationErr *errors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
			assert.Equal(t, tt.wantReason, validationErr.Reason)
		})
	}
}

// Enum fields are checked before numeric fields, so with multiple failures
// the first reported field follows the declared order, deterministically.
func TestValidatePricingRequest_FirstFieldIsDeterministic(t *testing.T) {
	cat := testCatalog(t)

	for i := 0; i < 20; i++ {
		req := validRequest()
		req.ShippingMode = "Teleport"
		req.SellingPrice = decimal.NewFromInt(-5)
		req.Weight = decimal.NewFromInt(-1)

		var validationErr *errors.ValidationError
		require.ErrorAs(t, ValidatePricingRequest(&req, cat), &validationErr)
		assert.Equal(t, "shippingMode", validationErr.Field)
		assert.Len(t, validationErr.Fields, 3)
	}
}

// Zero is a legal value for both numeric fields.
func TestValidatePricingRequest_ZeroAmounts(t *testing.T) {
	req := validRequest()
	req.SellingPrice = decimal.Zero
	req.Weight = decimal.Zero

	assert.NoError(t, ValidatePricingRequest(&req, testCatalog(t)))
}
