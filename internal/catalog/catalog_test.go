package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profitcalc/internal/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func testTables() Tables {
	return Tables{
		ReferralRules: map[string]ReferralRule{
			"Books": {Tiers: []RateTier{
				{Lower: dec("0"), Percent: dec("7")},
			}},
			"Baby - Hardlines": {Tiers: []RateTier{
				{Lower: dec("0"), Upper: decPtr("300"), Percent: dec("5.5")},
				{Lower: dec("300"), Upper: decPtr("1000"), Percent: dec("8")},
				{Lower: dec("1000"), Percent: dec("9.5")},
			}},
		},
		WeightBands: map[Lane][]AmountBand{
			{Location: models.LocationLocal, ShippingMode: models.ModeEasyShip}: {
				{Lower: dec("0"), Upper: decPtr("0.5"), Amount: dec("20")},
				{Lower: dec("0.5"), Upper: decPtr("1"), Amount: dec("29")},
				{Lower: dec("1"), Amount: dec("41")},
			},
		},
		ClosingFees: map[string][]AmountBand{
			"Books": {
				{Lower: dec("0"), Upper: decPtr("1000"), Amount: dec("10")},
				{Lower: dec("1000"), Amount: dec("25")},
			},
			"Baby - Hardlines": {
				{Lower: dec("0"), Amount: dec("12")},
			},
		},
		PickPackRates: map[SizeMode]decimal.Decimal{
			{ProductSize: models.SizeStandard, ShippingMode: models.ModeEasyShip}:   dec("15"),
			{ProductSize: models.SizeHeavyBulky, ShippingMode: models.ModeEasyShip}: dec("100"),
		},
	}
}

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	cat, err := New("test", testTables())
	require.NoError(t, err)
	return cat
}

func TestNew_AssignsVersion(t *testing.T) {
	cat, err := New("", testTables())
	require.NoError(t, err)
	assert.NotEmpty(t, cat.Version())
	assert.False(t, cat.LoadedAt().IsZero())

	named, err := New("2026-08", testTables())
	require.NoError(t, err)
	assert.Equal(t, "2026-08", named.Version())
}

func TestCatalog_Categories(t *testing.T) {
	cat := newTestCatalog(t)

	assert.Equal(t, []string{"Baby - Hardlines", "Books"}, cat.Categories())
	assert.True(t, cat.HasCategory("Books"))
	assert.False(t, cat.HasCategory("Furniture"))
}

func TestReferralRule_RateFor(t *testing.T) {
	cat := newTestCatalog(t)
	rule, ok := cat.LookupReferralRule("Baby - Hardlines")
	require.True(t, ok)

	tests := []struct {
		name  string
		price string
		want  string
	}{
		{"first tier", "0", "5.5"},
		{"inside first tier", "299.99", "5.5"},
		{"lower bound resolves to next tier", "300", "8"},
		{"inside middle tier", "999.99", "8"},
		{"unbounded top tier", "250000", "9.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, ok := rule.RateFor(dec(tt.price))
			require.True(t, ok)
			assert.True(t, rate.Equal(dec(tt.want)), "got %s", rate)
		})
	}
}

func TestLookupWeightBand(t *testing.T) {
	cat := newTestCatalog(t)

	tests := []struct {
		name   string
		weight string
		want   string
	}{
		{"zero weight", "0", "20"},
		{"inside first band", "0.3", "20"},
		{"lower bound maps to its own band", "0.5", "29"},
		{"just below a boundary", "0.999", "29"},
		{"unbounded top band", "80", "41"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, ok := cat.LookupWeightBand(models.LocationLocal, models.ModeEasyShip, dec(tt.weight))
			require.True(t, ok)
			assert.True(t, amount.Equal(dec(tt.want)), "got %s", amount)
		})
	}

	t.Run("unconfigured lane", func(t *testing.T) {
		_, ok := cat.LookupWeightBand(models.LocationIXD, models.ModeFBA, dec("1"))
		assert.False(t, ok)
	})
}

func TestLookupWeightBand_Monotonic(t *testing.T) {
	cat := newTestCatalog(t)

	prev := decimal.Zero
	for _, w := range []string{"0", "0.25", "0.5", "0.75", "1", "3", "10"} {
		amount, ok := cat.LookupWeightBand(models.LocationLocal, models.ModeEasyShip, dec(w))
		require.True(t, ok, "weight %s", w)
		assert.True(t, amount.GreaterThanOrEqual(prev), "fee decreased at weight %s", w)
		prev = amount
	}
}

func TestLookupClosingBand(t *testing.T) {
	cat := newTestCatalog(t)

	amount, ok := cat.LookupClosingBand(dec("500"), "Books")
	require.True(t, ok)
	assert.True(t, amount.Equal(dec("10")))

	amount, ok = cat.LookupClosingBand(dec("1000"), "Books")
	require.True(t, ok)
	assert.True(t, amount.Equal(dec("25")))

	_, ok = cat.LookupClosingBand(dec("500"), "Furniture")
	assert.False(t, ok)
}

func TestLookupPickPack(t *testing.T) {
	cat := newTestCatalog(t)

	amount, ok := cat.LookupPickPack(models.SizeStandard, models.ModeEasyShip)
	require.True(t, ok)
	assert.True(t, amount.Equal(dec("15")))

	_, ok = cat.LookupPickPack(models.SizeStandard, models.ModeSelfShip)
	assert.False(t, ok)
}

func TestNew_SortsUnorderedBands(t *testing.T) {
	tables := testTables()
	tables.WeightBands[Lane{Location: models.LocationLocal, ShippingMode: models.ModeEasyShip}] = []AmountBand{
		{Lower: dec("1"), Amount: dec("41")},
		{Lower: dec("0"), Upper: decPtr("0.5"), Amount: dec("20")},
		{Lower: dec("0.5"), Upper: decPtr("1"), Amount: dec("29")},
	}

	cat, err := New("", tables)
	require.NoError(t, err)

	amount, ok := cat.LookupWeightBand(models.LocationLocal, models.ModeEasyShip, dec("0.7"))
	require.True(t, ok)
	assert.True(t, amount.Equal(dec("29")))
}
