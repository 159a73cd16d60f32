package repositories

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"profitcalc/internal/catalog"
	"profitcalc/internal/errors"
	"profitcalc/internal/models"
)

// CatalogRepository loads the rate catalog from Postgres. It implements
// catalog.Source.
type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// Load reads every rate table and assembles a validated catalog. A fresh
// version identifier is assigned per load.
func (r *CatalogRepository) Load(ctx context.Context) (*catalog.Catalog, error) {
	var (
		referral []models.ReferralRateRow
		weights  []models.WeightBandRow
		closing  []models.ClosingFeeRow
		pickPack []models.PickPackRateRow
	)

	db := r.db.WithContext(ctx)
	for _, q := range []struct {
		table string
		dest  interface{}
	}{
		{"referral rates", &referral},
		{"weight bands", &weights},
		{"closing fees", &closing},
		{"pick & pack rates", &pickPack},
	} {
		if err := db.Find(q.dest).Error; err != nil {
			return nil, &errors.CatalogLoadError{
				Problems: []string{fmt.Sprintf("load %s: %v", q.table, err)},
			}
		}
	}

	tables := catalog.Tables{
		ReferralRules: make(map[string]catalog.ReferralRule),
		WeightBands:   make(map[catalog.Lane][]catalog.AmountBand),
		ClosingFees:   make(map[string][]catalog.AmountBand),
		PickPackRates: make(map[catalog.SizeMode]decimal.Decimal, len(pickPack)),
	}

	for _, row := range referral {
		rule := tables.ReferralRules[row.Category]
		rule.Tiers = append(rule.Tiers, catalog.RateTier{
			Lower:   row.PriceLower,
			Upper:   row.PriceUpper,
			Percent: row.Percent,
		})
		tables.ReferralRules[row.Category] = rule
	}

	for _, row := range weights {
		lane := catalog.Lane{Location: row.Location, ShippingMode: row.ShippingMode}
		tables.WeightBands[lane] = append(tables.WeightBands[lane], catalog.AmountBand{
			Lower:  row.WeightLower,
			Upper:  row.WeightUpper,
			Amount: row.Amount,
		})
	}

	for _, row := range closing {
		tables.ClosingFees[row.Category] = append(tables.ClosingFees[row.Category], catalog.AmountBand{
			Lower:  row.PriceLower,
			Upper:  row.PriceUpper,
			Amount: row.Amount,
		})
	}

	for _, row := range pickPack {
		key := catalog.SizeMode{ProductSize: row.ProductSize, ShippingMode: row.ShippingMode}
		tables.PickPackRates[key] = row.Amount
	}

	return catalog.New("", tables)
}

// ReplaceAll swaps the persisted rate tables for the given ones inside a
// single transaction. Used by the seed command.
func (r *CatalogRepository) ReplaceAll(ctx context.Context, tables catalog.Tables) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&models.ReferralRateRow{},
			&models.WeightBandRow{},
			&models.ClosingFeeRow{},
			&models.PickPackRateRow{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}

		for category, rule := range tables.ReferralRules {
			for _, tier := range rule.Tiers {
				row := models.ReferralRateRow{
					Category:   category,
					PriceLower: tier.Lower,
					PriceUpper: tier.Upper,
					Percent:    tier.Percent,
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}

		for lane, bands := range tables.WeightBands {
			for _, band := range bands {
				row := models.WeightBandRow{
					Location:     lane.Location,
					ShippingMode: lane.ShippingMode,
					WeightLower:  band.Lower,
					WeightUpper:  band.Upper,
					Amount:       band.Amount,
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}

		for category, bands := range tables.ClosingFees {
			for _, band := range bands {
				row := models.ClosingFeeRow{
					Category:   category,
					PriceLower: band.Lower,
					PriceUpper: band.Upper,
					Amount:     band.Amount,
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}

		for key, amount := range tables.PickPackRates {
			row := models.PickPackRateRow{
				ProductSize:  key.ProductSize,
				ShippingMode: key.ShippingMode,
				Amount:       amount,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
