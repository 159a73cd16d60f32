package validation

import (
	"profitcalc/internal/catalog"
	"profitcalc/internal/errors"
	"profitcalc/internal/models"
)

// PricingRequest validates a calculation request against the catalog.
// Checks run in a fixed order: enum fields first (category membership comes
// from the catalog, the rest are closed enumerations), then sellingPrice,
// then weight. All failing fields are collected.
func (v *Validator) PricingRequest(req *models.PricingRequest, cat *catalog.Catalog) {
	v.Required("productCategory", req.ProductCategory)
	v.Check(cat.HasCategory(req.ProductCategory), "productCategory", "unknown product category")
	v.Check(req.ProductSize.Valid(), "productSize", "unknown product size")
	v.Check(req.Location.Valid(), "location", "unknown location")
	v.Check(req.ShippingMode.Valid(), "shippingMode", "unknown shipping mode")
	v.Check(req.ServiceLevel.Valid(), "serviceLevel", "unknown service level")
	v.NonNegative("sellingPrice", req.SellingPrice)
	v.NonNegative("weight", req.Weight)
}

// ValidatePricingRequest runs PricingRequest and folds the result into the
// error taxonomy: nil for a fully valid request, otherwise a
// *errors.ValidationError naming the first failing field.
func ValidatePricingRequest(req *models.PricingRequest, cat *catalog.Catalog) error {
	v := New()
	v.PricingRequest(req, cat)
	if v.Valid() {
		return nil
	}
	field, reason := v.First()
	return &errors.ValidationError{
		Field:  field,
		Reason: reason,
		Fields: v.Errors,
	}
}
