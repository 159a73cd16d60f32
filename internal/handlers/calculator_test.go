package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profitcalc/internal/errors"
	"profitcalc/internal/models"
	"profitcalc/internal/services/calculator"
)

type stubService struct {
	breakdown *models.FeeBreakdown
	err       error
	options   calculator.Options
}

func (s *stubService) Calculate(context.Context, models.PricingRequest) (*models.FeeBreakdown, error) {
	return s.breakdown, s.err
}

func (s *stubService) Options() calculator.Options {
	return s.options
}

func newCalcApp(svc calculator.Service) *fiber.App {
	app := fiber.New()
	h := NewCalculatorHandler(svc)
	app.Post("/api/v1/profitability-calculator", h.Calculate)
	app.Get("/api/v1/profitability-calculator/options", h.Options)
	return app
}

func postCalculate(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/profitability-calculator", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

const validBody = `{
	"productCategory": "Books",
	"productSize": "Standard",
	"location": "Local",
	"shippingMode": "Easy Ship",
	"serviceLevel": "Standard",
	"sellingPrice": 500,
	"weight": 0.3
}`

func TestCalculate_Success(t *testing.T) {
	breakdown := &models.FeeBreakdown{
		ReferralFee:       decimal.RequireFromString("35"),
		WeightHandlingFee: decimal.RequireFromString("20"),
		ClosingFee:        decimal.RequireFromString("10"),
		PickAndPackFee:    decimal.RequireFromString("15"),
		TotalFees:         decimal.RequireFromString("80"),
		NetEarnings:       decimal.RequireFromString("420"),
	}
	app := newCalcApp(&stubService{breakdown: breakdown})

	resp := postCalculate(t, app, validBody)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// The client reads the breakdown fields off the response root.
	body := decodeBody(t, resp)
	assert.Equal(t, 35.0, body["referralFee"])
	assert.Equal(t, 20.0, body["weightHandlingFee"])
	assert.Equal(t, 10.0, body["closingFee"])
	assert.Equal(t, 15.0, body["pickAndPackFee"])
	assert.Equal(t, 80.0, body["totalFees"])
	assert.Equal(t, 420.0, body["netEarnings"])
}

func TestCalculate_ValidationFault(t *testing.T) {
	app := newCalcApp(&stubService{err: &errors.ValidationError{
		Field:  "productCategory",
		Reason: "unknown product category",
		Fields: map[string]string{"productCategory": "unknown product category"},
	}})

	resp := postCalculate(t, app, validBody)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "VALIDATION_FAILED", body["code"])
	assert.Contains(t, body["error"], "productCategory")
	assert.Contains(t, body, "fields")
}

func TestCalculate_ConfigurationFault(t *testing.T) {
	app := newCalcApp(&stubService{err: &errors.CalculationError{
		Component: errors.ComponentWeightHandling,
		Key:       "Regional/FBA at weight 2kg",
	}})

	resp := postCalculate(t, app, validBody)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "RATE_NOT_CONFIGURED", body["code"])
	assert.Contains(t, body["error"], "weightHandlingFee")
}

func TestCalculate_MalformedBody(t *testing.T) {
	app := newCalcApp(&stubService{})

	resp := postCalculate(t, app, `{"sellingPrice": "not a number"`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_FAILED", decodeBody(t, resp)["code"])
}

func TestOptions(t *testing.T) {
	app := newCalcApp(&stubService{options: calculator.Options{
		CatalogVersion:    "v1",
		ProductCategories: []string{"Books"},
		ProductSizes:      models.ProductSizes(),
		Locations:         models.Locations(),
		ShippingModes:     models.ShippingModes(),
		ServiceLevels:     models.ServiceLevels(),
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profitability-calculator/options", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "v1", body["catalogVersion"])
	assert.Equal(t, []interface{}{"Books"}, body["productCategories"])
	assert.Len(t, body["shippingModes"], 3)
}
