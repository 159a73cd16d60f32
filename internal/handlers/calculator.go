package handlers

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"

	"profitcalc/internal/errors"
	"profitcalc/internal/models"
	"profitcalc/internal/services/calculator"
	"profitcalc/internal/utils/response"
)

type CalculatorHandler struct {
	service calculator.Service
}

func NewCalculatorHandler(svc calculator.Service) *CalculatorHandler {
	return &CalculatorHandler{service: svc}
}

// Calculate computes the fee breakdown for a product listing. The client
// reads the breakdown fields off the response root, so success responses
// are the bare breakdown object.
func (h *CalculatorHandler) Calculate(c *fiber.Ctx) error {
	var req models.PricingRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Fault(c, fiber.StatusBadRequest, "VALIDATION_FAILED", "Invalid request format")
	}

	breakdown, err := h.service.Calculate(c.Context(), req)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(breakdown.Response())
}

// Options returns the enumerations the form can offer, sourced from the
// catalog in service.
func (h *CalculatorHandler) Options(c *fiber.Ctx) error {
	return c.JSON(h.service.Options())
}

// mapError is the single translation point from the internal error kinds to
// the response contract: validation failures are the caller's fault,
// calculation failures mean the catalog is missing a rule.
func (h *CalculatorHandler) mapError(c *fiber.Ctx, err error) error {
	var validationErr *errors.ValidationError
	if stderrors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":   "VALIDATION_FAILED",
			"error":  validationErr.Error(),
			"fields": validationErr.Fields,
		})
	}

	var calcErr *errors.CalculationError
	if stderrors.As(err, &calcErr) {
		return response.Fault(c, fiber.StatusInternalServerError, "RATE_NOT_CONFIGURED", calcErr.Error())
	}

	var domainErr *errors.DomainError
	if stderrors.As(err, &domainErr) {
		return response.Fault(c, fiber.StatusServiceUnavailable, domainErr.Code, domainErr.Message)
	}

	return response.ServerError(c, "Internal server error")
}
