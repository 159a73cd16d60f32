// Package routes defines the API routing configuration.
package routes

import (
	"github.com/gofiber/fiber/v2"

	"profitcalc/internal/catalog"
	"profitcalc/internal/handlers"
	"profitcalc/internal/services/calculator"
)

// SetupRoutes wires the calculator and admin endpoints.
func SetupRoutes(app *fiber.App, store *catalog.Store, calcService calculator.Service) {
	calcHandler := handlers.NewCalculatorHandler(calcService)
	adminHandler := handlers.NewCatalogAdminHandler(store)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to the Profitability Calculator API",
			"version": "1.0.0",
			"docs":    "/api/v1",
		})
	})

	api := app.Group("/api/v1")
	api.Post("/profitability-calculator", calcHandler.Calculate)
	api.Get("/profitability-calculator/options", calcHandler.Options)

	admin := api.Group("/admin")
	admin.Post("/catalog/reload", adminHandler.ReloadCatalog)
	admin.Get("/catalog", adminHandler.GetCatalog)
}
