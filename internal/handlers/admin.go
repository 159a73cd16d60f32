package handlers

import (
	stderrors "errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"profitcalc/internal/catalog"
	"profitcalc/internal/errors"
	"profitcalc/internal/utils/response"
)

// CatalogAdminHandler exposes the operator surface for the rate catalog.
type CatalogAdminHandler struct {
	store *catalog.Store
}

func NewCatalogAdminHandler(store *catalog.Store) *CatalogAdminHandler {
	return &CatalogAdminHandler{store: store}
}

// ReloadCatalog rebuilds the catalog from its source and swaps it in
// atomically. On failure the previous catalog stays in service and the
// problems are reported.
func (h *CatalogAdminHandler) ReloadCatalog(c *fiber.Ctx) error {
	cat, err := h.store.Reload(c.Context())
	if err != nil {
		log.Printf("catalog reload failed: %v", err)

		var loadErr *errors.CatalogLoadError
		if stderrors.As(err, &loadErr) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"code":     "CATALOG_LOAD_FAILED",
				"error":    "catalog reload failed, previous catalog still in service",
				"problems": loadErr.Problems,
			})
		}
		return response.ServerError(c, "catalog reload failed")
	}

	log.Printf("catalog reloaded, version %s", cat.Version())
	return response.Success(c, "Catalog reloaded", fiber.Map{
		"version":  cat.Version(),
		"loadedAt": cat.LoadedAt(),
	})
}

// GetCatalog reports the catalog currently in service.
func (h *CatalogAdminHandler) GetCatalog(c *fiber.Ctx) error {
	cat := h.store.Current()
	if cat == nil {
		return response.Fault(c, fiber.StatusServiceUnavailable, "CATALOG_UNAVAILABLE", "rate catalog is not loaded")
	}

	return c.JSON(fiber.Map{
		"version":    cat.Version(),
		"loadedAt":   cat.LoadedAt(),
		"tables":     cat.TableSizes(),
		"categories": cat.Categories(),
	})
}
