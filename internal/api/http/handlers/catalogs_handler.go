package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestar-ia/reconcile-service/internal/api/dto"
	"github.com/gestar-ia/reconcile-service/internal/service"
)

// CatalogsHandler exposes catalog name lists and the refresh endpoint.
type CatalogsHandler struct {
	reconciler *service.ReconcileService
}

// NewCatalogsHandler returns a new handler instance.
func NewCatalogsHandler(reconciler *service.ReconcileService) *CatalogsHandler {
	return &CatalogsHandler{reconciler: reconciler}
}

// Names lists the deduplicated catalog display names.
func (h *CatalogsHandler) Names(c *fiber.Ctx) error {
	names, err := h.reconciler.CatalogNames()
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCatalogNamesResponse(*names))
}

// Refresh reloads the catalogs and swaps in a new index snapshot.
func (h *CatalogsHandler) Refresh(c *fiber.Ctx) error {
	if err := h.reconciler.Refresh(c.UserContext()); err != nil {
		return err
	}
	loadedAt, _ := h.reconciler.LoadedAt()
	return c.JSON(fiber.Map{
		"status":    "refreshed",
		"loaded_at": loadedAt,
	})
}
