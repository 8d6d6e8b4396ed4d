package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestar-ia/reconcile-service/internal/api/dto"
	"github.com/gestar-ia/reconcile-service/internal/service"
	apperrors "github.com/gestar-ia/reconcile-service/pkg/util"
)

// ReconcileHandler exposes draft reconciliation endpoints.
type ReconcileHandler struct {
	reconciler *service.ReconcileService
}

// NewReconcileHandler returns a new handler instance.
func NewReconcileHandler(reconciler *service.ReconcileService) *ReconcileHandler {
	return &ReconcileHandler{reconciler: reconciler}
}

// Reconcile maps a draft to canonical catalog ids.
func (h *ReconcileHandler) Reconcile(c *fiber.Ctx) error {
	var req dto.DraftRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body", nil)
	}

	result, err := h.reconciler.Reconcile(c.UserContext(), req.ToDomain())
	if err != nil {
		return err
	}

	return c.JSON(dto.ReconcileResponse{
		IDs:          dto.NewMappedIDsResponse(result.IDs),
		Warnings:     result.Warnings,
		Completeness: result.Completeness,
	})
}

// ApplyTurn merges one conversation turn into the caller-held draft and
// returns the updated draft with its reconciliation outcome.
func (h *ReconcileHandler) ApplyTurn(c *fiber.Ctx) error {
	var req dto.TurnRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body", nil)
	}

	draft := req.Draft.ToDomain()
	result, err := h.reconciler.ApplyTurn(c.UserContext(), &draft, req.Extracted.ToDomain(), req.Message)
	if err != nil {
		return err
	}

	return c.JSON(dto.TurnResponse{
		Draft:        dto.NewDraftResponse(draft),
		IDs:          dto.NewMappedIDsResponse(result.IDs),
		Warnings:     result.Warnings,
		Completeness: result.Completeness,
	})
}
