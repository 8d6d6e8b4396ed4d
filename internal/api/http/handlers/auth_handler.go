package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestar-ia/reconcile-service/internal/api/dto"
	"github.com/gestar-ia/reconcile-service/internal/service"
	apperrors "github.com/gestar-ia/reconcile-service/pkg/util"
)

// AuthHandler issues service-account tokens.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler returns a new handler instance.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Token exchanges client credentials for an access token.
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var req dto.TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body", nil)
	}
	if req.ClientID == "" || req.ClientSecret == "" {
		return apperrors.NewValidationError("client_id and client_secret are required", nil)
	}

	token, expiresAt, err := h.auth.Login(req.ClientID, req.ClientSecret)
	if err != nil {
		return err
	}

	return c.JSON(dto.TokenResponse{AccessToken: token, ExpiresAt: expiresAt})
}
