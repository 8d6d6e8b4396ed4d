package service

import (
	"time"

	"github.com/gestar-ia/reconcile-service/internal/auth"
	"github.com/gestar-ia/reconcile-service/internal/config"
	"github.com/gestar-ia/reconcile-service/internal/domain"
	apperrors "github.com/gestar-ia/reconcile-service/pkg/util"
)

// serviceAccount is one env-configured API caller.
type serviceAccount struct {
	clientID   string
	secretHash string
	role       domain.ServiceRole
}

// AuthService authenticates service accounts and issues tokens. Accounts
// come from configuration; there is no user store behind this service.
type AuthService struct {
	tokens   *auth.TokenManager
	accounts []serviceAccount
}

// NewAuthService constructs the service from configuration.
func NewAuthService(cfg config.AuthConfig) *AuthService {
	accounts := make([]serviceAccount, 0, 2)
	if cfg.AdminClientID != "" && cfg.AdminSecretHash != "" {
		accounts = append(accounts, serviceAccount{
			clientID:   cfg.AdminClientID,
			secretHash: cfg.AdminSecretHash,
			role:       domain.RoleAdmin,
		})
	}
	if cfg.ReconcilerClientID != "" && cfg.ReconcilerSecretHash != "" {
		accounts = append(accounts, serviceAccount{
			clientID:   cfg.ReconcilerClientID,
			secretHash: cfg.ReconcilerSecretHash,
			role:       domain.RoleReconciler,
		})
	}
	return &AuthService{
		tokens:   auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		accounts: accounts,
	}
}

// TokenManager exposes the manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}

// Login verifies a client id/secret pair and issues an access token.
func (s *AuthService) Login(clientID, secret string) (string, time.Time, error) {
	for _, account := range s.accounts {
		if account.clientID != clientID {
			continue
		}
		if err := auth.CompareSecret(account.secretHash, secret); err != nil {
			return "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return s.tokens.GenerateToken(account.clientID, account.role)
	}
	return "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
}
