package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestar-ia/reconcile-service/internal/api/http/handlers"
	"github.com/gestar-ia/reconcile-service/internal/auth"
	"github.com/gestar-ia/reconcile-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Reconcile      *handlers.ReconcileHandler
	Catalogs       *handlers.CatalogsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/token", cfg.Auth.Token)

	v1 := app.Group("/api/v1", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleAdmin, domain.RoleReconciler))
	v1.Post("/reconcile", cfg.Reconcile.Reconcile)
	v1.Post("/turns", cfg.Reconcile.ApplyTurn)
	v1.Get("/catalogs", cfg.Catalogs.Names)

	admin := v1.Group("", auth.RequireRole(domain.RoleAdmin))
	admin.Post("/catalogs/refresh", cfg.Catalogs.Refresh)
}
