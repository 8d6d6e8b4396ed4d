package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/gestar-ia/reconcile-service/internal/api/http"
	"github.com/gestar-ia/reconcile-service/internal/api/http/handlers"
	"github.com/gestar-ia/reconcile-service/internal/auth"
	"github.com/gestar-ia/reconcile-service/internal/config"
	"github.com/gestar-ia/reconcile-service/internal/events"
	"github.com/gestar-ia/reconcile-service/internal/observability"
	"github.com/gestar-ia/reconcile-service/internal/persistence"
	"github.com/gestar-ia/reconcile-service/internal/repository"
	"github.com/gestar-ia/reconcile-service/internal/service"
	"github.com/gestar-ia/reconcile-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	catalogRepo := repository.NewCatalogRepository(pg.PoolHandle())
	associationCache := repository.NewAssociationCache(redis.Client, cfg.Catalog.AssociationCacheTTL())

	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()

	telemetryService := service.NewTelemetryService(dispatcher, logger, metrics)
	worker.StartTelemetryWorker(telemetryService)

	reconcileService := service.NewReconcileService(service.ReconcileDependencies{
		CatalogRepo:      catalogRepo,
		AssociationCache: associationCache,
		Dispatcher:       dispatcher,
		Logger:           logger,
	})
	if err := reconcileService.Refresh(ctx); err != nil {
		logger.Warn("initial catalog load failed; serving unready until refresh succeeds", zap.Error(err))
	}
	worker.StartCatalogRefreshWorker(ctx, reconcileService, cfg.Catalog.RefreshInterval(), logger)

	authService := service.NewAuthService(cfg.Auth)
	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager())

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, reconcileService),
		Auth:           handlers.NewAuthHandler(authService),
		Reconcile:      handlers.NewReconcileHandler(reconcileService),
		Catalogs:       handlers.NewCatalogsHandler(reconcileService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
