package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/gestar-ia/reconcile-service/internal/service"
)

// StartCatalogRefreshWorker reloads catalogs on a fixed interval so the
// served index keeps tracking master-data edits. A failed refresh keeps
// the previous snapshot in place.
func StartCatalogRefreshWorker(ctx context.Context, reconciler *service.ReconcileService, interval time.Duration, logger *zap.Logger) {
	if reconciler == nil || interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := reconciler.Refresh(ctx); err != nil {
					logger.Warn("catalog refresh failed; keeping previous snapshot", zap.Error(err))
				}
			}
		}
	}()
}
