package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/gestar-ia/reconcile-service/internal/events"
	"github.com/gestar-ia/reconcile-service/internal/observability"
)

// TelemetryService turns domain events into logs and counters.
type TelemetryService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// NewTelemetryService creates the service.
func NewTelemetryService(dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics) *TelemetryService {
	return &TelemetryService{
		dispatcher: dispatcher,
		logger:     logger,
		metrics:    metrics,
	}
}

// RegisterHandlers subscribes to events.
func (t *TelemetryService) RegisterHandlers() {
	if t.dispatcher == nil {
		return
	}
	t.dispatcher.Subscribe(events.EventCatalogRefreshed, t.handleCatalogRefreshed)
	t.dispatcher.Subscribe(events.EventDraftReconciled, t.handleDraftReconciled)
}

func (t *TelemetryService) handleCatalogRefreshed(ctx context.Context, event events.Event) error {
	t.logger.Info("CatalogRefreshed", zap.Any("payload", event.Payload))
	t.metrics.RecordCatalogRefresh()
	return nil
}

func (t *TelemetryService) handleDraftReconciled(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.DraftReconciledPayload)
	if !ok {
		return nil
	}
	t.logger.Info("DraftReconciled",
		zap.Int("warnings", payload.Warnings),
		zap.String("completeness", string(payload.Completeness)),
		zap.Bool("user_resolved", payload.UserResolved),
	)
	t.metrics.RecordReconciliation(payload.Warnings, payload.Completeness)
	return nil
}
