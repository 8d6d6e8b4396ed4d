package worker

import (
	"github.com/gestar-ia/reconcile-service/internal/service"
)

// StartTelemetryWorker registers telemetry event handlers.
func StartTelemetryWorker(telemetryService *service.TelemetryService) {
	if telemetryService == nil {
		return
	}
	telemetryService.RegisterHandlers()
}
