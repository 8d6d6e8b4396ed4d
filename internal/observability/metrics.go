package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/gestar-ia/reconcile-service/internal/domain"
)

// Metrics provides basic in-memory counters.
type Metrics struct {
	mu                sync.Mutex
	requestCount      map[string]int64
	errorCount        map[string]int64
	reconcileCount    int64
	warningCount      int64
	completenessCount map[domain.Completeness]int64
	refreshCount      int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requestCount:      make(map[string]int64),
		errorCount:        make(map[string]int64),
		completenessCount: make(map[domain.Completeness]int64),
	}
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + strconv.Itoa(status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[key]++
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + code
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[key]++
}

// RecordReconciliation tracks one draft reconciliation outcome.
func (m *Metrics) RecordReconciliation(warnings int, completeness domain.Completeness) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reconcileCount++
	m.warningCount += int64(warnings)
	m.completenessCount[completeness]++
}

// RecordCatalogRefresh tracks catalog snapshot swaps.
func (m *Metrics) RecordCatalogRefresh() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshCount++
}

// Snapshot returns a copy of the counters for diagnostics.
func (m *Metrics) Snapshot() map[string]int64 {
	if m == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[string]int64{
		"reconciliations":   m.reconcileCount,
		"warnings":          m.warningCount,
		"catalog_refreshes": m.refreshCount,
	}
	for label, count := range m.completenessCount {
		out["completeness_"+string(label)] = count
	}
	return out
}
