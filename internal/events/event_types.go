package events

import (
	"time"

	"github.com/gestar-ia/reconcile-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventCatalogRefreshed EventType = "catalog_refreshed"
	EventDraftReconciled  EventType = "draft_reconciled"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// CatalogRefreshedPayload describes a snapshot swap.
type CatalogRefreshedPayload struct {
	Plants            int    `json:"plants"`
	Divisions         int    `json:"divisions"`
	Areas             int    `json:"areas"`
	Categories        int    `json:"categories"`
	Subcategories     int    `json:"subcategories"`
	Priorities        int    `json:"priorities"`
	States            int    `json:"states"`
	Users             int    `json:"users"`
	AssociationSource string `json:"association_source"`
}

// DraftReconciledPayload describes one reconciliation outcome.
type DraftReconciledPayload struct {
	Warnings     int                 `json:"warnings"`
	Completeness domain.Completeness `json:"completeness"`
	UserResolved bool                `json:"user_resolved"`
}
