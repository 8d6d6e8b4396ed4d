package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gestar-ia/reconcile-service/internal/domain"
	"github.com/gestar-ia/reconcile-service/internal/events"
	"github.com/gestar-ia/reconcile-service/internal/reconcile"
	"github.com/gestar-ia/reconcile-service/internal/repository"
	apperrors "github.com/gestar-ia/reconcile-service/pkg/util"
)

// snapshotState bundles one catalog snapshot with the index built from it.
// States are immutable and swapped whole, so in-flight resolutions always
// observe a consistent catalog load.
type snapshotState struct {
	snapshot domain.Snapshot
	index    *reconcile.Index
	loadedAt time.Time
}

// ReconcileResult is the full outcome of reconciling one draft.
type ReconcileResult struct {
	IDs          domain.MappedIDs
	Warnings     []string
	Completeness domain.Completeness
}

// ReconcileService owns the current catalog snapshot and exposes the
// reconciliation entry points.
type ReconcileService struct {
	catalogs   repository.CatalogRepository
	cache      *repository.AssociationCache
	dispatcher events.Dispatcher
	logger     *zap.Logger
	dates      *reconcile.DateResolver

	current atomic.Pointer[snapshotState]
}

// ReconcileDependencies bundles collaborators for the service.
type ReconcileDependencies struct {
	CatalogRepo      repository.CatalogRepository
	AssociationCache *repository.AssociationCache
	Dispatcher       events.Dispatcher
	Logger           *zap.Logger
	Clock            func() time.Time
}

// NewReconcileService constructs the service. No catalogs are loaded yet;
// call Refresh before serving resolutions.
func NewReconcileService(deps ReconcileDependencies) *ReconcileService {
	return &ReconcileService{
		catalogs:   deps.CatalogRepo,
		cache:      deps.AssociationCache,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
		dates:      reconcile.NewDateResolver(deps.Clock),
	}
}

// Refresh loads a fresh catalog snapshot, rebuilds the index and swaps it
// in atomically. The association table comes from the Redis cache when
// warm, falling back to the database; a cold load is written back to the
// cache best-effort.
func (s *ReconcileService) Refresh(ctx context.Context) error {
	snapshot, err := s.catalogs.LoadSnapshot(ctx)
	if err != nil {
		return err
	}

	source := "cache"
	associations, err := s.cache.Get(ctx)
	if err != nil {
		s.logger.Warn("association cache read failed", zap.Error(err))
		associations = nil
	}
	if associations == nil {
		source = "database"
		associations, err = s.catalogs.LoadAssociationTable(ctx)
		if err != nil {
			s.logger.Warn("association table load failed; resolving without user associations", zap.Error(err))
			associations = domain.AssociationTable{}
			source = "none"
		} else if err := s.cache.Set(ctx, associations); err != nil {
			s.logger.Warn("association cache write failed", zap.Error(err))
		}
	}

	state := &snapshotState{
		snapshot: *snapshot,
		index:    reconcile.BuildIndex(*snapshot, associations),
		loadedAt: time.Now(),
	}
	s.current.Store(state)

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventCatalogRefreshed,
		Timestamp: time.Now(),
		Payload: events.CatalogRefreshedPayload{
			Plants:            len(snapshot.Plants),
			Divisions:         len(snapshot.Divisions),
			Areas:             len(snapshot.Areas),
			Categories:        len(snapshot.Categories),
			Subcategories:     len(snapshot.Subcategories),
			Priorities:        len(snapshot.Priorities),
			States:            len(snapshot.States),
			Users:             len(snapshot.Users),
			AssociationSource: source,
		},
	})
	return nil
}

// Reconcile maps a draft to canonical ids and scores its completeness.
func (s *ReconcileService) Reconcile(ctx context.Context, draft domain.TicketDraft) (*ReconcileResult, error) {
	state := s.current.Load()
	if state == nil {
		return nil, apperrors.NewUnavailable("CATALOGS_NOT_LOADED", "master catalogs have not been loaded")
	}

	ids, warnings := reconcile.MapEntities(draft, state.index, state.snapshot)
	result := &ReconcileResult{
		IDs:          ids,
		Warnings:     warnings,
		Completeness: reconcile.ScoreCompleteness(draft, ids),
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventDraftReconciled,
		Timestamp: time.Now(),
		Payload: events.DraftReconciledPayload{
			Warnings:     len(warnings),
			Completeness: result.Completeness,
			UserResolved: ids.SuggestedAssigneeID != nil,
		},
	})
	return result, nil
}

// ApplyTurn merges one conversation turn into the caller-held draft and
// reconciles the updated draft.
func (s *ReconcileService) ApplyTurn(ctx context.Context, draft *domain.TicketDraft, update reconcile.TurnUpdate, rawMessage string) (*ReconcileResult, error) {
	state := s.current.Load()
	if state == nil {
		return nil, apperrors.NewUnavailable("CATALOGS_NOT_LOADED", "master catalogs have not been loaded")
	}

	reconcile.ApplyTurn(draft, update, rawMessage, state.index, s.dates)
	return s.Reconcile(ctx, *draft)
}

// CatalogNames returns the deduplicated display-name lists of the current
// snapshot for the upstream prompt builder.
func (s *ReconcileService) CatalogNames() (*reconcile.CatalogNames, error) {
	state := s.current.Load()
	if state == nil {
		return nil, apperrors.NewUnavailable("CATALOGS_NOT_LOADED", "master catalogs have not been loaded")
	}
	names := reconcile.CollectCatalogNames(state.snapshot)
	return &names, nil
}

// Ready reports whether a snapshot has been loaded.
func (s *ReconcileService) Ready() bool {
	return s.current.Load() != nil
}

// LoadedAt returns when the current snapshot was built.
func (s *ReconcileService) LoadedAt() (time.Time, bool) {
	state := s.current.Load()
	if state == nil {
		return time.Time{}, false
	}
	return state.loadedAt, true
}

func (s *ReconcileService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event publish failed", zap.String("type", string(event.Type)), zap.Error(err))
	}
}
