package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gestar-ia/reconcile-service/internal/domain"
	"github.com/gestar-ia/reconcile-service/internal/events"
	"github.com/gestar-ia/reconcile-service/internal/reconcile"
	"github.com/gestar-ia/reconcile-service/internal/repository"
	apperrors "github.com/gestar-ia/reconcile-service/pkg/util"
)

type stubCatalogRepo struct {
	snapshot     *domain.Snapshot
	associations domain.AssociationTable
	snapshotErr  error
	assocErr     error
	loads        int
}

func (s *stubCatalogRepo) LoadSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	s.loads++
	if s.snapshotErr != nil {
		return nil, s.snapshotErr
	}
	return s.snapshot, nil
}

func (s *stubCatalogRepo) LoadAssociationTable(ctx context.Context) (domain.AssociationTable, error) {
	if s.assocErr != nil {
		return nil, s.assocErr
	}
	return s.associations, nil
}

func serviceSnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		Divisions: []domain.Division{{ID: "div-forja", Name: "Forja"}},
		Areas:     []domain.Area{{ID: "area-prensa1", Name: "Prensa 1", DivisionID: "div-forja"}},
		Categories: []domain.Category{
			{ID: "cat-mantenimiento", Name: "Mantenimiento"},
		},
		Subcategories: []domain.Subcategory{
			{ID: "sub-falla", Name: "Falla Eléctrica", CategoryID: "cat-mantenimiento"},
		},
		Priorities: []domain.Priority{
			{ID: "prio-media", Name: "Media", Level: 2},
			{ID: "prio-alta", Name: "Alta", Level: 1},
		},
		States: []domain.State{{ID: "state-abierto", Name: "Abierto"}},
		Users: []domain.User{
			{ID: "user-perez", Username: "juan_perez", Email: "perezj@taranto.com.ar", Active: true},
		},
	}
}

func newTestService(repo repository.CatalogRepository, dispatcher events.Dispatcher) *ReconcileService {
	return NewReconcileService(ReconcileDependencies{
		CatalogRepo:      repo,
		AssociationCache: repository.NewAssociationCache(nil, 0),
		Dispatcher:       dispatcher,
		Logger:           zap.NewNop(),
		Clock:            func() time.Time { return time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC) },
	})
}

func TestReconcileBeforeRefreshFails(t *testing.T) {
	svc := newTestService(&stubCatalogRepo{snapshot: serviceSnapshot()}, nil)

	_, err := svc.Reconcile(context.Background(), domain.TicketDraft{Title: "x"})
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CATALOGS_NOT_LOADED", domainErr.Code)
	assert.False(t, svc.Ready())
}

func TestRefreshThenReconcile(t *testing.T) {
	repo := &stubCatalogRepo{
		snapshot:     serviceSnapshot(),
		associations: domain.AssociationTable{"juan_perez": {Area: "Prensa 1", Division: "Forja"}},
	}
	dispatcher := events.NewInMemoryDispatcher()

	var refreshed []events.CatalogRefreshedPayload
	dispatcher.Subscribe(events.EventCatalogRefreshed, func(ctx context.Context, e events.Event) error {
		refreshed = append(refreshed, e.Payload.(events.CatalogRefreshedPayload))
		return nil
	})
	var reconciled []events.DraftReconciledPayload
	dispatcher.Subscribe(events.EventDraftReconciled, func(ctx context.Context, e events.Event) error {
		reconciled = append(reconciled, e.Payload.(events.DraftReconciledPayload))
		return nil
	})

	svc := newTestService(repo, dispatcher)
	require.NoError(t, svc.Refresh(context.Background()))
	assert.True(t, svc.Ready())

	require.Len(t, refreshed, 1)
	assert.Equal(t, 1, refreshed[0].Users)
	// The nil Redis client behaves as a permanent miss.
	assert.Equal(t, "database", refreshed[0].AssociationSource)

	now := time.Date(2026, time.March, 2, 17, 0, 0, 0, time.UTC)
	result, err := svc.Reconcile(context.Background(), domain.TicketDraft{
		Title:          "Falla en prensa",
		Category:       "Mantenimiento",
		SuggestedUser:  "juan_perez",
		ResolvedUser:   &domain.User{ID: "user-perez", Username: "juan_perez"},
		ResolvedNeedBy: &now,
	})
	require.NoError(t, err)

	require.NotNil(t, result.IDs.SuggestedAssigneeID)
	assert.Equal(t, "user-perez", *result.IDs.SuggestedAssigneeID)
	require.NotNil(t, result.IDs.AreaID)
	assert.Equal(t, "area-prensa1", *result.IDs.AreaID)
	assert.Equal(t, domain.CompletenessHigh, result.Completeness)

	require.Len(t, reconciled, 1)
	assert.True(t, reconciled[0].UserResolved)
	assert.Equal(t, domain.CompletenessHigh, reconciled[0].Completeness)
}

func TestRefreshSurvivesAssociationOutage(t *testing.T) {
	repo := &stubCatalogRepo{
		snapshot: serviceSnapshot(),
		assocErr: errors.New("directory unreachable"),
	}
	svc := newTestService(repo, nil)

	require.NoError(t, svc.Refresh(context.Background()))
	assert.True(t, svc.Ready())

	// Users still resolve by username even without the association table.
	result, err := svc.Reconcile(context.Background(), domain.TicketDraft{
		SuggestedUser: "juan_perez",
		ResolvedUser:  &domain.User{ID: "user-perez", Username: "juan_perez"},
	})
	require.NoError(t, err)
	require.NotNil(t, result.IDs.SuggestedAssigneeID)
	assert.Nil(t, result.IDs.AreaID)
}

func TestRefreshPropagatesSnapshotError(t *testing.T) {
	repo := &stubCatalogRepo{snapshotErr: errors.New("connection refused")}
	svc := newTestService(repo, nil)

	require.Error(t, svc.Refresh(context.Background()))
	assert.False(t, svc.Ready())
}

func TestRefreshSwapsSnapshot(t *testing.T) {
	repo := &stubCatalogRepo{snapshot: serviceSnapshot()}
	svc := newTestService(repo, nil)
	require.NoError(t, svc.Refresh(context.Background()))

	first, ok := svc.LoadedAt()
	require.True(t, ok)

	grown := serviceSnapshot()
	grown.Users = append(grown.Users, domain.User{
		ID: "user-gomez", Username: "juan_gomez", Email: "gomezj@taranto.com.ar", Active: true,
	})
	repo.snapshot = grown
	require.NoError(t, svc.Refresh(context.Background()))

	second, ok := svc.LoadedAt()
	require.True(t, ok)
	assert.False(t, second.Before(first))
	assert.Equal(t, 2, repo.loads)

	names, err := svc.CatalogNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"juan_perez", "juan_gomez"}, names.Users)
}

func TestApplyTurnReconcilesUpdatedDraft(t *testing.T) {
	repo := &stubCatalogRepo{
		snapshot:     serviceSnapshot(),
		associations: domain.AssociationTable{"juan_perez": {Area: "Prensa 1", Division: "Forja"}},
	}
	svc := newTestService(repo, nil)
	require.NoError(t, svc.Refresh(context.Background()))

	draft := domain.TicketDraft{}
	result, err := svc.ApplyTurn(context.Background(), &draft, reconcile.TurnUpdate{
		Title:    "Falla eléctrica",
		Category: "Mantenimiento",
		NeedBy:   "mañana",
	}, "responsable juan_perez")
	require.NoError(t, err)

	require.NotNil(t, draft.ResolvedUser)
	assert.Equal(t, "user-perez", draft.ResolvedUser.ID)
	require.NotNil(t, draft.ResolvedNeedBy)
	want := time.Date(2026, time.March, 3, 17, 0, 0, 0, time.UTC)
	assert.True(t, want.Equal(*draft.ResolvedNeedBy))

	require.NotNil(t, result.IDs.DivisionID)
	assert.Equal(t, "div-forja", *result.IDs.DivisionID)
	assert.Equal(t, domain.CompletenessHigh, result.Completeness)
}
