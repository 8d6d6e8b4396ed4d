package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestar-ia/reconcile-service/internal/domain"
)

func TestApplyTurnMergesExtractedFields(t *testing.T) {
	idx := testIndex()
	dates := NewDateResolver(fixedClock(monday))

	draft := domain.TicketDraft{Title: "Falla prensa", Area: "Calidad"}
	update := TurnUpdate{
		Description: "La prensa dos pierde presión hidráulica al arrancar",
		Category:    "Mantenimiento",
		Priority:    "Alta",
	}
	ApplyTurn(&draft, update, "la prensa dos pierde presión", idx, dates)

	// Untouched fields survive; non-empty extracted fields land.
	assert.Equal(t, "Falla prensa", draft.Title)
	assert.Equal(t, "Calidad", draft.Area)
	assert.Equal(t, "Mantenimiento", draft.Category)
	assert.Equal(t, "Alta", draft.Priority)
	assert.Equal(t, "La prensa dos pierde presión hidráulica al arrancar", draft.Description)
}

func TestApplyTurnGatesDescription(t *testing.T) {
	idx := testIndex()
	dates := NewDateResolver(fixedClock(monday))

	draft := domain.TicketDraft{Description: "La prensa dos pierde presión"}
	ApplyTurn(&draft, TurnUpdate{Description: "ok"}, "ok", idx, dates)

	assert.Equal(t, "La prensa dos pierde presión", draft.Description)
}

func TestApplyTurnRuleOverridesModelUser(t *testing.T) {
	idx := testIndex()
	dates := NewDateResolver(fixedClock(monday))

	draft := domain.TicketDraft{}
	update := TurnUpdate{SuggestedUser: "juan_gomez"}
	ApplyTurn(&draft, update, "que quede a cargo de juan_perez", idx, dates)

	// The explicit handoff phrase beats the model's inference.
	assert.Equal(t, "juan_perez", draft.SuggestedUser)
	require.NotNil(t, draft.ResolvedUser)
	assert.Equal(t, "user-perez", draft.ResolvedUser.ID)
}

func TestApplyTurnUnresolvedUserLeavesNil(t *testing.T) {
	idx := testIndex()
	dates := NewDateResolver(fixedClock(monday))

	draft := domain.TicketDraft{}
	ApplyTurn(&draft, TurnUpdate{SuggestedUser: "juan"}, "que lo vea juan", idx, dates)

	assert.Equal(t, "juan", draft.SuggestedUser)
	assert.Nil(t, draft.ResolvedUser)
}

func TestApplyTurnResolvesNeedByFromDraft(t *testing.T) {
	idx := testIndex()
	dates := NewDateResolver(fixedClock(monday))

	draft := domain.TicketDraft{}
	ApplyTurn(&draft, TurnUpdate{NeedBy: "mañana"}, "lo necesito pronto", idx, dates)

	require.NotNil(t, draft.ResolvedNeedBy)
	want := time.Date(2026, time.March, 3, 17, 0, 0, 0, time.UTC)
	assert.True(t, want.Equal(*draft.ResolvedNeedBy))
}

func TestApplyTurnMessageDateWins(t *testing.T) {
	idx := testIndex()
	dates := NewDateResolver(fixedClock(monday))

	draft := domain.TicketDraft{NeedBy: "mañana"}
	ApplyTurn(&draft, TurnUpdate{}, "10/04/2026", idx, dates)

	require.NotNil(t, draft.ResolvedNeedBy)
	want := time.Date(2026, time.April, 10, 17, 0, 0, 0, time.UTC)
	assert.True(t, want.Equal(*draft.ResolvedNeedBy))
}

func TestApplyTurnEndToEnd(t *testing.T) {
	idx := testIndex()
	dates := NewDateResolver(fixedClock(monday))

	draft := domain.TicketDraft{}
	update := TurnUpdate{
		Title:       "Falla eléctrica en prensa",
		Category:    "Mantenimiento",
		Subcategory: "Falla Eléctrica",
		NeedBy:      "mañana",
	}
	ApplyTurn(&draft, update, "responsable juan_perez, para mañana", idx, dates)

	ids, warnings := MapEntities(draft, idx, testSnapshot())

	assert.Empty(t, warnings)
	require.NotNil(t, ids.SuggestedAssigneeID)
	assert.Equal(t, "user-perez", *ids.SuggestedAssigneeID)
	require.NotNil(t, ids.AreaID)
	assert.Equal(t, "area-prensa1", *ids.AreaID)
	require.NotNil(t, ids.DivisionID)
	assert.Equal(t, "div-forja", *ids.DivisionID)
	require.NotNil(t, ids.SubcategoryID)
	assert.Equal(t, "sub-falla", *ids.SubcategoryID)
	require.NotNil(t, ids.StateID)
	assert.Equal(t, "state-abierto", *ids.StateID)

	require.NotNil(t, draft.ResolvedNeedBy)
	tomorrow := time.Date(2026, time.March, 3, 17, 0, 0, 0, time.UTC)
	assert.True(t, tomorrow.Equal(*draft.ResolvedNeedBy))

	assert.Equal(t, domain.CompletenessHigh, ScoreCompleteness(draft, ids))
}
