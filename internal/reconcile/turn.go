package reconcile

import (
	"time"

	"github.com/gestar-ia/reconcile-service/internal/domain"
)

// TurnUpdate carries the fields an upstream model extracted from one
// conversation message. Empty fields leave the draft untouched.
type TurnUpdate struct {
	Title         string
	Description   string
	Plant         string
	Division      string
	Area          string
	Category      string
	Subcategory   string
	Priority      string
	SuggestedUser string
	NeedBy        string
}

// ApplyTurn merges a model extraction and the raw user message into a
// caller-held draft for one conversation turn. The engine keeps no session
// state of its own; the caller owns the draft between turns.
//
// Rules applied, in order:
//   - non-empty extracted fields overwrite the draft, except the
//     description, which is gated by ShouldUpdateDescription;
//   - an explicit handoff phrase in the raw message ("responsable <name>",
//     "a cargo de <name>") overrides the model's suggested user;
//   - the suggested user is re-resolved against the index;
//   - the need-by date is re-resolved, preferring a date found in the raw
//     message, and recomputed when the drafted text is relative language
//     ("manana") whose stored resolution has slipped into the past.
func ApplyTurn(draft *domain.TicketDraft, update TurnUpdate, rawMessage string, idx *Index, dates *DateResolver) {
	if update.Title != "" {
		draft.Title = update.Title
	}
	if update.Description != "" && ShouldUpdateDescription(draft.Description, update.Description, rawMessage) {
		draft.Description = update.Description
	}
	if update.Plant != "" {
		draft.Plant = update.Plant
	}
	if update.Division != "" {
		draft.Division = update.Division
	}
	if update.Area != "" {
		draft.Area = update.Area
	}
	if update.Category != "" {
		draft.Category = update.Category
	}
	if update.Subcategory != "" {
		draft.Subcategory = update.Subcategory
	}
	if update.Priority != "" {
		draft.Priority = update.Priority
	}
	if update.SuggestedUser != "" {
		draft.SuggestedUser = update.SuggestedUser
	}
	if update.NeedBy != "" {
		draft.NeedBy = update.NeedBy
	}

	if byRule := ExtractSuggestedUser(rawMessage); byRule != "" {
		draft.SuggestedUser = byRule
	}

	resolution := ResolveUser(draft.SuggestedUser, idx)
	draft.ResolvedUser = resolution.User

	fromDraft := dates.Parse(draft.NeedBy)
	fromMessage := dates.Parse(rawMessage)
	needBy := fromDraft
	if fromMessage != nil {
		needBy = fromMessage
	}
	if needBy != nil && HasRelativeLanguage(draft.NeedBy) && beforeToday(*needBy, dates.now()) {
		needBy = fromMessage
	}
	draft.ResolvedNeedBy = needBy
}

func beforeToday(t, now time.Time) bool {
	ty, tm, td := t.Date()
	ny, nm, nd := now.Date()
	return time.Date(ty, tm, td, 0, 0, 0, 0, t.Location()).
		Before(time.Date(ny, nm, nd, 0, 0, 0, 0, now.Location()))
}
