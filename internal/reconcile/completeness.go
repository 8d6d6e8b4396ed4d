package reconcile

import "github.com/gestar-ia/reconcile-service/internal/domain"

// ScoreCompleteness classifies a mapped draft into a coarse triage label.
// The label is advisory only; it never blocks ticket creation.
func ScoreCompleteness(draft domain.TicketDraft, ids domain.MappedIDs) domain.Completeness {
	hasAreaOrUser := ids.AreaID != nil || ids.SuggestedAssigneeID != nil
	hasCategory := ids.CategoryID != nil
	hasNeedBy := draft.ResolvedNeedBy != nil

	switch {
	case hasAreaOrUser && hasCategory && hasNeedBy:
		return domain.CompletenessHigh
	case hasAreaOrUser:
		return domain.CompletenessMedium
	default:
		return domain.CompletenessLow
	}
}
