package domain

import "time"

// TicketDraft is the mutable, partially filled ticket assembled from free
// text across conversation turns. All classification fields hold raw prose;
// the resolved fields are written back by the reconciliation engine.
// The caller owns the draft between turns.
type TicketDraft struct {
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

	ResolvedUser   *User
	ResolvedNeedBy *time.Time
}

// MappedIDs is the immutable result of reconciling a draft against the
// master catalogs. Every field is nullable; a nil id means the mention
// could not be resolved, which is an observation rather than an error.
type MappedIDs struct {
	PlantID             *string
	DivisionID          *string
	AreaID              *string
	CategoryID          *string
	SubcategoryID       *string
	PriorityID          *string
	SuggestedAssigneeID *string
	StateID             *string
}

// Completeness is the coarse triage label for a mapped draft.
type Completeness string

const (
	CompletenessHigh   Completeness = "alto"
	CompletenessMedium Completeness = "medio"
	CompletenessLow    Completeness = "bajo"
)
