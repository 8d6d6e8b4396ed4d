package dto

import (
	"time"

	"github.com/gestar-ia/reconcile-service/internal/domain"
	"github.com/gestar-ia/reconcile-service/internal/reconcile"
)

// DraftRequest mirrors the upstream draft contract; field names follow the
// Spanish keys the extraction model produces.
type DraftRequest struct {
	Title         string `json:"titulo"`
	Description   string `json:"descripcion"`
	Plant         string `json:"planta"`
	Division      string `json:"division"`
	Area          string `json:"area"`
	Category      string `json:"categoria"`
	Subcategory   string `json:"subcategoria"`
	Priority      string `json:"prioridad"`
	SuggestedUser string `json:"usuario_sugerido"`
	NeedBy        string `json:"fecha_necesidad"`

	ResolvedNeedBy *time.Time `json:"fecha_necesidad_resuelta,omitempty"`
}

// ToDomain converts the request into a domain draft.
func (r DraftRequest) ToDomain() domain.TicketDraft {
	return domain.TicketDraft{
		Title:          r.Title,
		Description:    r.Description,
		Plant:          r.Plant,
		Division:       r.Division,
		Area:           r.Area,
		Category:       r.Category,
		Subcategory:    r.Subcategory,
		Priority:       r.Priority,
		SuggestedUser:  r.SuggestedUser,
		NeedBy:         r.NeedBy,
		ResolvedNeedBy: r.ResolvedNeedBy,
	}
}

// TurnUpdateRequest carries the fields the model extracted this turn.
type TurnUpdateRequest struct {
	Title         string `json:"titulo"`
	Description   string `json:"descripcion"`
	Plant         string `json:"planta"`
	Division      string `json:"division"`
	Area          string `json:"area"`
	Category      string `json:"categoria"`
	Subcategory   string `json:"subcategoria"`
	Priority      string `json:"prioridad"`
	SuggestedUser string `json:"usuario_sugerido"`
	NeedBy        string `json:"fecha_necesidad"`
}

// ToDomain converts the request into a turn update.
func (r TurnUpdateRequest) ToDomain() reconcile.TurnUpdate {
	return reconcile.TurnUpdate{
		Title:         r.Title,
		Description:   r.Description,
		Plant:         r.Plant,
		Division:      r.Division,
		Area:          r.Area,
		Category:      r.Category,
		Subcategory:   r.Subcategory,
		Priority:      r.Priority,
		SuggestedUser: r.SuggestedUser,
		NeedBy:        r.NeedBy,
	}
}

// TurnRequest applies one conversation turn to a caller-held draft.
type TurnRequest struct {
	Draft     DraftRequest      `json:"draft"`
	Extracted TurnUpdateRequest `json:"extracted"`
	Message   string            `json:"message"`
}

// MappedIDsResponse carries the canonical ids for persistence.
type MappedIDsResponse struct {
	PlantID             *string `json:"planta_id"`
	DivisionID          *string `json:"division_id"`
	AreaID              *string `json:"area_id"`
	CategoryID          *string `json:"categoria_id"`
	SubcategoryID       *string `json:"subcategoria_id"`
	PriorityID          *string `json:"prioridad_id"`
	SuggestedAssigneeID *string `json:"suggested_assignee_id"`
	StateID             *string `json:"estado_id"`
}

// ResolvedUserResponse summarizes the resolved suggested user.
type ResolvedUserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// ReconcileResponse is the outcome of reconciling a draft.
type ReconcileResponse struct {
	IDs          MappedIDsResponse   `json:"ids"`
	Warnings     []string            `json:"warnings"`
	Completeness domain.Completeness `json:"completeness"`
}

// TurnResponse returns the updated draft plus the reconciliation outcome.
type TurnResponse struct {
	Draft        DraftResponse       `json:"draft"`
	IDs          MappedIDsResponse   `json:"ids"`
	Warnings     []string            `json:"warnings"`
	Completeness domain.Completeness `json:"completeness"`
}

// DraftResponse echoes the draft back with resolved fields filled in.
type DraftResponse struct {
	Title          string                `json:"titulo"`
	Description    string                `json:"descripcion"`
	Plant          string                `json:"planta"`
	Division       string                `json:"division"`
	Area           string                `json:"area"`
	Category       string                `json:"categoria"`
	Subcategory    string                `json:"subcategoria"`
	Priority       string                `json:"prioridad"`
	SuggestedUser  string                `json:"usuario_sugerido"`
	NeedBy         string                `json:"fecha_necesidad"`
	ResolvedUser   *ResolvedUserResponse `json:"usuario_sugerido_resuelto,omitempty"`
	ResolvedNeedBy *time.Time            `json:"fecha_necesidad_resuelta,omitempty"`
}

// NewMappedIDsResponse maps domain ids to the response shape.
func NewMappedIDsResponse(ids domain.MappedIDs) MappedIDsResponse {
	return MappedIDsResponse{
		PlantID:             ids.PlantID,
		DivisionID:          ids.DivisionID,
		AreaID:              ids.AreaID,
		CategoryID:          ids.CategoryID,
		SubcategoryID:       ids.SubcategoryID,
		PriorityID:          ids.PriorityID,
		SuggestedAssigneeID: ids.SuggestedAssigneeID,
		StateID:             ids.StateID,
	}
}

// NewDraftResponse maps a domain draft to the response shape.
func NewDraftResponse(draft domain.TicketDraft) DraftResponse {
	resp := DraftResponse{
		Title:          draft.Title,
		Description:    draft.Description,
		Plant:          draft.Plant,
		Division:       draft.Division,
		Area:           draft.Area,
		Category:       draft.Category,
		Subcategory:    draft.Subcategory,
		Priority:       draft.Priority,
		SuggestedUser:  draft.SuggestedUser,
		NeedBy:         draft.NeedBy,
		ResolvedNeedBy: draft.ResolvedNeedBy,
	}
	if draft.ResolvedUser != nil {
		resp.ResolvedUser = &ResolvedUserResponse{
			ID:       draft.ResolvedUser.ID,
			Username: draft.ResolvedUser.Username,
			Email:    draft.ResolvedUser.Email,
			FullName: reconcile.FormatFullName(draft.ResolvedUser.Username),
		}
	}
	return resp
}
