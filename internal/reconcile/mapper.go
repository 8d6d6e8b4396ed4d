package reconcile

import (
	"github.com/gestar-ia/reconcile-service/internal/domain"
)

// Warning strings are shown to the end user verbatim.
const (
	warnSubcategoryMismatch  = "La subcategoría no coincide con la categoría seleccionada."
	warnSubcategoryAmbiguous = "Subcategoría ambigua: se necesita categoría para resolverla."
	warnAreaDivisionMismatch = "El área seleccionada no pertenece a la división indicada."
)

// openStateName is the lifecycle state every new ticket starts in.
const openStateName = "abierto"

// defaultPriorityName backs the medium-priority fallback.
const defaultPriorityName = "media"

// MapEntities reconciles a free-text draft against the catalog index and
// returns the best-effort canonical ids plus business warnings. It never
// fails on inconsistent input: every rule violation becomes a warning and
// the mapping is returned anyway, so ticket creation is never blocked.
func MapEntities(draft domain.TicketDraft, idx *Index, snapshot domain.Snapshot) (domain.MappedIDs, []string) {
	var mapped domain.MappedIDs
	warnings := []string{}

	// Direct name lookups. A missing mention is not an error; the id
	// simply stays nil.
	if plant, ok := idx.PlantsByName[Normalize(draft.Plant)]; ok {
		mapped.PlantID = &plant.ID
	}
	if division, ok := idx.DivisionsByName[Normalize(draft.Division)]; ok {
		mapped.DivisionID = &division.ID
	}
	if category, ok := idx.CategoriesByName[Normalize(draft.Category)]; ok {
		mapped.CategoryID = &category.ID
	}
	if priority, ok := idx.PrioritiesByName[Normalize(draft.Priority)]; ok {
		mapped.PriorityID = &priority.ID
	}

	resolution := ResolveUser(draft.SuggestedUser, idx)
	if resolution.Outcome == UserOutcomeResolved {
		mapped.SuggestedAssigneeID = &resolution.User.ID
		if rel, ok := idx.UserAreaDivision[Normalize(resolution.User.Username)]; ok {
			// An identified person is authoritative over prose: their area
			// overrides whatever area the free text mentioned.
			if rel.AreaID != nil {
				mapped.AreaID = rel.AreaID
			}
			if mapped.DivisionID == nil && rel.DivisionID != nil {
				mapped.DivisionID = rel.DivisionID
			}
		}
	} else {
		if resolution.Warning != "" && draft.SuggestedUser != "" {
			warnings = append(warnings, resolution.Warning)
		}
		// Unknown or absent user: fall back to the area named in the text.
		if area, ok := idx.AreasByName[Normalize(draft.Area)]; ok {
			mapped.AreaID = &area.ID
			if mapped.DivisionID == nil {
				divisionID := area.DivisionID
				mapped.DivisionID = &divisionID
			}
		}
	}

	if subNorm := Normalize(draft.Subcategory); subNorm != "" {
		if mapped.CategoryID != nil {
			if sub, ok := idx.SubcategoryByCategory[SubcategoryKey{CategoryID: *mapped.CategoryID, Name: subNorm}]; ok {
				mapped.SubcategoryID = &sub.ID
			} else {
				warnings = append(warnings, warnSubcategoryMismatch)
			}
		} else {
			candidates := idx.SubcategoriesByName[subNorm]
			switch {
			case len(candidates) == 1:
				sub := candidates[0]
				mapped.SubcategoryID = &sub.ID
				categoryID := sub.CategoryID
				mapped.CategoryID = &categoryID
			case len(candidates) > 1:
				warnings = append(warnings, warnSubcategoryAmbiguous)
			}
		}
	}

	// Cross-check, warn but keep: inconsistent ids remain set so the
	// caller can still create the ticket with a caveat.
	if mapped.AreaID != nil && mapped.DivisionID != nil {
		if area, ok := idx.AreasByID[*mapped.AreaID]; ok && area.DivisionID != *mapped.DivisionID {
			warnings = append(warnings, warnAreaDivisionMismatch)
		}
	}

	// Every new ticket opens in the "abierto" state regardless of input.
	for _, state := range snapshot.States {
		if Normalize(state.Name) == openStateName {
			stateID := state.ID
			mapped.StateID = &stateID
			break
		}
	}

	if mapped.PriorityID == nil {
		if medium, ok := idx.PrioritiesByName[defaultPriorityName]; ok {
			mapped.PriorityID = &medium.ID
		}
	}

	return mapped, warnings
}
