package reconcile

import (
	"regexp"
	"strings"

	"github.com/gestar-ia/reconcile-service/internal/domain"
)

// usernameTokens splits normalized usernames into alias tokens, e.g.
// "firmapaz_alfredo" -> "firmapaz", "alfredo".
var usernameTokens = regexp.MustCompile(`[_\s.-]+`)

// SubcategoryKey disambiguates subcategory names that repeat across
// categories once the category is known.
type SubcategoryKey struct {
	CategoryID string
	Name       string
}

// AreaDivisionIDs is the area/division a user is associated with,
// resolved from directory names to catalog ids at build time.
type AreaDivisionIDs struct {
	AreaID     *string
	DivisionID *string
}

// Index holds the read-only lookup structures for one catalog snapshot.
// All keys are produced by Normalize. An Index is never mutated after
// Build returns, so any number of concurrent resolutions may share it;
// a catalog refresh builds a fresh Index and swaps it in whole.
type Index struct {
	PlantsByName     map[string]domain.Plant
	DivisionsByName  map[string]domain.Division
	AreasByName      map[string]domain.Area
	AreasByID        map[string]domain.Area
	CategoriesByName map[string]domain.Category

	// SubcategoriesByName keeps every same-named candidate for use before
	// a category is known; SubcategoryByCategory resolves the collision
	// once one is.
	SubcategoriesByName   map[string][]domain.Subcategory
	SubcategoryByCategory map[SubcategoryKey]domain.Subcategory

	PrioritiesByName map[string]domain.Priority

	UsersByUsername   map[string]domain.User
	UsersByEmailLocal map[string]domain.User
	UsersByToken      map[string][]domain.User

	// UserAreaDivision maps a normalized username to the area/division
	// inferred from the externally sourced association table.
	UserAreaDivision map[string]AreaDivisionIDs
}

// BuildIndex derives the lookup structures from a catalog snapshot and the
// user association table. The build is a one-shot pass; the snapshot is
// read but never retained mutably.
func BuildIndex(snapshot domain.Snapshot, associations domain.AssociationTable) *Index {
	idx := &Index{
		PlantsByName:          make(map[string]domain.Plant, len(snapshot.Plants)),
		DivisionsByName:       make(map[string]domain.Division, len(snapshot.Divisions)),
		AreasByName:           make(map[string]domain.Area, len(snapshot.Areas)),
		AreasByID:             make(map[string]domain.Area, len(snapshot.Areas)),
		CategoriesByName:      make(map[string]domain.Category, len(snapshot.Categories)),
		SubcategoriesByName:   make(map[string][]domain.Subcategory),
		SubcategoryByCategory: make(map[SubcategoryKey]domain.Subcategory, len(snapshot.Subcategories)),
		PrioritiesByName:      make(map[string]domain.Priority, len(snapshot.Priorities)),
		UsersByUsername:       make(map[string]domain.User, len(snapshot.Users)),
		UsersByEmailLocal:     make(map[string]domain.User),
		UsersByToken:          make(map[string][]domain.User),
		UserAreaDivision:      make(map[string]AreaDivisionIDs, len(associations)),
	}

	for _, p := range snapshot.Plants {
		idx.PlantsByName[Normalize(p.Name)] = p
	}
	for _, d := range snapshot.Divisions {
		idx.DivisionsByName[Normalize(d.Name)] = d
	}
	for _, a := range snapshot.Areas {
		idx.AreasByName[Normalize(a.Name)] = a
		idx.AreasByID[a.ID] = a
	}
	for _, c := range snapshot.Categories {
		idx.CategoriesByName[Normalize(c.Name)] = c
	}
	for _, s := range snapshot.Subcategories {
		key := Normalize(s.Name)
		idx.SubcategoriesByName[key] = append(idx.SubcategoriesByName[key], s)
		idx.SubcategoryByCategory[SubcategoryKey{CategoryID: s.CategoryID, Name: key}] = s
	}
	for _, p := range snapshot.Priorities {
		idx.PrioritiesByName[Normalize(p.Name)] = p
	}
	for _, u := range snapshot.Users {
		normUser := Normalize(u.Username)
		idx.UsersByUsername[normUser] = u
		email := Normalize(u.Email)
		if at := strings.Index(email, "@"); at > 0 {
			idx.UsersByEmailLocal[email[:at]] = u
		}
		for _, token := range usernameTokens.Split(normUser, -1) {
			if token != "" {
				idx.UsersByToken[token] = append(idx.UsersByToken[token], u)
			}
		}
	}

	for normUser, names := range associations {
		var rel AreaDivisionIDs
		if area, ok := idx.AreasByName[Normalize(names.Area)]; ok {
			rel.AreaID = &area.ID
		}
		if division, ok := idx.DivisionsByName[Normalize(names.Division)]; ok {
			rel.DivisionID = &division.ID
		}
		idx.UserAreaDivision[Normalize(normUser)] = rel
	}

	return idx
}
