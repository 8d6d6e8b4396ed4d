package reconcile

import "github.com/gestar-ia/reconcile-service/internal/domain"

// CatalogNames holds the deduplicated display-name lists handed to the
// upstream prompt builder so the model only proposes names that exist.
type CatalogNames struct {
	Plants        []string
	Divisions     []string
	Areas         []string
	Categories    []string
	Subcategories []string
	Priorities    []string
	Users         []string
}

// CollectCatalogNames extracts display names from a snapshot, dropping
// duplicates under normalization while keeping the first spelling and the
// catalog order.
func CollectCatalogNames(snapshot domain.Snapshot) CatalogNames {
	names := CatalogNames{}
	for _, p := range snapshot.Plants {
		names.Plants = appendUnique(names.Plants, p.Name)
	}
	for _, d := range snapshot.Divisions {
		names.Divisions = appendUnique(names.Divisions, d.Name)
	}
	for _, a := range snapshot.Areas {
		names.Areas = appendUnique(names.Areas, a.Name)
	}
	for _, c := range snapshot.Categories {
		names.Categories = appendUnique(names.Categories, c.Name)
	}
	for _, s := range snapshot.Subcategories {
		names.Subcategories = appendUnique(names.Subcategories, s.Name)
	}
	for _, p := range snapshot.Priorities {
		names.Priorities = appendUnique(names.Priorities, p.Name)
	}
	for _, u := range snapshot.Users {
		names.Users = appendUnique(names.Users, u.Username)
	}
	return names
}

func appendUnique(list []string, value string) []string {
	norm := Normalize(value)
	if norm == "" {
		return list
	}
	for _, existing := range list {
		if Normalize(existing) == norm {
			return list
		}
	}
	return append(list, value)
}
