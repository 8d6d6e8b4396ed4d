package dto

import "github.com/gestar-ia/reconcile-service/internal/reconcile"

// CatalogNamesResponse lists the display names the extraction model may
// propose, keyed the way the prompt builder expects.
type CatalogNamesResponse struct {
	Plants        []string `json:"plantas"`
	Divisions     []string `json:"divisiones"`
	Areas         []string `json:"areas"`
	Categories    []string `json:"categorias"`
	Subcategories []string `json:"subcategorias"`
	Priorities    []string `json:"prioridades"`
	Users         []string `json:"usuarios"`
}

// NewCatalogNamesResponse maps the engine's name lists.
func NewCatalogNamesResponse(names reconcile.CatalogNames) CatalogNamesResponse {
	return CatalogNamesResponse{
		Plants:        names.Plants,
		Divisions:     names.Divisions,
		Areas:         names.Areas,
		Categories:    names.Categories,
		Subcategories: names.Subcategories,
		Priorities:    names.Priorities,
		Users:         names.Users,
	}
}
