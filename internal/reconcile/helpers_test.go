package reconcile

import (
	"github.com/gestar-ia/reconcile-service/internal/domain"
)

// testSnapshot mirrors a trimmed-down master-data load: two divisions,
// areas with a repeated name, a subcategory name that collides across
// categories and two users sharing a first-name token.
func testSnapshot() domain.Snapshot {
	return domain.Snapshot{
		Plants: []domain.Plant{
			{ID: "plant-ut1", Name: "UT1"},
			{ID: "plant-ut3", Name: "UT3"},
		},
		Divisions: []domain.Division{
			{ID: "div-forja", Name: "Forja"},
			{ID: "div-sellado", Name: "Sellado"},
		},
		Areas: []domain.Area{
			{ID: "area-prensa1", Name: "Prensa 1", DivisionID: "div-forja"},
			{ID: "area-calidad", Name: "Calidad", DivisionID: "div-forja"},
			{ID: "area-linea1", Name: "Sellado Línea 1", DivisionID: "div-sellado"},
		},
		Categories: []domain.Category{
			{ID: "cat-mantenimiento", Name: "Mantenimiento"},
			{ID: "cat-calidad", Name: "Calidad y Procesos"},
		},
		Subcategories: []domain.Subcategory{
			{ID: "sub-falla", Name: "Falla Eléctrica", CategoryID: "cat-mantenimiento"},
			{ID: "sub-doc-mant", Name: "Documentación Técnica", CategoryID: "cat-mantenimiento"},
			{ID: "sub-doc-cal", Name: "Documentación Técnica", CategoryID: "cat-calidad"},
		},
		Priorities: []domain.Priority{
			{ID: "prio-baja", Name: "Baja", Level: 3},
			{ID: "prio-media", Name: "Media", Level: 2},
			{ID: "prio-alta", Name: "Alta", Level: 1},
		},
		States: []domain.State{
			{ID: "state-abierto", Name: "Abierto"},
			{ID: "state-cerrado", Name: "Cerrado"},
		},
		Users: []domain.User{
			{ID: "user-perez", Username: "juan_perez", Email: "perezj@taranto.com.ar", Role: "Analista", Active: true},
			{ID: "user-gomez", Username: "juan_gomez", Email: "gomezj@taranto.com.ar", Role: "Analista", Active: true},
			{ID: "user-firmapaz", Username: "firmapaz_alfredo", Email: "firmapaz@taranto.com.ar", Role: "Analista", Active: true},
		},
	}
}

func testAssociations() domain.AssociationTable {
	return domain.AssociationTable{
		"juan_perez":       {Area: "Prensa 1", Division: "Forja"},
		"firmapaz_alfredo": {Area: "Ing. Procesos", Division: ""},
	}
}

func testIndex() *Index {
	return BuildIndex(testSnapshot(), testAssociations())
}
