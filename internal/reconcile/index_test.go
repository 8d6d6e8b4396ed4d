package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIndexNameKeys(t *testing.T) {
	idx := testIndex()

	assert.Equal(t, "plant-ut1", idx.PlantsByName["ut1"].ID)
	assert.Equal(t, "div-forja", idx.DivisionsByName["forja"].ID)
	assert.Equal(t, "area-linea1", idx.AreasByName["sellado linea 1"].ID)
	assert.Equal(t, "cat-mantenimiento", idx.CategoriesByName["mantenimiento"].ID)
	assert.Equal(t, "prio-media", idx.PrioritiesByName["media"].ID)
	assert.Equal(t, "area-prensa1", idx.AreasByID["area-prensa1"].ID)
}

func TestBuildIndexSubcategoryCollisions(t *testing.T) {
	idx := testIndex()

	// Before a category is known every same-named candidate is kept.
	candidates := idx.SubcategoriesByName["documentacion tecnica"]
	assert.Len(t, candidates, 2)

	unique := idx.SubcategoriesByName["falla electrica"]
	require.Len(t, unique, 1)
	assert.Equal(t, "sub-falla", unique[0].ID)

	// The composite key resolves the collision once a category is known.
	sub, ok := idx.SubcategoryByCategory[SubcategoryKey{CategoryID: "cat-calidad", Name: "documentacion tecnica"}]
	require.True(t, ok)
	assert.Equal(t, "sub-doc-cal", sub.ID)
}

func TestBuildIndexUserLookups(t *testing.T) {
	idx := testIndex()

	assert.Equal(t, "user-perez", idx.UsersByUsername["juan_perez"].ID)
	assert.Equal(t, "user-perez", idx.UsersByEmailLocal["perezj"].ID)

	// Username tokens map to every user sharing them.
	assert.Len(t, idx.UsersByToken["juan"], 2)
	require.Len(t, idx.UsersByToken["firmapaz"], 1)
	assert.Equal(t, "user-firmapaz", idx.UsersByToken["firmapaz"][0].ID)
}

func TestBuildIndexAssociations(t *testing.T) {
	idx := testIndex()

	rel, ok := idx.UserAreaDivision["juan_perez"]
	require.True(t, ok)
	require.NotNil(t, rel.AreaID)
	require.NotNil(t, rel.DivisionID)
	assert.Equal(t, "area-prensa1", *rel.AreaID)
	assert.Equal(t, "div-forja", *rel.DivisionID)

	// Names missing from the catalogs resolve to nil ids, not errors.
	rel, ok = idx.UserAreaDivision["firmapaz_alfredo"]
	require.True(t, ok)
	assert.Nil(t, rel.AreaID)
	assert.Nil(t, rel.DivisionID)
}
