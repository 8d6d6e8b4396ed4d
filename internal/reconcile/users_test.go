package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveUserExactMatch(t *testing.T) {
	idx := testIndex()

	res := ResolveUser("juan_perez", idx)
	assert.Equal(t, UserOutcomeResolved, res.Outcome)
	require.NotNil(t, res.User)
	assert.Equal(t, "user-perez", res.User.ID)
	assert.Empty(t, res.Warning)
}

func TestResolveUserExactBeatsToken(t *testing.T) {
	idx := testIndex()

	// "juan" alone is ambiguous, but the full username is an exact hit.
	res := ResolveUser("Juan_Perez", idx)
	assert.Equal(t, UserOutcomeResolved, res.Outcome)
	require.NotNil(t, res.User)
	assert.Equal(t, "juan_perez", res.User.Username)
}

func TestResolveUserEmailLocalPart(t *testing.T) {
	idx := testIndex()

	res := ResolveUser("perezj", idx)
	assert.Equal(t, UserOutcomeResolved, res.Outcome)
	require.NotNil(t, res.User)
	assert.Equal(t, "user-perez", res.User.ID)
}

func TestResolveUserSingleToken(t *testing.T) {
	idx := testIndex()

	res := ResolveUser("firmapaz", idx)
	assert.Equal(t, UserOutcomeResolved, res.Outcome)
	require.NotNil(t, res.User)
	assert.Equal(t, "user-firmapaz", res.User.ID)
}

func TestResolveUserAmbiguousToken(t *testing.T) {
	idx := testIndex()

	res := ResolveUser("juan", idx)
	assert.Equal(t, UserOutcomeAmbiguous, res.Outcome)
	assert.Nil(t, res.User)
	assert.Equal(t, []string{"juan_gomez", "juan_perez"}, res.Candidates)
	assert.Equal(t, "Usuario ambiguo 'juan'. Opciones: juan_gomez, juan_perez.", res.Warning)
}

func TestResolveUserNotFound(t *testing.T) {
	idx := testIndex()

	res := ResolveUser("nadie", idx)
	assert.Equal(t, UserOutcomeNotFound, res.Outcome)
	assert.Nil(t, res.User)
	assert.Equal(t, "No se encontró usuario para 'nadie'.", res.Warning)
}

func TestResolveUserEmptyMention(t *testing.T) {
	idx := testIndex()

	for _, raw := range []string{"", "   "} {
		res := ResolveUser(raw, idx)
		assert.Equal(t, UserOutcomeEmpty, res.Outcome)
		assert.Nil(t, res.User)
		assert.Empty(t, res.Warning)
	}
}

func TestFormatFullName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "firmapaz_alfredo", want: "Alfredo Firmapaz"},
		{input: "vera.juan", want: "Juan Vera"},
		{input: "solo", want: "Solo"},
		{input: "", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFullName(tt.input), "input %q", tt.input)
	}
}
