package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestar-ia/reconcile-service/internal/domain"
)

func TestGenerateAndParseToken(t *testing.T) {
	tm := NewTokenManager("test-secret", 30)

	token, expiresAt, err := tm.GenerateToken("gestar-backend", domain.RoleReconciler)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), expiresAt, 5*time.Second)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "gestar-backend", claims.ClientID)
	assert.Equal(t, domain.RoleReconciler, claims.Role)
	assert.Equal(t, "gestar-backend", claims.Subject)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("secret-a", 30).GenerateToken("gestar-backend", domain.RoleAdmin)
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", 30).ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", 30)
	_, err := tm.ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestHashAndCompareSecret(t *testing.T) {
	hashed, err := HashSecret("s3cret", 4)
	require.NoError(t, err)

	assert.NoError(t, CompareSecret(hashed, "s3cret"))
	assert.Error(t, CompareSecret(hashed, "wrong"))
}
