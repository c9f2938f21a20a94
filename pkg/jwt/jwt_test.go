package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/busfleet-console/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestInspect_ReadsClaimsWithoutSecret(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "sub-123", "admin@busfleet.com", time.Hour)
	require.NoError(t, err)

	claims, err := pkgjwt.Inspect(tok)
	require.NoError(t, err)
	assert.Equal(t, "sub-123", claims.Subject)
	assert.Equal(t, "admin@busfleet.com", claims.Email)
}

func TestExpiresAt(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "sub-123", "", 30*time.Minute)
	require.NoError(t, err)

	exp, ok := pkgjwt.ExpiresAt(tok)
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), exp, 2*time.Second)
}

func TestExpiresAt_ExpiredTokenStillDecodes(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "sub-123", "", -time.Minute)
	require.NoError(t, err)

	exp, ok := pkgjwt.ExpiresAt(tok)
	require.True(t, ok, "un token expirado sigue teniendo exp legible")
	assert.True(t, exp.Before(time.Now()))
}

func TestExpiresAt_OpaqueToken(t *testing.T) {
	_, ok := pkgjwt.ExpiresAt("token-opaco-sin-puntos")
	assert.False(t, ok)
}

func TestGenerate_EmptySecret(t *testing.T) {
	_, err := pkgjwt.Generate("", "sub", "", time.Minute)
	assert.Error(t, err)
}
