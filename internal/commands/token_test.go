package commands

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"

	"hrm/backend/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestKey(t *testing.T) string {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "private.pem")
	data := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
	require.NoError(t, os.WriteFile(path, data, 0o600))

	return path
}

func TestGenAndVerifyTokens(t *testing.T) {
	keyPath := writeTestKey(t)

	accessToken, refreshToken, err := GenToken(TokenClaims{ID: 7, Role: auth.RoleEmployee}, keyPath)
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	accessClaims, refreshClaims, err := VerifyTokens(accessToken, refreshToken, keyPath)
	require.NoError(t, err)

	assert.Equal(t, 7, accessClaims.UserId)
	assert.Equal(t, auth.RoleEmployee, accessClaims.Role)
	assert.Equal(t, "access", accessClaims.Type)

	assert.Equal(t, 7, refreshClaims.UserId)
	assert.Equal(t, "refresh", refreshClaims.Type)
}

func TestVerifyTokens_RejectsSwappedPair(t *testing.T) {
	keyPath := writeTestKey(t)

	accessToken, _, err := GenToken(TokenClaims{ID: 1, Role: auth.RoleAdmin}, keyPath)
	require.NoError(t, err)

	// An access token presented in the refresh slot must fail the type check.
	_, _, err = VerifyTokens(accessToken, accessToken, keyPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refresh")
}

func TestVerifyTokens_RejectsForeignKey(t *testing.T) {
	keyPath := writeTestKey(t)
	otherKeyPath := writeTestKey(t)

	accessToken, refreshToken, err := GenToken(TokenClaims{ID: 2, Role: auth.RoleEmployee}, keyPath)
	require.NoError(t, err)

	_, _, err = VerifyTokens(accessToken, refreshToken, otherKeyPath)
	assert.Error(t, err)
}

func TestValidateToken(t *testing.T) {
	keyPath := writeTestKey(t)

	accessToken, _, err := GenToken(TokenClaims{ID: 5, Role: auth.RoleAdmin}, keyPath)
	require.NoError(t, err)

	a, err := auth.NewAuth(keyPath)
	require.NoError(t, err)

	claims, err := a.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, 5, claims.UserId)
	assert.Equal(t, auth.RoleAdmin, claims.Role)

	_, err = a.ValidateToken(accessToken + "x")
	assert.Error(t, err)
}
