package auth_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/digiserv/backend/auth"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	key := []byte("test-key")
	id := uuid.New()

	token, err := auth.GenerateJWT("admin@test.com", id, key)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auth.ValidateJWT(token, key)
	require.NoError(t, err)
	assert.Equal(t, "admin@test.com", claims.Email)
	assert.Equal(t, id.String(), claims.UUID)
}

func TestValidateJWTWrongKey(t *testing.T) {
	token, err := auth.GenerateJWT("admin@test.com", uuid.New(), []byte("key-one"))
	require.NoError(t, err)

	_, err = auth.ValidateJWT(token, []byte("key-two"))
	assert.Error(t, err)
}

func TestValidateJWTGarbage(t *testing.T) {
	_, err := auth.ValidateJWT("not.a.token", []byte("test-key"))
	assert.Error(t, err)
}

func adminCreds(t *testing.T, email, password string) auth.AdminCreds {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return auth.AdminCreds{Email: email, PasswordHash: hash}
}

func TestAdminCredsVerify(t *testing.T) {
	creds := adminCreds(t, "admin@test.com", "hunter22")

	assert.True(t, creds.Verify("admin@test.com", "hunter22"))
	assert.True(t, creds.Verify("ADMIN@test.com", "hunter22"), "email match is case-insensitive")
	assert.False(t, creds.Verify("admin@test.com", "wrong"))
	assert.False(t, creds.Verify("other@test.com", "hunter22"))
}

func TestAdminCredsUnconfigured(t *testing.T) {
	var creds auth.AdminCreds
	assert.False(t, creds.Configured())
	assert.False(t, creds.Verify("", ""))
}
