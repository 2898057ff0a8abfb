package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerify(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("super-secret", time.Hour)
	tok, err := svc.GenerateToken("user-1", "a@b.com", "student")
	require.NoError(t, err)

	principal, err := svc.VerifyToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", principal.ID)
	assert.Equal(t, "a@b.com", principal.Email)
	assert.Equal(t, "student", principal.Role)
}

func TestVerifyToken_Expired(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("secret", -time.Minute)
	tok, err := svc.GenerateToken("u1", "a@b.com", "student")
	require.NoError(t, err)

	_, err = svc.VerifyToken(tok)
	assert.Error(t, err)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewJWTService("right", time.Hour).GenerateToken("u1", "a@b.com", "admin")
	require.NoError(t, err)

	_, err = NewJWTService("wrong", time.Hour).VerifyToken(tok)
	assert.Error(t, err)
}

func TestVerifyToken_Garbage(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService("secret", time.Hour).VerifyToken("not-a-token")
	assert.Error(t, err)
}

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hashed, err := HashPassword("hunter22", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hashed)
	assert.True(t, CheckPassword("hunter22", hashed))
	assert.False(t, CheckPassword("hunter23", hashed))
}
