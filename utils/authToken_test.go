package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")

	accessToken, refreshToken, err := GenerateTokens(7, "admin@mediplus.fr")
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	claims, err := ValidateToken(accessToken)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "admin@mediplus.fr", claims.Email)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")

	_, err := ValidateToken("v2.local.not-a-real-token")
	assert.Error(t, err)
}

func TestGenerateAccessToken(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")

	token, err := GenerateAccessToken(42, "admin@mediplus.fr")
	assert.NoError(t, err)

	claims, err := ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "admin@mediplus.fr", claims.Email)
}

func TestMisconfiguredKeyIsAnError(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", "short")

	if _, err := GetSymmetricKey(); err == nil {
		t.Fatal("expected an error for a key shorter than 32 bytes")
	}

	_, _, err := GenerateTokens(1, "admin@mediplus.fr")
	assert.Error(t, err)

	_, err = ValidateToken("v2.local.whatever")
	assert.Error(t, err)
}

func TestIsAdminEmail(t *testing.T) {
	// Domain suffix, with or without the leading "@".
	assert.True(t, IsAdminEmail("alice@mediplus.fr", "mediplus.fr", ""))
	assert.True(t, IsAdminEmail("alice@mediplus.fr", "@mediplus.fr", ""))

	// Dedicated admin address.
	assert.True(t, IsAdminEmail("owner@gmail.com", "mediplus.fr", "owner@gmail.com"))

	// Case-insensitive on both sides.
	assert.True(t, IsAdminEmail("Alice@MediPlus.FR", "mediplus.fr", ""))
	assert.True(t, IsAdminEmail("OWNER@gmail.com", "", "owner@gmail.com"))

	// A valid identity outside the allowlist carries no rights.
	assert.False(t, IsAdminEmail("bob@elsewhere.com", "mediplus.fr", "owner@gmail.com"))
	assert.False(t, IsAdminEmail("", "mediplus.fr", "owner@gmail.com"))
	assert.False(t, IsAdminEmail("alice@mediplus.fr", "", ""))
}
