package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	cfg := DefaultConfig("test-secret")

	tok, err := GenerateAccessToken("user-1", "ada@example.com", "instructor", cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(tok, "test-secret")
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, "ada@example.com", claims.Email)
	require.Equal(t, "instructor", claims.Role)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	cfg := DefaultConfig("test-secret")

	tok, err := GenerateAccessToken("user-1", "ada@example.com", "student", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(tok, "other-secret")
	require.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	cfg := DefaultConfig("test-secret")
	cfg.AccessExpiry = -1 * time.Minute

	tok, err := GenerateAccessToken("user-1", "ada@example.com", "student", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(tok, "test-secret")
	require.Error(t, err)
}

func TestGeneratePairHasIndependentExpiries(t *testing.T) {
	cfg := DefaultConfig("test-secret")
	cfg.AccessExpiry = 1 * time.Hour
	cfg.RefreshExpiry = 24 * time.Hour

	access, refresh, err := GeneratePair("user-1", "ada@example.com", "student", cfg)
	require.NoError(t, err)
	require.NotEqual(t, access, refresh)

	accessClaims, err := ValidateToken(access, "test-secret")
	require.NoError(t, err)
	refreshClaims, err := ValidateToken(refresh, "test-secret")
	require.NoError(t, err)

	require.True(t, refreshClaims.ExpiresAt.After(accessClaims.ExpiresAt.Time))
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", "test-secret")
	require.Error(t, err)
}
