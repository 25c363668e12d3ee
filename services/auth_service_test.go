package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateSessionToken("user-1", "user@example.com", true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.True(t, claims.OnboardingComplete)
}

func TestSessionTokenCarriesOnboardingState(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateSessionToken("user-1", "user@example.com", false)
	require.NoError(t, err)

	claims, err := ValidateSessionToken(token)
	require.NoError(t, err)
	assert.False(t, claims.OnboardingComplete)
}

func TestGenerateSessionTokenRequiresUserID(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := GenerateSessionToken("", "user@example.com", false)
	assert.Error(t, err)
}

func TestGenerateSessionTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateSessionToken("user-1", "user@example.com", false)
	assert.Error(t, err)
}

func TestValidateSessionTokenRejectsTampering(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateSessionToken("user-1", "user@example.com", false)
	require.NoError(t, err)

	_, err = ValidateSessionToken(token + "x")
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "different-secret")
	_, err = ValidateSessionToken(token)
	assert.Error(t, err)
}
