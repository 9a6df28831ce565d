package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 1)

	token, expiresAt, err := tm.GenerateToken("user-42")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	userID, err := tm.ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, "user-42", userID)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("secret-a", 1).GenerateToken("user-42")
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", 1).ParseToken(token)
	require.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := NewTokenManager("test-secret", 1).ParseToken("not-a-jwt")
	require.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3nh4-forte", 4)
	require.NoError(t, err)
	require.NotEqual(t, "s3nh4-forte", hash)

	require.NoError(t, ComparePassword(hash, "s3nh4-forte"))
	require.Error(t, ComparePassword(hash, "outra-senha"))
}
