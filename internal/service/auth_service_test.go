package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/radarclientes/radar-service/internal/config"
	apperrors "github.com/radarclientes/radar-service/pkg/util"
)

func testAuthConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:           "test-secret",
			AccessTokenTTLHours: 1,
			BcryptCost:          4,
		},
	}
}

func TestRegisterIssuesToken(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), newFakeUserRepo())

	user, token, _, err := svc.Register(context.Background(), "Ana", "ana@example.com", "s3nh4")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.NotEqual(t, "s3nh4", user.PasswordHash)

	userID, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, userID)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), newFakeUserRepo())

	_, _, _, err := svc.Register(context.Background(), "Ana", "ana@example.com", "s3nh4")
	require.NoError(t, err)

	_, _, _, err = svc.Register(context.Background(), "Outra Ana", "ana@example.com", "outra")
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	require.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	require.Equal(t, "Email já cadastrado", domainErr.Message)
}

func TestLoginWithValidCredentials(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), newFakeUserRepo())

	registered, _, _, err := svc.Register(context.Background(), "Ana", "ana@example.com", "s3nh4")
	require.NoError(t, err)

	user, token, _, err := svc.Login(context.Background(), "ana@example.com", "s3nh4")
	require.NoError(t, err)
	require.Equal(t, registered.ID, user.ID)
	require.NotEmpty(t, token)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), newFakeUserRepo())

	_, _, _, err := svc.Register(context.Background(), "Ana", "ana@example.com", "s3nh4")
	require.NoError(t, err)

	// Unknown email and wrong password fail with the same message.
	_, _, _, err = svc.Login(context.Background(), "ninguem@example.com", "s3nh4")
	require.Equal(t, "Email ou senha incorretos", apperrors.ToDomainError(err).Message)

	_, _, _, err = svc.Login(context.Background(), "ana@example.com", "errada")
	require.Equal(t, "Email ou senha incorretos", apperrors.ToDomainError(err).Message)
	require.Equal(t, "UNAUTHORIZED", apperrors.ToDomainError(err).Code)
}
