package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/radarclientes/radar-service/internal/events"
	apperrors "github.com/radarclientes/radar-service/pkg/util"
)

func TestBusinessCreateAndGet(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	svc := NewBusinessService(newFakeBusinessRepo(), dispatcher)

	city := "São Paulo"
	created, err := svc.Create(context.Background(), "u1", BusinessInput{
		Name:  "Salão X",
		Niche: "salao_beleza",
		City:  &city,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, []events.EventType{events.EventBusinessCreated}, dispatcher.types())

	got, err := svc.Get(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, "Salão X", got.Name)
}

func TestBusinessCreateRejectsSecondProfile(t *testing.T) {
	svc := NewBusinessService(newFakeBusinessRepo(), nil)

	_, err := svc.Create(context.Background(), "u1", BusinessInput{Name: "Salão X", Niche: "salao_beleza"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "u1", BusinessInput{Name: "Outro", Niche: "restaurante"})
	require.Error(t, err)
	require.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestBusinessGetWithoutProfile(t *testing.T) {
	svc := NewBusinessService(newFakeBusinessRepo(), nil)

	_, err := svc.Get(context.Background(), "u1")
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	require.Equal(t, "NOT_FOUND", domainErr.Code)
	require.Equal(t, "Negócio não encontrado", domainErr.Message)
}

func TestBusinessUpdate(t *testing.T) {
	svc := NewBusinessService(newFakeBusinessRepo(), nil)

	created, err := svc.Create(context.Background(), "u1", BusinessInput{Name: "Salão X", Niche: "salao_beleza"})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), "u1", BusinessInput{Name: "Salão Y", Niche: "salao_beleza"})
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, "Salão Y", updated.Name)
}

func TestBusinessUpdateWithoutProfile(t *testing.T) {
	svc := NewBusinessService(newFakeBusinessRepo(), nil)

	_, err := svc.Update(context.Background(), "u1", BusinessInput{Name: "Salão X", Niche: "salao_beleza"})
	require.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestForUserCarriesOnboardingHint(t *testing.T) {
	svc := NewBusinessService(newFakeBusinessRepo(), nil)

	_, err := svc.ForUser(context.Background(), "u1")
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	require.Equal(t, "NOT_FOUND", domainErr.Code)
	require.Equal(t, "Configure seu negócio primeiro.", domainErr.Details["hint"])
}
