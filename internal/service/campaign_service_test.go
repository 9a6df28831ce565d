package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/radarclientes/radar-service/internal/domain"
	apperrors "github.com/radarclientes/radar-service/pkg/util"
)

func campaignFixture(t *testing.T) *CampaignService {
	t.Helper()
	businesses := NewBusinessService(newFakeBusinessRepo(), nil)
	_, err := businesses.Create(context.Background(), "u1", BusinessInput{Name: "Salão X", Niche: "salao_beleza"})
	require.NoError(t, err)
	return NewCampaignService(newFakeCampaignRepo(), businesses)
}

func TestCampaignCreateDefaultsToDraft(t *testing.T) {
	svc := campaignFixture(t)

	campaign, err := svc.Create(context.Background(), "u1", CampaignInput{
		Name: "Semana do Cliente",
		Type: "promocao",
	})
	require.NoError(t, err)
	require.Equal(t, domain.CampaignStatusDraft, campaign.Status)

	listed, err := svc.List(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, campaign.ID, listed[0].ID)
}

func TestCampaignCreateKeepsExplicitStatus(t *testing.T) {
	svc := campaignFixture(t)

	campaign, err := svc.Create(context.Background(), "u1", CampaignInput{
		Name:   "Black Friday",
		Type:   "promocao",
		Status: domain.CampaignStatusActive,
	})
	require.NoError(t, err)
	require.Equal(t, domain.CampaignStatusActive, campaign.Status)
}

func TestCampaignRequiresBusiness(t *testing.T) {
	businesses := NewBusinessService(newFakeBusinessRepo(), nil)
	svc := NewCampaignService(newFakeCampaignRepo(), businesses)

	_, err := svc.Create(context.Background(), "u-sem-negocio", CampaignInput{Name: "X", Type: "promocao"})
	require.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}
