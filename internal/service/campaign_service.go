package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/radarclientes/radar-service/internal/domain"
	"github.com/radarclientes/radar-service/internal/repository"
)

// CampaignInput carries campaign fields.
type CampaignInput struct {
	Name        string
	Type        string
	Description *string
	Status      domain.CampaignStatus
}

// CampaignService manages marketing campaigns of a business.
type CampaignService struct {
	campaigns  repository.CampaignRepository
	businesses *BusinessService
}

// NewCampaignService builds the service.
func NewCampaignService(campaigns repository.CampaignRepository, businesses *BusinessService) *CampaignService {
	return &CampaignService{campaigns: campaigns, businesses: businesses}
}

// Create records a campaign for the caller's business.
func (s *CampaignService) Create(ctx context.Context, userID string, input CampaignInput) (*domain.Campaign, error) {
	business, err := s.businesses.ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.CampaignStatusDraft
	}

	campaign := &domain.Campaign{
		ID:          uuid.NewString(),
		BusinessID:  business.ID,
		Name:        input.Name,
		Type:        input.Type,
		Description: input.Description,
		Status:      status,
	}
	if err := s.campaigns.Create(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// List returns all campaigns of the caller's business.
func (s *CampaignService) List(ctx context.Context, userID string) ([]domain.Campaign, error) {
	business, err := s.businesses.ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.campaigns.ListByBusiness(ctx, business.ID)
}
