package dto

import (
	"time"

	"github.com/radarclientes/radar-service/internal/domain"
)

// CampaignRequest payload for creation.
type CampaignRequest struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
}

// CampaignResponse is the wire shape of a campaign.
type CampaignResponse struct {
	ID          string    `json:"id"`
	BusinessID  string    `json:"business_id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewCampaignResponse maps the domain model onto the wire shape.
func NewCampaignResponse(campaign *domain.Campaign) CampaignResponse {
	return CampaignResponse{
		ID:          campaign.ID,
		BusinessID:  campaign.BusinessID,
		Name:        campaign.Name,
		Type:        campaign.Type,
		Description: campaign.Description,
		Status:      string(campaign.Status),
		CreatedAt:   campaign.CreatedAt,
	}
}
