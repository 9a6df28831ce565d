package domain

import "time"

// CampaignStatus lifecycle values.
type CampaignStatus string

const (
	CampaignStatusDraft    CampaignStatus = "draft"
	CampaignStatusActive   CampaignStatus = "active"
	CampaignStatusFinished CampaignStatus = "finished"
)

// Campaign is a marketing campaign owned by a business.
type Campaign struct {
	ID          string
	BusinessID  string
	Name        string
	Type        string
	Description *string
	Status      CampaignStatus
	CreatedAt   time.Time
}
