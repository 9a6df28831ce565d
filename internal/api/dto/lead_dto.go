package dto

import (
	"time"

	"github.com/radarclientes/radar-service/internal/domain"
)

// LeadRequest payload for manual creation and landing-page capture.
type LeadRequest struct {
	Name     string  `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Interest *string `json:"interest"`
	Source   string  `json:"source"`
}

// LeadStatusRequest payload for status updates.
type LeadStatusRequest struct {
	Status string `json:"status"`
}

// LeadResponse is the wire shape of a lead.
type LeadResponse struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"business_id"`
	Name       string    `json:"name"`
	Email      *string   `json:"email"`
	Phone      *string   `json:"phone"`
	Interest   *string   `json:"interest"`
	Source     string    `json:"source"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewLeadResponse maps the domain model onto the wire shape.
func NewLeadResponse(lead *domain.Lead) LeadResponse {
	return LeadResponse{
		ID:         lead.ID,
		BusinessID: lead.BusinessID,
		Name:       lead.Name,
		Email:      lead.Email,
		Phone:      lead.Phone,
		Interest:   lead.Interest,
		Source:     lead.Source,
		Status:     string(lead.Status),
		CreatedAt:  lead.CreatedAt,
	}
}
