package dto

import (
	"time"

	"github.com/radarclientes/radar-service/internal/domain"
)

// BusinessRequest payload for create and update.
type BusinessRequest struct {
	Name        string  `json:"name"`
	Niche       string  `json:"niche"`
	Description *string `json:"description"`
	City        *string `json:"city"`
	State       *string `json:"state"`
}

// BusinessResponse is the wire shape of a business profile.
type BusinessResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Niche       string    `json:"niche"`
	Description *string   `json:"description"`
	City        *string   `json:"city"`
	State       *string   `json:"state"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewBusinessResponse maps the domain model onto the wire shape.
func NewBusinessResponse(business *domain.Business) BusinessResponse {
	return BusinessResponse{
		ID:          business.ID,
		UserID:      business.UserID,
		Name:        business.Name,
		Niche:       business.Niche,
		Description: business.Description,
		City:        business.City,
		State:       business.State,
		CreatedAt:   business.CreatedAt,
	}
}
