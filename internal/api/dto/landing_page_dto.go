package dto

import (
	"time"

	"github.com/radarclientes/radar-service/internal/domain"
)

// LandingPageRequest payload for creation.
type LandingPageRequest struct {
	Title       string `json:"title"`
	Headline    string `json:"headline"`
	Description string `json:"description"`
	Offer       string `json:"offer"`
	CTAText     string `json:"cta_text"`
}

// LandingPageResponse is the owner's wire shape of a landing page.
type LandingPageResponse struct {
	ID          string    `json:"id"`
	BusinessID  string    `json:"business_id"`
	Title       string    `json:"title"`
	Headline    string    `json:"headline"`
	Description string    `json:"description"`
	Offer       string    `json:"offer"`
	CTAText     string    `json:"cta_text"`
	Slug        string    `json:"slug"`
	Visits      int       `json:"visits"`
	Conversions int       `json:"conversions"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewLandingPageResponse maps the domain model onto the wire shape.
func NewLandingPageResponse(page *domain.LandingPage) LandingPageResponse {
	return LandingPageResponse{
		ID:          page.ID,
		BusinessID:  page.BusinessID,
		Title:       page.Title,
		Headline:    page.Headline,
		Description: page.Description,
		Offer:       page.Offer,
		CTAText:     page.CTAText,
		Slug:        page.Slug,
		Visits:      page.Visits,
		Conversions: page.Conversions,
		CreatedAt:   page.CreatedAt,
	}
}
