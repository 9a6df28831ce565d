package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/radarclientes/radar-service/internal/domain"
	"github.com/radarclientes/radar-service/internal/persistence"
	"github.com/radarclientes/radar-service/internal/repository"
	apperrors "github.com/radarclientes/radar-service/pkg/util"
)

const publicPageCacheTTL = 5 * time.Minute

// LandingPageInput carries page content fields.
type LandingPageInput struct {
	Title       string
	Headline    string
	Description string
	Offer       string
	CTAText     string
}

// PublicPage is the anonymous view of a landing page: content only, never
// the traffic counters.
type PublicPage struct {
	Title       string `json:"title"`
	Headline    string `json:"headline"`
	Description string `json:"description"`
	Offer       string `json:"offer"`
	CTAText     string `json:"cta_text"`
}

// LandingPageService manages lead-capture pages and their public surface.
type LandingPageService struct {
	pages      repository.LandingPageRepository
	businesses *BusinessService
	leadSvc    *LeadService
	cache      *persistence.Redis
}

// NewLandingPageService builds the service.
func NewLandingPageService(pages repository.LandingPageRepository, businesses *BusinessService, leadSvc *LeadService, cache *persistence.Redis) *LandingPageService {
	return &LandingPageService{pages: pages, businesses: businesses, leadSvc: leadSvc, cache: cache}
}

// Create publishes a new landing page under a generated slug.
func (s *LandingPageService) Create(ctx context.Context, userID string, input LandingPageInput) (*domain.LandingPage, error) {
	business, err := s.businesses.ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ctaText := input.CTAText
	if ctaText == "" {
		ctaText = "Quero Participar"
	}

	page := &domain.LandingPage{
		ID:          uuid.NewString(),
		BusinessID:  business.ID,
		Title:       input.Title,
		Headline:    input.Headline,
		Description: input.Description,
		Offer:       input.Offer,
		CTAText:     ctaText,
		Slug:        newSlug(business.ID),
	}
	if err := s.pages.Create(ctx, page); err != nil {
		return nil, err
	}
	return page, nil
}

// List returns the caller's landing pages.
func (s *LandingPageService) List(ctx context.Context, userID string) ([]domain.LandingPage, error) {
	business, err := s.businesses.ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.pages.ListByBusiness(ctx, business.ID)
}

// PublicPage resolves a page by slug for anonymous visitors and counts the
// visit. Content is cached; the visit counter always hits the database.
func (s *LandingPageService) PublicPage(ctx context.Context, slug string) (*PublicPage, error) {
	cacheKey := "landing_page:" + slug

	if cached, ok := s.cache.GetString(ctx, cacheKey); ok {
		var page PublicPage
		if err := json.Unmarshal([]byte(cached), &page); err == nil {
			_ = s.pages.IncrementVisits(ctx, slug)
			return &page, nil
		}
	}

	stored, err := s.pages.GetBySlug(ctx, slug)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("Página", nil)
		}
		return nil, err
	}

	_ = s.pages.IncrementVisits(ctx, slug)

	page := &PublicPage{
		Title:       stored.Title,
		Headline:    stored.Headline,
		Description: stored.Description,
		Offer:       stored.Offer,
		CTAText:     stored.CTAText,
	}
	if encoded, err := json.Marshal(page); err == nil {
		s.cache.SetString(ctx, cacheKey, string(encoded), publicPageCacheTTL)
	}
	return page, nil
}

// CaptureLead records a visitor signup on a public page. Interest defaults to
// the page offer, and the source names the slug.
func (s *LandingPageService) CaptureLead(ctx context.Context, slug string, input LeadInput) error {
	page, err := s.pages.GetBySlug(ctx, slug)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("Página", nil)
		}
		return err
	}

	if input.Interest == nil || *input.Interest == "" {
		offer := page.Offer
		input.Interest = &offer
	}
	input.Source = "landing_page:" + slug

	if _, err := s.leadSvc.capture(ctx, page.BusinessID, input); err != nil {
		return err
	}
	return s.pages.IncrementConversions(ctx, slug)
}

// newSlug derives a short public identifier from the business id plus fresh
// random material, matching the published URL format.
func newSlug(businessID string) string {
	return businessID[:8] + "-" + uuid.NewString()[:8]
}
