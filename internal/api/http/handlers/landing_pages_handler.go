package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/radarclientes/radar-service/internal/api/dto"
	"github.com/radarclientes/radar-service/internal/auth"
	"github.com/radarclientes/radar-service/internal/service"
	apperrors "github.com/radarclientes/radar-service/pkg/util"
)

// LandingPagesHandler exposes owner-side landing page endpoints.
type LandingPagesHandler struct {
	service *service.LandingPageService
}

// NewLandingPagesHandler constructs handler.
func NewLandingPagesHandler(pageService *service.LandingPageService) *LandingPagesHandler {
	return &LandingPagesHandler{service: pageService}
}

// Create handles POST /api/landing-pages.
func (h *LandingPagesHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.LandingPageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Title == "" || req.Headline == "" || req.Description == "" || req.Offer == "" {
		return apperrors.NewValidationError("title, headline, description, offer required", nil)
	}

	page, err := h.service.Create(c.Context(), principal.User.ID, service.LandingPageInput{
		Title:       req.Title,
		Headline:    req.Headline,
		Description: req.Description,
		Offer:       req.Offer,
		CTAText:     req.CTAText,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewLandingPageResponse(page))
}

// List handles GET /api/landing-pages.
func (h *LandingPagesHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}

	pages, err := h.service.List(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	items := make([]dto.LandingPageResponse, 0, len(pages))
	for i := range pages {
		items = append(items, dto.NewLandingPageResponse(&pages[i]))
	}
	return c.JSON(items)
}
