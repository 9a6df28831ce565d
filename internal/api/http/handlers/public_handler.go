package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/radarclientes/radar-service/internal/api/dto"
	"github.com/radarclientes/radar-service/internal/service"
	apperrors "github.com/radarclientes/radar-service/pkg/util"
)

// PublicHandler exposes the unauthenticated landing-page surface.
type PublicHandler struct {
	service *service.LandingPageService
}

// NewPublicHandler constructs handler.
func NewPublicHandler(pageService *service.LandingPageService) *PublicHandler {
	return &PublicHandler{service: pageService}
}

// GetPage handles GET /api/p/:slug.
func (h *PublicHandler) GetPage(c *fiber.Ctx) error {
	page, err := h.service.PublicPage(c.Context(), c.Params("slug"))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// CaptureLead handles POST /api/p/:slug/lead.
func (h *PublicHandler) CaptureLead(c *fiber.Ctx) error {
	var req dto.LeadRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}

	if err := h.service.CaptureLead(c.Context(), c.Params("slug"), service.LeadInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Interest: req.Interest,
	}); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Cadastro realizado com sucesso!"})
}
