package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/radarclientes/radar-service/internal/api/dto"
	"github.com/radarclientes/radar-service/internal/auth"
	"github.com/radarclientes/radar-service/internal/service"
	apperrors "github.com/radarclientes/radar-service/pkg/util"
)

// BusinessHandler exposes business-profile endpoints.
type BusinessHandler struct {
	service *service.BusinessService
}

// NewBusinessHandler constructs handler.
func NewBusinessHandler(businessService *service.BusinessService) *BusinessHandler {
	return &BusinessHandler{service: businessService}
}

// Create handles POST /api/business.
func (h *BusinessHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	req, err := parseBusinessRequest(c)
	if err != nil {
		return err
	}

	business, err := h.service.Create(c.Context(), principal.User.ID, businessInput(req))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewBusinessResponse(business))
}

// Get handles GET /api/business.
func (h *BusinessHandler) Get(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}

	business, err := h.service.Get(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewBusinessResponse(business))
}

// Update handles PUT /api/business.
func (h *BusinessHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	req, err := parseBusinessRequest(c)
	if err != nil {
		return err
	}

	business, err := h.service.Update(c.Context(), principal.User.ID, businessInput(req))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewBusinessResponse(business))
}

func parseBusinessRequest(c *fiber.Ctx) (dto.BusinessRequest, error) {
	var req dto.BusinessRequest
	if err := c.BodyParser(&req); err != nil {
		return req, apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Niche == "" {
		return req, apperrors.NewValidationError("name and niche required", nil)
	}
	return req, nil
}

func businessInput(req dto.BusinessRequest) service.BusinessInput {
	return service.BusinessInput{
		Name:        req.Name,
		Niche:       req.Niche,
		Description: req.Description,
		City:        req.City,
		State:       req.State,
	}
}
