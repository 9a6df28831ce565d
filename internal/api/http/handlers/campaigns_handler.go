package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/radarclientes/radar-service/internal/api/dto"
	"github.com/radarclientes/radar-service/internal/auth"
	"github.com/radarclientes/radar-service/internal/domain"
	"github.com/radarclientes/radar-service/internal/service"
	apperrors "github.com/radarclientes/radar-service/pkg/util"
)

// CampaignsHandler exposes campaign endpoints.
type CampaignsHandler struct {
	service *service.CampaignService
}

// NewCampaignsHandler constructs handler.
func NewCampaignsHandler(campaignService *service.CampaignService) *CampaignsHandler {
	return &CampaignsHandler{service: campaignService}
}

// Create handles POST /api/campaigns.
func (h *CampaignsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Type == "" {
		return apperrors.NewValidationError("name and type required", nil)
	}

	campaign, err := h.service.Create(c.Context(), principal.User.ID, service.CampaignInput{
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		Status:      domain.CampaignStatus(req.Status),
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCampaignResponse(campaign))
}

// List handles GET /api/campaigns.
func (h *CampaignsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}

	campaigns, err := h.service.List(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	items := make([]dto.CampaignResponse, 0, len(campaigns))
	for i := range campaigns {
		items = append(items, dto.NewCampaignResponse(&campaigns[i]))
	}
	return c.JSON(items)
}
