package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/radarclientes/radar-service/internal/api/dto"
	"github.com/radarclientes/radar-service/internal/auth"
	"github.com/radarclientes/radar-service/internal/domain"
	"github.com/radarclientes/radar-service/internal/service"
	apperrors "github.com/radarclientes/radar-service/pkg/util"
)

// LeadsHandler exposes lead CRUD endpoints.
type LeadsHandler struct {
	service *service.LeadService
}

// NewLeadsHandler constructs handler.
func NewLeadsHandler(leadService *service.LeadService) *LeadsHandler {
	return &LeadsHandler{service: leadService}
}

// Create handles POST /api/leads.
func (h *LeadsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.LeadRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}

	lead, err := h.service.Create(c.Context(), principal.User.ID, service.LeadInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Interest: req.Interest,
		Source:   req.Source,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(dto.NewLeadResponse(lead))
}

// List handles GET /api/leads.
func (h *LeadsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}

	leads, err := h.service.List(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	items := make([]dto.LeadResponse, 0, len(leads))
	for i := range leads {
		items = append(items, dto.NewLeadResponse(&leads[i]))
	}
	return c.JSON(items)
}

// UpdateStatus handles PUT /api/leads/:id/status. The new status may arrive
// as a query parameter or a JSON body.
func (h *LeadsHandler) UpdateStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}

	status := c.Query("status")
	if status == "" {
		var req dto.LeadStatusRequest
		if err := c.BodyParser(&req); err == nil {
			status = req.Status
		}
	}
	if status == "" {
		return apperrors.NewValidationError("status required", nil)
	}

	if err := h.service.UpdateStatus(c.Context(), principal.User.ID, c.Params("id"), domain.LeadStatus(status)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Status atualizado com sucesso"})
}

// Delete handles DELETE /api/leads/:id.
func (h *LeadsHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}

	if err := h.service.Delete(c.Context(), principal.User.ID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Lead removido com sucesso"})
}
