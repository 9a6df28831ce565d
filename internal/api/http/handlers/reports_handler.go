package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/radarclientes/radar-service/internal/api/dto"
	"github.com/radarclientes/radar-service/internal/auth"
	"github.com/radarclientes/radar-service/internal/domain"
	"github.com/radarclientes/radar-service/internal/service"
	apperrors "github.com/radarclientes/radar-service/pkg/util"
)

// ReportsHandler exposes dashboard and report endpoints.
type ReportsHandler struct {
	service *service.ReportService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(reportService *service.ReportService) *ReportsHandler {
	return &ReportsHandler{service: reportService}
}

// Dashboard handles GET /api/reports/dashboard.
func (h *ReportsHandler) Dashboard(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}

	dashboard, err := h.service.Dashboard(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(dashboard)
}

// Generate handles POST /api/reports/generate.
func (h *ReportsHandler) Generate(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.ReportRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Period == "" {
		req.Period = string(domain.ReportWeekly)
	}

	report, err := h.service.Generate(c.Context(), principal.User.ID, domain.ReportPeriod(req.Period))
	if err != nil {
		return err
	}
	return c.JSON(report)
}

// History handles GET /api/reports/history.
func (h *ReportsHandler) History(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}

	reports, err := h.service.History(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	items := make([]dto.ReportResponse, 0, len(reports))
	for i := range reports {
		items = append(items, dto.NewReportResponse(&reports[i]))
	}
	return c.JSON(items)
}
