package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/radarclientes/radar-service/internal/api/dto"
	"github.com/radarclientes/radar-service/internal/auth"
	"github.com/radarclientes/radar-service/internal/domain"
	"github.com/radarclientes/radar-service/internal/service"
	apperrors "github.com/radarclientes/radar-service/pkg/util"
)

// InsightsHandler exposes AI content generation endpoints.
type InsightsHandler struct {
	service *service.InsightService
}

// NewInsightsHandler constructs handler.
func NewInsightsHandler(insightService *service.InsightService) *InsightsHandler {
	return &InsightsHandler{service: insightService}
}

// Market handles POST /api/insights/market.
func (h *InsightsHandler) Market(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.MarketInsightRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Niche == "" {
		return apperrors.NewValidationError("niche required", nil)
	}
	if req.Type == "" {
		req.Type = string(domain.InsightTrends)
	}

	insight, err := h.service.Market(c.Context(), principal.User.ID, service.MarketInsightInput{
		Niche: req.Niche,
		City:  req.City,
		Type:  domain.InsightType(req.Type),
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.MarketInsightResponse{Insight: insight.Content, Type: string(insight.Type)})
}

// Strategy handles POST /api/insights/strategy.
func (h *InsightsHandler) Strategy(c *fiber.Ctx) error {
	if _, ok := auth.PrincipalFromContext(c); !ok {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.StrategyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Niche == "" {
		return apperrors.NewValidationError("niche required", nil)
	}
	if req.InsightType == "" {
		req.InsightType = string(domain.StrategyCampaign)
	}

	content, err := h.service.Strategy(c.Context(), service.StrategyInput{
		Niche: req.Niche,
		Type:  domain.StrategyType(req.InsightType),
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.StrategyResponse{Strategy: content, Type: req.InsightType})
}

// History handles GET /api/insights/history.
func (h *InsightsHandler) History(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}

	insights, err := h.service.History(c.Context(), principal.User.ID, c.QueryInt("limit", 10))
	if err != nil {
		return err
	}

	out := make([]dto.InsightResponse, 0, len(insights))
	for i := range insights {
		out = append(out, dto.NewInsightResponse(&insights[i]))
	}
	return c.JSON(out)
}
