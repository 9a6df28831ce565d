package dto

import (
	"time"

	"github.com/radarclientes/radar-service/internal/domain"
)

// MarketInsightRequest selects the market analysis to generate.
type MarketInsightRequest struct {
	Niche string `json:"niche"`
	City  string `json:"city"`
	Type  string `json:"type"`
}

// StrategyRequest selects the strategy content to generate.
type StrategyRequest struct {
	Niche       string `json:"niche"`
	InsightType string `json:"insight_type"`
}

// MarketInsightResponse echoes generated content and the requested type.
type MarketInsightResponse struct {
	Insight string `json:"insight"`
	Type    string `json:"type"`
}

// StrategyResponse echoes generated content and the requested type.
type StrategyResponse struct {
	Strategy string `json:"strategy"`
	Type     string `json:"type"`
}

// InsightResponse is the wire shape of a persisted insight.
type InsightResponse struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"business_id"`
	Type       string    `json:"type"`
	Niche      string    `json:"niche"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewInsightResponse maps the domain model onto the wire shape.
func NewInsightResponse(insight *domain.Insight) InsightResponse {
	return InsightResponse{
		ID:         insight.ID,
		BusinessID: insight.BusinessID,
		Type:       string(insight.Type),
		Niche:      insight.Niche,
		Content:    insight.Content,
		CreatedAt:  insight.CreatedAt,
	}
}
