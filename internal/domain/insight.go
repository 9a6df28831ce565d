package domain

import "time"

// InsightType selects which market analysis the generator produces.
type InsightType string

const (
	InsightTrends        InsightType = "trends"
	InsightComplaints    InsightType = "complaints"
	InsightOpportunities InsightType = "opportunities"
)

// StrategyType selects which strategy content the generator produces.
type StrategyType string

const (
	StrategyCampaign  StrategyType = "campaign"
	StrategyContent   StrategyType = "content"
	StrategyPromotion StrategyType = "promotion"
)

// Insight is a persisted market analysis produced for a business.
// Content holds the raw generator output; it may or may not be valid JSON.
type Insight struct {
	ID         string
	BusinessID string
	Type       InsightType
	Niche      string
	Content    string
	CreatedAt  time.Time
}
