package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/radarclientes/radar-service/internal/ai"
	"github.com/radarclientes/radar-service/internal/config"
	"github.com/radarclientes/radar-service/internal/domain"
	"github.com/radarclientes/radar-service/internal/persistence"
	"github.com/radarclientes/radar-service/internal/repository"
)

const missingKeyNotice = "Chave de API do Gemini não configurada."

// MarketInsightInput selects the market analysis to generate.
type MarketInsightInput struct {
	Niche string
	City  string
	Type  domain.InsightType
}

// StrategyInput selects the strategy content to generate.
type StrategyInput struct {
	Niche string
	Type  domain.StrategyType
}

// InsightService produces AI market insights and strategies.
type InsightService struct {
	insights   repository.InsightRepository
	businesses *BusinessService
	generator  ai.Generator
	cache      *persistence.Redis
	cfg        config.AIConfig
	logger     *zap.Logger
}

// NewInsightService builds the service. generator may be nil when no API key
// is configured.
func NewInsightService(insights repository.InsightRepository, businesses *BusinessService, generator ai.Generator, cache *persistence.Redis, cfg config.AIConfig, logger *zap.Logger) *InsightService {
	return &InsightService{
		insights:   insights,
		businesses: businesses,
		generator:  generator,
		cache:      cache,
		cfg:        cfg,
		logger:     logger,
	}
}

// Market generates a market insight for the caller's business and persists it.
func (s *InsightService) Market(ctx context.Context, userID string, input MarketInsightInput) (*domain.Insight, error) {
	business, err := s.businesses.ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("insight:market:%s:%s:%s", input.Type, input.Niche, input.City)
	prompt := ai.MarketPrompt(input.Type, input.Niche, input.City)
	content := s.generate(ctx, cacheKey, ai.SystemMessage, prompt)

	insight := &domain.Insight{
		ID:         uuid.NewString(),
		BusinessID: business.ID,
		Type:       input.Type,
		Niche:      input.Niche,
		Content:    content,
	}
	if err := s.insights.Create(ctx, insight); err != nil {
		return nil, err
	}
	return insight, nil
}

// Strategy generates strategy content. Unlike market insights it needs no
// business profile and is not persisted.
func (s *InsightService) Strategy(ctx context.Context, input StrategyInput) (string, error) {
	cacheKey := fmt.Sprintf("insight:strategy:%s:%s", input.Type, input.Niche)
	prompt := ai.StrategyPrompt(input.Type, input.Niche)
	return s.generate(ctx, cacheKey, ai.SystemMessage, prompt), nil
}

// History returns the latest persisted insights for the caller's business.
func (s *InsightService) History(ctx context.Context, userID string, limit int) ([]domain.Insight, error) {
	business, err := s.businesses.ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 10
	}
	return s.insights.ListByBusiness(ctx, business.ID, limit)
}

// generate runs one completion through the cache. Generation failures are
// folded into the returned text rather than surfaced as HTTP errors, so a
// flaky AI backend never breaks the page that requested the content.
func (s *InsightService) generate(ctx context.Context, cacheKey, systemMessage, prompt string) string {
	if s.generator == nil {
		return missingKeyNotice
	}

	if cacheKey != "" {
		if cached, ok := s.cache.GetString(ctx, cacheKey); ok {
			return cached
		}
	}

	genCtx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout())
	defer cancel()

	content, err := s.generator.Generate(genCtx, systemMessage, prompt)
	if err != nil {
		s.logger.Error("content generation failed", zap.Error(err))
		return fmt.Sprintf("Erro ao processar: %v", err)
	}

	if ttl := s.cfg.CacheTTL(); ttl > 0 && cacheKey != "" {
		s.cache.SetString(ctx, cacheKey, content, ttl)
	}
	return content
}

// Generate exposes generation for sibling services (reports). An empty
// cacheKey bypasses the cache.
func (s *InsightService) Generate(ctx context.Context, cacheKey, systemMessage, prompt string) string {
	return s.generate(ctx, cacheKey, systemMessage, prompt)
}
