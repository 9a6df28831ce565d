package ai

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/radarclientes/radar-service/internal/config"
)

// Generator produces marketing content through the Gemini API.
type Generator interface {
	Generate(ctx context.Context, systemMessage, prompt string) (string, error)
}

// GeminiGenerator implements Generator on top of google.golang.org/genai.
type GeminiGenerator struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

// NewGeminiGenerator creates a Gemini-backed generator. A nil generator is
// returned when no API key is configured; callers fall back to a notice.
func NewGeminiGenerator(ctx context.Context, cfg config.AIConfig, logger *zap.Logger) (*GeminiGenerator, error) {
	if cfg.APIKey == "" {
		return nil, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiGenerator{
		client: client,
		model:  cfg.Model,
		logger: logger,
	}, nil
}

// Generate runs a single completion, prefixing the system message to the
// prompt the same way the prompt templates expect.
func (g *GeminiGenerator) Generate(ctx context.Context, systemMessage, prompt string) (string, error) {
	var cfg *genai.GenerateContentConfig
	if systemMessage != "" {
		cfg = &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemMessage, genai.RoleUser),
		}
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		g.logger.Error("gemini generation failed", zap.Error(err))
		return "", fmt.Errorf("generate content: %w", err)
	}

	return resp.Text(), nil
}
