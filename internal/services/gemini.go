package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/SaptarshiMaity01/ai-resume-shortlisting/internal/config"
)

type geminiService struct {
	client    *genai.Client
	modelName string
	cfg       config.LLMConfig
}

// NewGeminiService builds the alternative Gemini-backed completion client.
func NewGeminiService(cfg config.LLMConfig) (CompletionService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:    client,
		modelName: resolveModel(cfg.Model, defaultGeminiModel),
		cfg:       cfg,
	}, nil
}

// Complete implements CompletionService.
func (g *geminiService) Complete(ctx context.Context, prompt string) (string, error) {
	temperature := float32(g.cfg.Temperature)
	topP := float32(g.cfg.TopP)
	genConfig := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		TopP:            &topP,
		MaxOutputTokens: int32(g.cfg.MaxTokens),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), genConfig)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}
