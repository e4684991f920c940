package services

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/SaptarshiMaity01/ai-resume-shortlisting/internal/config"
)

// CompletionService is the opaque text-completion endpoint the analyzer
// talks to. Implementations send exactly one user-role message and return
// the text of the first choice.
type CompletionService interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Per-provider fallbacks applied when LLM_MODEL is unset.
const (
	defaultGroqModel   = "qwen-qwq-32b"
	defaultGeminiModel = "gemini-2.5-flash"
)

// resolveModel picks the configured model name, falling back to the
// provider's default when none is configured.
func resolveModel(configured, defaultModel string) string {
	if configured == "" {
		return defaultModel
	}
	return configured
}

type groqService struct {
	client *openai.Client
	model  string
	cfg    config.LLMConfig
}

// NewGroqService builds a completion client against any OpenAI-compatible
// chat endpoint (Groq by default, per the configured base URL).
func NewGroqService(cfg config.LLMConfig) CompletionService {
	client := openai.NewClient(
		option.WithBaseURL(cfg.BaseURL),
		option.WithAPIKey(cfg.GroqAPIKey),
	)
	return &groqService{
		client: client,
		model:  resolveModel(cfg.Model, defaultGroqModel),
		cfg:    cfg,
	}
}

// Complete implements CompletionService.
func (g *groqService) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		}),
		Model:               openai.F(g.model),
		Temperature:         openai.F(g.cfg.Temperature),
		MaxCompletionTokens: openai.F(g.cfg.MaxTokens),
		TopP:                openai.F(g.cfg.TopP),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion choices in response")
	}

	return resp.Choices[0].Message.Content, nil
}
