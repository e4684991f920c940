package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaptarshiMaity01/ai-resume-shortlisting/internal/config"
)

func TestResolveModel(t *testing.T) {
	assert.Equal(t, "qwen-qwq-32b", resolveModel("", defaultGroqModel))
	assert.Equal(t, "gemini-2.5-flash", resolveModel("", defaultGeminiModel))
	assert.Equal(t, "llama-3.3-70b", resolveModel("llama-3.3-70b", defaultGroqModel))
}

func TestNewGroqServiceUsesConfiguredModel(t *testing.T) {
	svc := NewGroqService(config.LLMConfig{
		GroqAPIKey: "test-key",
		BaseURL:    "https://api.groq.com/openai/v1",
		Model:      "llama-3.3-70b",
	})

	assert.Equal(t, "llama-3.3-70b", svc.(*groqService).model)
}

func TestNewGroqServiceDefaultsModel(t *testing.T) {
	svc := NewGroqService(config.LLMConfig{
		GroqAPIKey: "test-key",
		BaseURL:    "https://api.groq.com/openai/v1",
	})

	assert.Equal(t, defaultGroqModel, svc.(*groqService).model)
}

func TestNewGeminiServiceModelResolution(t *testing.T) {
	svc, err := NewGeminiService(config.LLMConfig{
		GeminiAPIKey: "test-key",
		Model:        "gemini-2.0-pro",
	})
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.0-pro", svc.(*geminiService).modelName)

	svc, err = NewGeminiService(config.LLMConfig{GeminiAPIKey: "test-key"})
	require.NoError(t, err)
	assert.Equal(t, defaultGeminiModel, svc.(*geminiService).modelName)
}
