package services

import (
	"context"
	"fmt"

	"recruitment/interview-assistant/internal/config"
)

// LLMService sends a single prompt and returns the raw completion text.
// Implementations make exactly one attempt.
type LLMService interface {
	GenerateText(ctx context.Context, prompt string, maxTokens int32) (string, error)
}

// Embedder turns text into a dense vector for the CV index.
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// NewLLMService picks the provider named by cfg.LLM.Provider.
func NewLLMService(cfg *config.Config) (LLMService, error) {
	switch cfg.LLM.Provider {
	case "gemini":
		return NewGeminiService(cfg.Gemini, cfg.LLM.Temperature)
	case "openai":
		return NewOpenAIService(cfg.OpenAI, cfg.Transcription, cfg.LLM.Temperature), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.LLM.Provider)
	}
}
