package services

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"

	"recruitment/interview-assistant/internal/config"
)

type GeminiService interface {
	LLMService
	Embedder
}

type geminiService struct {
	client      *genai.Client
	modelName   string
	embedModel  string
	temperature float32
}

func NewGeminiService(cfg config.GeminiConfig, temperature float32) (GeminiService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:      client,
		modelName:   cfg.Model,
		embedModel:  cfg.EmbedModel,
		temperature: temperature,
	}, nil
}

// GenerateEmbedding implements Embedder.
func (g *geminiService) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	// Truncate text if too long (max ~10000 tokens for embedding)
	if len(text) > 40000 {
		text = truncateRunes(text, 40000)
	}

	result, err := g.client.Models.EmbedContent(ctx, g.embedModel, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if result == nil || len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}

	return result.Embeddings[0].Values, nil
}

// GenerateText implements LLMService.
func (g *geminiService) GenerateText(ctx context.Context, prompt string, maxTokens int32) (string, error) {
	temperature := g.temperature
	cfg := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: maxTokens,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), cfg)
	if err != nil {
		log.Printf("❌ Gemini API error: %v", err)
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	log.Printf("📊 Gemini response received: %d characters", len(text))
	return text, nil
}
