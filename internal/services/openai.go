package services

import (
	"context"
	"fmt"
	"log"

	openai "github.com/sashabaranov/go-openai"

	"recruitment/interview-assistant/internal/config"
)

// OpenAIService serves chat completions and Whisper transcriptions.
type OpenAIService struct {
	client             *openai.Client
	chatModel          string
	transcriptionModel string
	language           string
	temperature        float32
}

func NewOpenAIService(cfg config.OpenAIConfig, tcfg config.TranscriptionConfig, temperature float32) *OpenAIService {
	return &OpenAIService{
		client:             openai.NewClient(cfg.APIKey),
		chatModel:          cfg.ChatModel,
		transcriptionModel: tcfg.Model,
		language:           tcfg.Language,
		temperature:        temperature,
	}
}

// GenerateText implements LLMService.
func (o *OpenAIService) GenerateText(ctx context.Context, prompt string, maxTokens int32) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   int(maxTokens),
		Temperature: o.temperature,
	})
	if err != nil {
		log.Printf("❌ OpenAI API error: %v", err)
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned from OpenAI API")
	}

	return resp.Choices[0].Message.Content, nil
}

// TranscribeFile implements SpeechToText. The file extension tells the
// provider which audio container it is reading.
func (o *OpenAIService) TranscribeFile(ctx context.Context, path string) (string, error) {
	resp, err := o.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    o.transcriptionModel,
		FilePath: path,
		Language: o.language,
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}
