package utils

import (
	"context"
	"fmt"
	"strings"
)

// TextGenClientInterface is the contract for the external generative-text
// provider: prompt in, plain text out, or an error. No retries, no streaming.
type TextGenClientInterface interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	Close() error
}

// NewTextGenClient creates either a Gemini or an OpenAI client based on config.
func NewTextGenClient(provider, apiKey, model string) (TextGenClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAITextGenClient(apiKey, model), nil
	case "gemini":
		return NewGeminiTextGenClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s. Use 'openai' or 'gemini'", provider)
	}
}
