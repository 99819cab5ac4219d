package services

import (
	"context"
	"log"
	"strings"
	"time"

	"wanderai/pkg/utils"
)

// GenerationResult distinguishes real provider output from the deterministic
// fallback without callers having to depend on log output.
type GenerationResult struct {
	Text         string
	FallbackUsed bool
	Reason       string
}

// GeneratorServiceInterface produces itinerary text. It never fails: any
// provider error is recovered locally by substituting the fallback template.
type GeneratorServiceInterface interface {
	GenerateItinerary(ctx context.Context, destination string, days int, budget string) GenerationResult
}

type GeneratorService struct {
	client  utils.TextGenClientInterface
	timeout time.Duration
}

func NewGeneratorService(client utils.TextGenClientInterface, timeout time.Duration) GeneratorServiceInterface {
	return &GeneratorService{
		client:  client,
		timeout: timeout,
	}
}

func (g *GeneratorService) GenerateItinerary(ctx context.Context, destination string, days int, budget string) GenerationResult {
	if g.client == nil {
		return GenerationResult{
			Text:         buildFallbackItinerary(destination, days, budget),
			FallbackUsed: true,
			Reason:       "no AI provider configured",
		}
	}

	prompt := buildItineraryPrompt(destination, days, budget)

	// Single attempt with an explicit timeout so a hanging provider cannot
	// stall the request. No retries; failure means fallback.
	genCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	text, err := g.client.GenerateText(genCtx, prompt)
	if err != nil {
		log.Printf("AI generation failed, using fallback itinerary: %v", err)
		return GenerationResult{
			Text:         buildFallbackItinerary(destination, days, budget),
			FallbackUsed: true,
			Reason:       err.Error(),
		}
	}
	if strings.TrimSpace(text) == "" {
		log.Println("AI provider returned empty text, using fallback itinerary")
		return GenerationResult{
			Text:         buildFallbackItinerary(destination, days, budget),
			FallbackUsed: true,
			Reason:       "empty response from provider",
		}
	}

	return GenerationResult{Text: text}
}
