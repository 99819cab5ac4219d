package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAITextGenClient implements TextGenClientInterface using OpenAI chat models.
type OpenAITextGenClient struct {
	client *openai.Client
	model  string
}

func NewOpenAITextGenClient(apiKey, model string) TextGenClientInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAITextGenClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAITextGenClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai API call failed: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("no content generated by OpenAI")
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAITextGenClient) Close() error {
	return nil
}
