package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIPlanGenerator implements PlanGeneratorInterface via chat
// completions with the JSON-object response format.
type OpenAIPlanGenerator struct {
	apiKey string
	model  string
	client *openai.Client
}

func NewOpenAIPlanGenerator(apiKey, model string) *OpenAIPlanGenerator {
	if model == "" {
		model = openai.GPT4oMini
	}
	// Client construction does no I/O, so one instance can be built up
	// front and shared by concurrent requests.
	return &OpenAIPlanGenerator{
		apiKey: apiKey,
		model:  model,
		client: openai.NewClient(apiKey),
	}
}

func (o *OpenAIPlanGenerator) GeneratePlanJSON(ctx context.Context, prompt string) (string, error) {
	if o.apiKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY not set: %w", ErrConfigurationMissing)
	}

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: 0.1,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %v: %w", err, ErrBackendCallFailed)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrBackendResponseEmpty
	}
	return CleanJSONResponse(resp.Choices[0].Message.Content), nil
}

func (o *OpenAIPlanGenerator) Close() error { return nil }
