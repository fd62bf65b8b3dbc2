package utils

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiPlanGenerator implements PlanGeneratorInterface on top of the
// Gemini generative-language API. One instance serves all requests, so
// client construction is guarded for concurrent first use.
type GeminiPlanGenerator struct {
	apiKey   string
	model    string
	initOnce sync.Once
	client   *genai.Client
	initErr  error
}

func NewGeminiPlanGenerator(apiKey, model string) *GeminiPlanGenerator {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	return &GeminiPlanGenerator{
		apiKey: apiKey,
		model:  model,
	}
}

func (g *GeminiPlanGenerator) init(ctx context.Context) error {
	g.initOnce.Do(func() {
		// The key travels in a request header, never in the URL.
		client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
		if err != nil {
			g.initErr = fmt.Errorf("create gemini client: %w", err)
			return
		}
		g.client = client
	})
	return g.initErr
}

func (g *GeminiPlanGenerator) GeneratePlanJSON(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY not set: %w", ErrConfigurationMissing)
	}
	if err := g.init(ctx); err != nil {
		return "", err
	}

	m := g.client.GenerativeModel(g.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)
	m.SetTopP(0.5)
	m.SetTopK(20)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %v: %w", err, ErrBackendCallFailed)
	}
	content, err := geminiResponseText(resp)
	if err != nil {
		return "", err
	}
	return CleanJSONResponse(content), nil
}

// geminiResponseText extracts the first text part. Safety-blocked
// candidates arrive with a nil Content, which counts as empty output.
func geminiResponseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", ErrBackendResponseEmpty
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", ErrBackendResponseEmpty
	}
	return fmt.Sprintf("%v", content.Parts[0]), nil
}

func (g *GeminiPlanGenerator) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}
