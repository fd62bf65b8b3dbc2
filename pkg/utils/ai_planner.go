package utils

import (
	"context"
	"fmt"
	"strings"
)

// PlanGeneratorInterface is the outbound contract of the remote backend
// variant: send one schema-constrained instruction, get back raw text
// that is expected to parse as the plan document.
type PlanGeneratorInterface interface {
	GeneratePlanJSON(ctx context.Context, prompt string) (string, error)
	Close() error
}

// NewPlanGenerator creates a generator client for the configured
// provider. The credential is checked lazily per request so a missing
// key is reported as a request-level configuration error, not a crash
// at startup.
func NewPlanGenerator(provider, apiKey, model string) (PlanGeneratorInterface, error) {
	switch strings.ToLower(provider) {
	case "gemini":
		return NewGeminiPlanGenerator(apiKey, model), nil
	case "openai":
		return NewOpenAIPlanGenerator(apiKey, model), nil
	default:
		return nil, fmt.Errorf("unsupported plan provider: %s. Use 'gemini' or 'openai'", provider)
	}
}

// CleanJSONResponse strips markdown fences and surrounding prose so the
// remaining text starts at the outermost JSON object.
func CleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	start := strings.Index(response, "{")
	if start == -1 {
		return response
	}
	end := findMatchingBrace(response, start)
	if end == -1 {
		return response
	}
	return strings.TrimSpace(response[start : end+1])
}

func findMatchingBrace(s string, start int) int {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		ch := s[i]
		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}
		switch ch {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
