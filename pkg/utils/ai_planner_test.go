package utils

import (
	"context"
	"sync"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
)

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain json untouched",
			in:   `{"a": 1}`,
			want: `{"a": 1}`,
		},
		{
			name: "markdown fences stripped",
			in:   "```json\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "surrounding prose removed",
			in:   "Here is your plan:\n{\"a\": {\"b\": 2}}\nEnjoy!",
			want: `{"a": {"b": 2}}`,
		},
		{
			name: "braces inside strings ignored",
			in:   `{"a": "value with } brace"} trailing`,
			want: `{"a": "value with } brace"}`,
		},
		{
			name: "no json left as is",
			in:   "no structured content here",
			want: "no structured content here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONResponse(tt.in))
		})
	}
}

func TestNewPlanGenerator(t *testing.T) {
	gen, err := NewPlanGenerator("gemini", "key", "")
	assert.NoError(t, err)
	assert.IsType(t, &GeminiPlanGenerator{}, gen)

	gen, err = NewPlanGenerator("OpenAI", "key", "")
	assert.NoError(t, err)
	assert.IsType(t, &OpenAIPlanGenerator{}, gen)

	_, err = NewPlanGenerator("anthropic", "key", "")
	assert.Error(t, err)
}

func TestPlanGenerators_MissingCredential(t *testing.T) {
	gem := NewGeminiPlanGenerator("", "")
	out, err := gem.GeneratePlanJSON(context.Background(), "{}")
	assert.Empty(t, out)
	assert.ErrorIs(t, err, ErrConfigurationMissing)
	// The guard fires before any client exists, so nothing can go out.
	assert.Nil(t, gem.client)

	oa := NewOpenAIPlanGenerator("", "")
	out, err = oa.GeneratePlanJSON(context.Background(), "{}")
	assert.Empty(t, out)
	assert.ErrorIs(t, err, ErrConfigurationMissing)
}

// A single generator instance serves all requests; first use from many
// goroutines must initialize the client exactly once. The canceled
// context keeps every call local.
func TestGeminiPlanGenerator_ConcurrentFirstUse(t *testing.T) {
	gen := NewGeminiPlanGenerator("test-key", "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := gen.GeneratePlanJSON(ctx, "{}")
			assert.Error(t, err)
		}()
	}
	wg.Wait()
}

func TestGeminiResponseText(t *testing.T) {
	_, err := geminiResponseText(&genai.GenerateContentResponse{})
	assert.ErrorIs(t, err, ErrBackendResponseEmpty)

	// Safety-blocked candidates carry no content.
	blocked := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: nil}},
	}
	_, err = geminiResponseText(blocked)
	assert.ErrorIs(t, err, ErrBackendResponseEmpty)

	ok := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text(`{"a": 1}`)}},
		}},
	}
	text, err := geminiResponseText(ok)
	assert.NoError(t, err)
	assert.Equal(t, `{"a": 1}`, text)
}
