package llm

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGeminiSchema(t *testing.T) {
	s := geminiSchema(walkthroughSchema().Definition)

	assert.Equal(t, genai.TypeObject, s.Type)
	require.Contains(t, s.Properties, "steps")
	assert.Equal(t, genai.TypeArray, s.Properties["steps"].Type)
	require.NotNil(t, s.Properties["steps"].Items)
	assert.Equal(t, genai.TypeString, s.Properties["steps"].Items.Type)
	assert.Equal(t, []string{"easy", "hard"}, s.Properties["effort"].Enum)
	assert.ElementsMatch(t, []string{"steps", "tip"}, s.Required)
}

func TestGeminiProvider_Structured(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, map[string]any{
		"candidates": []map[string]any{{
			"content": map[string]any{
				"role":  "model",
				"parts": []map[string]any{{"text": `{"steps":["Count on from 47."],"tip":"Use tens."}`}},
			},
			"finishReason": "STOP",
		}},
		"usageMetadata": map[string]any{
			"promptTokenCount":     12,
			"candidatesTokenCount": 8,
			"totalTokenCount":      20,
		},
	})

	p, err := NewGeminiProvider(context.Background(), GeminiConfig{APIKey: "k", Model: "gemini-flash", BaseURL: srv.URL})
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.0-flash", p.ModelID())

	req := prompt()
	req.Schema = walkthroughSchema()
	resp, err := p.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, Usage{InputTokens: 12, OutputTokens: 8, TotalTokens: 20}, resp.Usage)
	assert.JSONEq(t, `{"steps":["Count on from 47."],"tip":"Use tens."}`, string(resp.Content))
}

func TestGeminiProvider_RateLimit(t *testing.T) {
	srv := jsonServer(t, http.StatusTooManyRequests, map[string]any{
		"error": map[string]any{"code": 429, "message": "quota", "status": "RESOURCE_EXHAUSTED"},
	})
	p, err := NewGeminiProvider(context.Background(), GeminiConfig{APIKey: "k", Model: "gemini-flash", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), prompt())
	var rl *RateLimitError
	assert.ErrorAs(t, err, &rl)
}
