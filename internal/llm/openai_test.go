package llm

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatCompletion(content, finish string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1234567890,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": finish,
		}},
		"usage": map[string]any{"prompt_tokens": 40, "completion_tokens": 25, "total_tokens": 65},
	}
}

func TestOpenAIProvider_Structured(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, chatCompletion(`{"steps":["7 + 8 = 15"],"tip":"Line up the digits."}`, "stop"))
	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "k", Model: "gpt-4o-mini", BaseURL: srv.URL})
	require.NoError(t, err)

	req := prompt()
	req.Schema = walkthroughSchema()
	resp, err := p.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, Usage{InputTokens: 40, OutputTokens: 25, TotalTokens: 65}, resp.Usage)
	assert.Equal(t, "gpt-4o-mini", resp.Model)
	assert.Equal(t, "end", resp.StopReason)
	assert.Equal(t, "openai", p.Name())
}

func TestOpenAIProvider_PlainText(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, chatCompletion("Add the ones first.", "length"))
	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "k", Model: "gpt-4o-mini", BaseURL: srv.URL})
	require.NoError(t, err)

	resp, err := p.Generate(context.Background(), prompt())
	require.NoError(t, err)
	assert.Equal(t, "Add the ones first.", string(resp.Content))
	assert.Equal(t, "max_tokens", resp.StopReason)
}

func TestOpenAIProvider_ErrorMapping(t *testing.T) {
	body := map[string]any{"error": map[string]any{"message": "slow down", "type": "rate_limit"}}

	srv := jsonServer(t, http.StatusTooManyRequests, body)
	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "k", Model: "gpt-4o-mini", BaseURL: srv.URL})
	require.NoError(t, err)
	_, err = p.Generate(context.Background(), prompt())
	var rl *RateLimitError
	assert.ErrorAs(t, err, &rl)

	srv = jsonServer(t, http.StatusBadGateway, body)
	p, err = NewOpenAIProvider(OpenAIConfig{APIKey: "k", Model: "gpt-4o-mini", BaseURL: srv.URL})
	require.NoError(t, err)
	_, err = p.Generate(context.Background(), prompt())
	var down *UnavailableError
	require.ErrorAs(t, err, &down)
	assert.Equal(t, ProviderOpenAI, down.Provider)
}

func TestOpenRouterProvider(t *testing.T) {
	_, err := NewOpenRouterProvider(OpenRouterConfig{})
	assert.Error(t, err)

	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "k", Model: "meta-llama/llama-3-8b"})
	require.NoError(t, err)
	assert.Equal(t, "openrouter", p.Name())
	assert.Equal(t, "meta-llama/llama-3-8b", p.ModelID())

	srv := jsonServer(t, http.StatusOK, chatCompletion(`{"steps":["a"],"tip":"b"}`, "stop"))
	p, err = NewOpenRouterProvider(OpenRouterConfig{APIKey: "k", Model: "x", BaseURL: srv.URL})
	require.NoError(t, err)
	req := prompt()
	req.Schema = walkthroughSchema()
	_, err = p.Generate(context.Background(), req)
	assert.NoError(t, err)
}
