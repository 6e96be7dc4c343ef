// Package llm talks to hosted language models for optional tutor
// explanations. Practice never depends on it: every caller has a
// deterministic fallback.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one completion. When the request carries a Schema
// the returned Content is JSON already validated against it.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)

	// Name is the backend, e.g. "anthropic".
	Name() string

	// ModelID is the model the provider sends requests to.
	ModelID() string
}

// Request is a single-turn or short multi-turn prompt.
type Request struct {
	System   string
	Messages []Message

	// Schema, when set, asks the backend for structured JSON output.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]. Zero leaves the backend default.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema describes the JSON object a response must match.
type Schema struct {
	// Name is kebab-case, e.g. "walkthrough". It keys the compiled schema cache.
	Name        string
	Description string
	Definition  map[string]any
}

// Response is a provider's answer.
type Response struct {
	Content json.RawMessage
	Usage   Usage
	Model   string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage is the token count of one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// UserPrompt builds a single-turn request.
func UserPrompt(system, user string, schema *Schema, maxTokens int) Request {
	return Request{
		System:    system,
		Messages:  []Message{{Role: RoleUser, Content: user}},
		Schema:    schema,
		MaxTokens: maxTokens,
	}
}

// finish validates structured content and rejects truncated output.
// Errors name the provider and schema.
func finish(provider string, req Request, resp *Response) (*Response, error) {
	if req.Schema == nil {
		return resp, nil
	}
	if resp.StopReason == "max_tokens" {
		return nil, &TruncatedError{Provider: provider, Schema: req.Schema.Name, Content: resp.Content}
	}
	if err := validateResponse(req.Schema, resp.Content); err != nil {
		return nil, attribute(err, provider)
	}
	return resp, nil
}

// resolveModel maps a short alias to a full model ID. Unknown names pass
// through unchanged.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
