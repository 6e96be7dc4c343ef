package llm

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func walkthroughSchema() *Schema {
	return &Schema{
		Name:        "test-walkthrough",
		Description: "Steps for a math problem",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"steps": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 1,
				},
				"tip":    map[string]any{"type": "string"},
				"effort": map[string]any{"type": "string", "enum": []any{"easy", "hard"}},
			},
			"required":             []any{"steps", "tip"},
			"additionalProperties": false,
		},
	}
}

func jsonServer(t *testing.T, status int, body any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func prompt() Request {
	return UserPrompt("You are a patient math tutor.", "Explain 47 + 38.", nil, 256)
}
