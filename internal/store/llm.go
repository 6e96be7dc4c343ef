package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMUsage summarizes recorded LLM requests.
type LLMUsage struct {
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// AppendLLMRequest records an LLM API call event.
func (s *Store) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	insert := builder().Insert("llm_requests").
		Columns("provider", "model", "purpose", "input_tokens", "output_tokens",
			"latency_ms", "success", "error_message", "created_at").
		Values(data.Provider, data.Model, data.Purpose, data.InputTokens, data.OutputTokens,
			data.LatencyMs, boolInt(data.Success), data.ErrorMessage, timestamp(time.Now()))
	if err := s.exec(ctx, insert); err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

// LLMUsage totals the recorded LLM requests.
func (s *Store) LLMUsage(ctx context.Context) (LLMUsage, error) {
	query, args := builder().Select(
		entsql.Count("*"),
		"COALESCE(SUM(1 - success), 0)",
		"COALESCE(SUM(input_tokens), 0)",
		"COALESCE(SUM(output_tokens), 0)",
	).
		From(entsql.Table("llm_requests")).
		Query()

	var u LLMUsage
	if err := s.db.QueryRowContext(ctx, query, args...).
		Scan(&u.Requests, &u.Failures, &u.InputTokens, &u.OutputTokens); err != nil {
		return LLMUsage{}, fmt.Errorf("query LLM usage: %w", err)
	}
	return u, nil
}
