package llm

import (
	"context"
	"time"

	"github.com/abhisek/mathlab/internal/logger"
	"github.com/abhisek/mathlab/internal/store"
)

// EventRecorder stores one row per LLM request. *store.Store implements it.
type EventRecorder interface {
	AppendLLMRequest(ctx context.Context, data store.LLMRequestEventData) error
}

// LoggingProvider logs every request and, when a recorder is set, stores
// it. Recording failures never fail the request.
type LoggingProvider struct {
	inner Provider
	rec   EventRecorder
	log   *logger.Logger
}

// WithLogging wraps p. rec may be nil.
func WithLogging(p Provider, rec EventRecorder, log *logger.Logger) *LoggingProvider {
	if log == nil {
		log = logger.Nop()
	}
	return &LoggingProvider{inner: p, rec: rec, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:  l.inner.Name(),
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		if resp.Model != "" {
			data.Model = resp.Model
		}
	}
	if err != nil {
		data.ErrorMessage = err.Error()
		l.log.Warn("llm request failed",
			"provider", data.Provider, "model", data.Model, "purpose", data.Purpose,
			"latency_ms", data.LatencyMs, "error", err)
	} else {
		l.log.Debug("llm request",
			"provider", data.Provider, "model", data.Model, "purpose", data.Purpose,
			"latency_ms", data.LatencyMs, "input_tokens", data.InputTokens, "output_tokens", data.OutputTokens)
	}

	if l.rec != nil {
		if recErr := l.rec.AppendLLMRequest(ctx, data); recErr != nil {
			l.log.Warn("record llm request failed", "error", recErr)
		}
	}
	return resp, err
}

func (l *LoggingProvider) Name() string    { return l.inner.Name() }
func (l *LoggingProvider) ModelID() string { return l.inner.ModelID() }
