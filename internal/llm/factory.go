package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/mathlab/internal/logger"
)

// NewProvider builds the configured backend wrapped as
// retry → logging → backend, so every attempt is logged.
// rec and log may be nil.
func NewProvider(ctx context.Context, cfg Config, rec EventRecorder, log *logger.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderMock:
		base = NewMockProvider()
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(WithLogging(base, rec, log), cfg.Retry, cfg.Timeout), nil
}
