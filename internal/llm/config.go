package llm

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Provider names accepted by Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config selects and configures the tutor backend.
type Config struct {
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds one Generate call including retries.
	Timeout time.Duration
}

// AnthropicConfig configures the Anthropic backend.
type AnthropicConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// OpenAIConfig configures the OpenAI backend. BaseURL points it at any
// OpenAI-compatible API.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// GeminiConfig configures the Gemini backend.
type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// OpenRouterConfig configures the OpenRouter backend.
type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig is exponential backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig uses small, fast models; walkthroughs are short.
func DefaultConfig() Config {
	return Config{
		Provider:   ProviderAnthropic,
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-001"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv overlays MATHLAB_* environment variables on DefaultConfig.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	setString(&cfg.Provider, "MATHLAB_LLM_PROVIDER")

	setString(&cfg.Anthropic.APIKey, "MATHLAB_ANTHROPIC_API_KEY")
	setString(&cfg.Anthropic.Model, "MATHLAB_ANTHROPIC_MODEL")
	setString(&cfg.Anthropic.BaseURL, "MATHLAB_ANTHROPIC_BASE_URL")

	setString(&cfg.OpenAI.APIKey, "MATHLAB_OPENAI_API_KEY")
	setString(&cfg.OpenAI.Model, "MATHLAB_OPENAI_MODEL")
	setString(&cfg.OpenAI.BaseURL, "MATHLAB_OPENAI_BASE_URL")

	setString(&cfg.Gemini.APIKey, "MATHLAB_GEMINI_API_KEY")
	setString(&cfg.Gemini.Model, "MATHLAB_GEMINI_MODEL")
	setString(&cfg.Gemini.BaseURL, "MATHLAB_GEMINI_BASE_URL")

	setString(&cfg.OpenRouter.APIKey, "MATHLAB_OPENROUTER_API_KEY")
	setString(&cfg.OpenRouter.Model, "MATHLAB_OPENROUTER_MODEL")

	if v := os.Getenv("MATHLAB_LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	if v := os.Getenv("MATHLAB_LLM_MAX_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Retry.MaxAttempts = n
		}
	}

	return cfg
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// DiscoverConfig looks for the vendors' standard API key variables
// (GEMINI, OPENAI, ANTHROPIC, OPENROUTER, in that order) and returns a
// Config for the first one set.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	switch {
	case os.Getenv("GEMINI_API_KEY") != "":
		cfg.Provider = ProviderGemini
		cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	case os.Getenv("OPENAI_API_KEY") != "":
		cfg.Provider = ProviderOpenAI
		cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	case os.Getenv("ANTHROPIC_API_KEY") != "":
		cfg.Provider = ProviderAnthropic
		cfg.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	case os.Getenv("OPENROUTER_API_KEY") != "":
		cfg.Provider = ProviderOpenRouter
		cfg.OpenRouter.APIKey = os.Getenv("OPENROUTER_API_KEY")
	default:
		return Config{}, false
	}
	return cfg, true
}

// Resolve prefers explicit MATHLAB_* settings and falls back to
// DiscoverConfig when the selected provider has no key.
func Resolve() (Config, bool) {
	cfg := ConfigFromEnv()
	if cfg.Validate() == nil {
		return cfg, true
	}
	return DiscoverConfig()
}

// Validate checks that the selected provider has an API key.
func (c Config) Validate() error {
	var key, env string
	switch c.Provider {
	case ProviderAnthropic:
		key, env = c.Anthropic.APIKey, "MATHLAB_ANTHROPIC_API_KEY"
	case ProviderOpenAI:
		key, env = c.OpenAI.APIKey, "MATHLAB_OPENAI_API_KEY"
	case ProviderGemini:
		key, env = c.Gemini.APIKey, "MATHLAB_GEMINI_API_KEY"
	case ProviderOpenRouter:
		key, env = c.OpenRouter.APIKey, "MATHLAB_OPENROUTER_API_KEY"
	case ProviderMock:
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("%s is required for the %s provider", env, c.Provider)
	}
	return nil
}
