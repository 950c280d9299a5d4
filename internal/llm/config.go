package llm

import (
	"fmt"
	"strings"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
	ProviderNone       = "none"
)

// Config selects and configures a provider.
type Config struct {
	// Provider is one of the Provider* names. Empty means discover from
	// well-known API key variables.
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds one Generate call including retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig configures backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with default models and retry policy and
// no provider selected.
func DefaultConfig() Config {
	return Config{
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.5-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// Merge overlays the non-empty fields of o onto c.
func (c Config) Merge(o Config) Config {
	pick := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	pick(&c.Provider, o.Provider)
	pick(&c.Anthropic.APIKey, o.Anthropic.APIKey)
	pick(&c.Anthropic.Model, o.Anthropic.Model)
	pick(&c.Anthropic.BaseURL, o.Anthropic.BaseURL)
	pick(&c.OpenAI.APIKey, o.OpenAI.APIKey)
	pick(&c.OpenAI.Model, o.OpenAI.Model)
	pick(&c.OpenAI.BaseURL, o.OpenAI.BaseURL)
	pick(&c.Gemini.APIKey, o.Gemini.APIKey)
	pick(&c.Gemini.Model, o.Gemini.Model)
	pick(&c.OpenRouter.APIKey, o.OpenRouter.APIKey)
	pick(&c.OpenRouter.Model, o.OpenRouter.Model)
	pick(&c.OpenRouter.BaseURL, o.OpenRouter.BaseURL)
	if o.Timeout > 0 {
		c.Timeout = o.Timeout
	}
	if o.Retry.MaxAttempts > 0 {
		c.Retry = o.Retry
	}
	return c
}

// Discover fills API keys missing from c from the conventional
// GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY and OPENROUTER_API_KEY
// variables, and when no provider is selected picks the first one, in that
// order, that has a key. It reports whether a provider is selected.
func (c Config) Discover(getenv func(string) string) (Config, bool) {
	fill := func(dst *string, name string) {
		if *dst == "" {
			*dst = getenv(name)
		}
	}
	fill(&c.Gemini.APIKey, "GEMINI_API_KEY")
	fill(&c.OpenAI.APIKey, "OPENAI_API_KEY")
	fill(&c.Anthropic.APIKey, "ANTHROPIC_API_KEY")
	fill(&c.OpenRouter.APIKey, "OPENROUTER_API_KEY")

	if c.Provider == "" {
		switch {
		case c.Gemini.APIKey != "":
			c.Provider = ProviderGemini
		case c.OpenAI.APIKey != "":
			c.Provider = ProviderOpenAI
		case c.Anthropic.APIKey != "":
			c.Provider = ProviderAnthropic
		case c.OpenRouter.APIKey != "":
			c.Provider = ProviderOpenRouter
		}
	}
	return c, c.Provider != "" && c.Provider != ProviderNone
}

// Validate checks that the selected provider has an API key.
func (c Config) Validate() error {
	missing := func(name string) error {
		return fmt.Errorf("GRADEX_LLM_%s_API_KEY is required for the %s provider",
			strings.ToUpper(name), name)
	}
	switch c.Provider {
	case ProviderAnthropic:
		if c.Anthropic.APIKey == "" {
			return missing(c.Provider)
		}
	case ProviderOpenAI:
		if c.OpenAI.APIKey == "" {
			return missing(c.Provider)
		}
	case ProviderGemini:
		if c.Gemini.APIKey == "" {
			return missing(c.Provider)
		}
	case ProviderOpenRouter:
		if c.OpenRouter.APIKey == "" {
			return missing(c.Provider)
		}
	case ProviderMock, ProviderNone, "":
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
