package llm

import (
	"strings"
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"anthropic without key", Config{Provider: ProviderAnthropic}, "GRADEX_LLM_ANTHROPIC_API_KEY"},
		{"anthropic with key", Config{Provider: ProviderAnthropic, Anthropic: AnthropicConfig{APIKey: "k"}}, ""},
		{"openai without key", Config{Provider: ProviderOpenAI}, "GRADEX_LLM_OPENAI_API_KEY"},
		{"gemini without key", Config{Provider: ProviderGemini}, "GRADEX_LLM_GEMINI_API_KEY"},
		{"openrouter without key", Config{Provider: ProviderOpenRouter}, "GRADEX_LLM_OPENROUTER_API_KEY"},
		{"mock needs no key", Config{Provider: ProviderMock}, ""},
		{"none", Config{Provider: ProviderNone}, ""},
		{"unset", Config{}, ""},
		{"unknown provider", Config{Provider: "llama"}, "unknown LLM provider"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestConfig_Discover(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		env      map[string]string
		want     string
		selected bool
	}{
		{"nothing set", Config{}, nil, "", false},
		{"gemini first", Config{}, map[string]string{"GEMINI_API_KEY": "g", "OPENAI_API_KEY": "o"}, ProviderGemini, true},
		{"openai before anthropic", Config{}, map[string]string{"ANTHROPIC_API_KEY": "a", "OPENAI_API_KEY": "o"}, ProviderOpenAI, true},
		{"openrouter last", Config{}, map[string]string{"OPENROUTER_API_KEY": "r"}, ProviderOpenRouter, true},
		{"explicit wins", Config{Provider: ProviderAnthropic}, map[string]string{"GEMINI_API_KEY": "g", "ANTHROPIC_API_KEY": "a"}, ProviderAnthropic, true},
		{"configured key counts", Config{OpenAI: OpenAIConfig{APIKey: "x"}}, nil, ProviderOpenAI, true},
		{"none stays off", Config{Provider: ProviderNone}, map[string]string{"GEMINI_API_KEY": "g"}, ProviderNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.cfg.Discover(envMap(tt.env))
			if got.Provider != tt.want || ok != tt.selected {
				t.Fatalf("Discover = %q, %v; want %q, %v", got.Provider, ok, tt.want, tt.selected)
			}
		})
	}
}

func TestConfig_DiscoverKeepsConfiguredKey(t *testing.T) {
	cfg := Config{Anthropic: AnthropicConfig{APIKey: "from-config"}}
	got, _ := cfg.Discover(envMap(map[string]string{"ANTHROPIC_API_KEY": "from-env"}))
	if got.Anthropic.APIKey != "from-config" {
		t.Fatalf("key = %q, want from-config", got.Anthropic.APIKey)
	}
}

func TestConfig_Merge(t *testing.T) {
	base := DefaultConfig()
	got := base.Merge(Config{
		Provider: ProviderOpenAI,
		OpenAI:   OpenAIConfig{APIKey: "k", BaseURL: "http://local"},
		Timeout:  5 * time.Second,
	})
	if got.Provider != ProviderOpenAI || got.OpenAI.APIKey != "k" || got.OpenAI.BaseURL != "http://local" {
		t.Fatalf("merged = %+v", got.OpenAI)
	}
	if got.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("model = %q, want default kept", got.OpenAI.Model)
	}
	if got.Timeout != 5*time.Second {
		t.Errorf("timeout = %s", got.Timeout)
	}
	if got.Retry.MaxAttempts != 3 {
		t.Errorf("retry = %+v, want default kept", got.Retry)
	}
}
