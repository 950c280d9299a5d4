// Package llm talks to hosted language models for the study assistant.
// Every provider speaks the same Request/Response shape; the factory wraps
// them with retry, timeout and request logging.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates a completion for a Request.
type Provider interface {
	// Generate sends the request. When req.Schema is set the provider asks
	// for structured output and Response.Content holds JSON that has
	// already been validated against the schema.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the model identifier the provider sends.
	ModelID() string

	// Name is the provider name: anthropic, openai, gemini, openrouter, mock.
	Name() string
}

// Request describes one model call.
type Request struct {
	System   string
	Messages []Message

	// Schema, when set, requests JSON conforming to it.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]. Zero leaves the provider default.
	Temperature float64
}

// Message is a single conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema for structured output.
type Schema struct {
	// Name is kebab-case, e.g. "chat-reply". It doubles as the cache key
	// for the compiled schema.
	Name        string
	Description string
	Definition  map[string]any
}

// Response holds the model output.
type Response struct {
	// Content is the validated JSON object for schema requests, or the
	// text encoded as a JSON string otherwise.
	Content json.RawMessage

	// Text is the raw model output.
	Text string

	Usage Usage
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage is the token count for one call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// newResponse builds a Response from raw model text, validating it when a
// schema was requested.
func newResponse(req Request, text string) (*Response, error) {
	resp := &Response{Text: text}
	if req.Schema != nil {
		content := json.RawMessage(text)
		if err := validateResponse(req.Schema, content); err != nil {
			return nil, err
		}
		resp.Content = content
		return resp, nil
	}
	b, err := json.Marshal(text)
	if err != nil {
		return nil, &ErrInvalidResponse{Err: err}
	}
	resp.Content = b
	return resp, nil
}

// resolveModel maps a friendly alias to a provider model ID. Unknown names
// pass through so full model IDs can be configured directly.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
