package llm

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func replySchema() *Schema {
	return &Schema{
		Name: "test-reply",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"reply": map[string]any{"type": "string"},
			},
			"required":             []string{"reply"},
			"additionalProperties": false,
		},
	}
}

func TestMockProvider_FIFO(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: "first", Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Text: "second"},
	)

	r1, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "a"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r1.Text != "first" {
		t.Fatalf("text = %q, want first", r1.Text)
	}
	if string(r1.Content) != `"first"` {
		t.Fatalf("content = %s, want JSON string", r1.Content)
	}
	if r1.Usage.InputTokens != 10 || r1.StopReason != "end" {
		t.Fatalf("unexpected response: %+v", r1)
	}

	r2, err := mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r2.Text != "second" {
		t.Fatalf("text = %q, want second", r2.Text)
	}
}

func TestMockProvider_SchemaContentIsValidated(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"reply":"hi"}`)},
		MockResponse{Content: json.RawMessage(`{"answer":"hi"}`)},
	)

	resp, err := mock.Generate(context.Background(), Request{Schema: replySchema()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"reply":"hi"}` {
		t.Fatalf("content = %s", resp.Content)
	}

	_, err = mock.Generate(context.Background(), Request{Schema: replySchema()})
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
	}
}

func TestMockProvider_EmptyQueue(t *testing.T) {
	_, err := NewMockProvider().Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "ok"})
	_, _ = mock.Generate(context.Background(), Request{System: "sys"})

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	if mock.Calls[0].System != "sys" {
		t.Fatalf("system = %q", mock.Calls[0].System)
	}
	if mock.Name() != ProviderMock || mock.ModelID() != "mock" {
		t.Fatalf("name/model = %s/%s", mock.Name(), mock.ModelID())
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("purpose = %q, want unknown", p)
	}
	if p := PurposeFrom(WithPurpose(ctx, PurposeChat)); p != PurposeChat {
		t.Fatalf("purpose = %q, want chat", p)
	}
}

func TestResolveModel(t *testing.T) {
	tests := []struct {
		name    string
		aliases map[string]string
		want    string
	}{
		{"claude-haiku", anthropicModels, "claude-haiku-4-5"},
		{"claude-sonnet", anthropicModels, "claude-sonnet-4-5"},
		{"gpt-mini", openaiModels, "gpt-4o-mini"},
		{"gemini-flash", geminiModels, "gemini-2.5-flash"},
		{"gemini-2.0-flash", geminiModels, "gemini-2.0-flash"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.name, tt.aliases); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gpt-4o-mini")
	if c == nil {
		t.Fatal("expected pricing for gpt-4o-mini")
	}
	if got := c.Cost(1_000_000, 1_000_000); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("cost = %v, want 0.75", got)
	}
	if LookupCost("no-such-model") != nil {
		t.Error("expected nil for unknown model")
	}
}
