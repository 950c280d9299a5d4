package llm

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/great123-artV/GradeX/internal/logging"
	"github.com/great123-artV/GradeX/internal/store"
)

// recordingEvents implements store.EventRepo and keeps LLM events.
type recordingEvents struct {
	store.EventRepo
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingEvents) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return r.err
}

func TestLoggingProvider_RecordsSuccess(t *testing.T) {
	events := &recordingEvents{}
	mock := NewMockProvider(MockResponse{Text: "hello", Usage: Usage{InputTokens: 12, OutputTokens: 3}})
	p := WithLogging(mock, events, nil)

	ctx := WithPurpose(context.Background(), PurposeChat)
	_, err := p.Generate(ctx, Request{
		System:   "be brief",
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
		Schema:   nil,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(events.events) != 1 {
		t.Fatalf("events = %d, want 1", len(events.events))
	}
	e := events.events[0]
	if e.Provider != ProviderMock || e.Model != "mock" || e.Purpose != PurposeChat {
		t.Errorf("event = %+v", e)
	}
	if !e.Success || e.InputTokens != 12 || e.OutputTokens != 3 {
		t.Errorf("event = %+v", e)
	}
	if !strings.Contains(e.RequestBody, "[system]\nbe brief") || !strings.Contains(e.RequestBody, "[user]\nhi") {
		t.Errorf("request body = %q", e.RequestBody)
	}
	if e.ResponseBody != "hello" {
		t.Errorf("response body = %q", e.ResponseBody)
	}
}

func TestLoggingProvider_RecordsFailureAndLogs(t *testing.T) {
	var buf bytes.Buffer
	events := &recordingEvents{}
	mock := NewMockProvider(MockResponse{Err: errors.New("boom")})
	p := WithLogging(mock, events, logging.New(&buf, "warn"))

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(events.events) != 1 || events.events[0].Success || events.events[0].ErrorMessage != "boom" {
		t.Fatalf("events = %+v", events.events)
	}
	if !strings.Contains(buf.String(), "model call failed") {
		t.Errorf("log = %q", buf.String())
	}
}

func TestLoggingProvider_StoreErrorDoesNotFailCall(t *testing.T) {
	events := &recordingEvents{err: errors.New("disk full")}
	mock := NewMockProvider(MockResponse{Text: "ok"})
	resp, err := WithLogging(mock, events, nil).Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "ok" {
		t.Fatalf("text = %q", resp.Text)
	}
}

func TestLoggingProvider_NilRepo(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "ok"})
	if _, err := WithLogging(mock, nil, nil).Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewProvider(t *testing.T) {
	ctx := context.Background()

	if _, err := NewProvider(ctx, Config{}, nil, nil); !errors.Is(err, ErrDisabled) {
		t.Errorf("empty provider: err = %v, want ErrDisabled", err)
	}
	if _, err := NewProvider(ctx, Config{Provider: ProviderNone}, nil, nil); !errors.Is(err, ErrDisabled) {
		t.Errorf("none: err = %v, want ErrDisabled", err)
	}
	if _, err := NewProvider(ctx, Config{Provider: ProviderOpenAI}, nil, nil); err == nil {
		t.Error("openai without key: expected error")
	}

	cfg := DefaultConfig()
	cfg.Provider = ProviderOpenRouter
	cfg.OpenRouter.APIKey = "sk-or-test"
	p, err := NewProvider(ctx, cfg, nil, nil)
	if err != nil {
		t.Fatalf("openrouter: %v", err)
	}
	if p.Name() != ProviderOpenRouter || p.ModelID() != "google/gemini-2.5-flash" {
		t.Errorf("provider = %s/%s", p.Name(), p.ModelID())
	}
}
