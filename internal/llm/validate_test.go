package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func topicSchema() *Schema {
	return &Schema{
		Name: "test-topic",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"reply": map[string]any{"type": "string", "minLength": 1},
				"topic": map[string]any{"type": "string", "enum": []any{"gpa", "study", "other"}},
				"units": map[string]any{"type": "integer", "minimum": 0},
			},
			"required": []any{"reply", "topic"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"reply":"hi","topic":"gpa","units":3}`, false},
		{"optional omitted", `{"reply":"hi","topic":"study"}`, false},
		{"missing required", `{"reply":"hi"}`, true},
		{"bad enum", `{"reply":"hi","topic":"weather"}`, true},
		{"wrong type", `{"reply":"hi","topic":"gpa","units":"three"}`, true},
		{"below minimum", `{"reply":"hi","topic":"gpa","units":-1}`, true},
		{"empty reply", `{"reply":"","topic":"gpa"}`, true},
		{"not json", `hello there`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(topicSchema(), json.RawMessage(tt.raw))
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var invalid *ErrInvalidResponse
			if !errors.As(err, &invalid) {
				t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
			}
			if string(invalid.Content) != tt.raw {
				t.Errorf("content = %s, want the raw output", invalid.Content)
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_CachesCompiledSchema(t *testing.T) {
	s := topicSchema()
	s.Name = "test-cache"
	if err := validateResponse(s, json.RawMessage(`{"reply":"a","topic":"gpa"}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := schemaCache.Load("test-cache"); !ok {
		t.Fatal("expected compiled schema to be cached")
	}
}
