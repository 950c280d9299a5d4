package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type":        "object",
		"description": "reply",
		"properties": map[string]any{
			"reply": map[string]any{"type": "string"},
			"topic": map[string]any{"type": "string", "enum": []any{"gpa", "study"}},
			"tips": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"confidence": map[string]any{"type": "number"},
		},
		"required": []string{"reply", "topic"},
	}

	s := geminiSchema(def)

	if s.Type != genai.TypeObject || s.Description != "reply" {
		t.Fatalf("root = %+v", s)
	}
	if len(s.Properties) != 4 {
		t.Fatalf("properties = %d, want 4", len(s.Properties))
	}
	if got := s.Properties["topic"].Enum; len(got) != 2 || got[0] != "gpa" {
		t.Errorf("topic enum = %v", got)
	}
	if s.Properties["tips"].Type != genai.TypeArray || s.Properties["tips"].Items.Type != genai.TypeString {
		t.Errorf("tips = %+v", s.Properties["tips"])
	}
	if s.Properties["confidence"].Type != genai.TypeNumber {
		t.Errorf("confidence type = %s", s.Properties["confidence"].Type)
	}
	if len(s.Required) != 2 {
		t.Errorf("required = %v", s.Required)
	}
}

func TestGeminiContentsRoles(t *testing.T) {
	got := geminiContents([]Message{
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "hello"},
	})
	if len(got) != 2 {
		t.Fatalf("len = %d", len(got))
	}
	if got[0].Role != string(genai.RoleUser) || got[1].Role != string(genai.RoleModel) {
		t.Errorf("roles = %s, %s", got[0].Role, got[1].Role)
	}
	if got[1].Parts[0].Text != "hello" {
		t.Errorf("text = %q", got[1].Parts[0].Text)
	}
}

func TestNewGeminiProviderRequiresKey(t *testing.T) {
	if _, err := NewGeminiProvider(t.Context(), GeminiConfig{}); err == nil {
		t.Fatal("expected error without API key")
	}
}
