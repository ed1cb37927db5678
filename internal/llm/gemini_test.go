package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"topic":        map[string]any{"type": "string"},
			"clarityScore": map[string]any{"type": "integer"},
			"style":        map[string]any{"type": "string", "enum": []any{"Analogy-based", "First Principles", "Visual Description"}},
			"nextSteps": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"topic", "clarityScore"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["topic"].Type != "STRING" {
		t.Fatalf("expected STRING for topic, got %s", schema.Properties["topic"].Type)
	}
	if schema.Properties["clarityScore"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for clarityScore, got %s", schema.Properties["clarityScore"].Type)
	}
	if len(schema.Properties["style"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["style"].Enum))
	}
	if schema.Properties["nextSteps"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for nextSteps, got %s", schema.Properties["nextSteps"].Type)
	}
	if schema.Properties["nextSteps"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for nextSteps items, got %s", schema.Properties["nextSteps"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
