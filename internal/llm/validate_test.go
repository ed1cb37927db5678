package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-diagnostic",
		Description: "A trimmed-down diagnostic",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"topic":        map[string]any{"type": "string"},
				"clarityScore": map[string]any{"type": "integer", "minimum": 0},
				"style":        map[string]any{"type": "string", "enum": []any{"analogy", "eli5", "visual"}},
			},
			"required": []any{"topic", "clarityScore"},
		},
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"topic":"Osmosis","clarityScore":70,"style":"eli5"}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"topic":"Recursion","clarityScore":12}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_Rejections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing required", `{"topic":"Entropy"}`},
		{"wrong type", `{"topic":"Entropy","clarityScore":"high"}`},
		{"invalid enum", `{"topic":"Entropy","clarityScore":50,"style":"socratic"}`},
		{"below minimum", `{"topic":"Entropy","clarityScore":-5}`},
		{"malformed JSON", `{not json}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(testSchema(), json.RawMessage(tt.raw))
			if err == nil {
				t.Fatal("expected error")
			}
			var invErr *ErrInvalidResponse
			if !errors.As(err, &invErr) {
				t.Fatalf("expected ErrInvalidResponse, got: %T", err)
			}
			if string(invErr.Content) != tt.raw {
				t.Errorf("content = %s, want %s", invErr.Content, tt.raw)
			}
		})
	}
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	if err := validateResponse(testSchema(), json.RawMessage(``)); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`{"anything":"goes"}`)); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NestedArrays(t *testing.T) {
	schema := &Schema{
		Name:        "test-nested-problems",
		Description: "Nested test",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"practiceProblems": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"options": map[string]any{
								"type":     "array",
								"items":    map[string]any{"type": "string"},
								"minItems": 4,
								"maxItems": 4,
							},
						},
						"required": []any{"options"},
					},
				},
			},
			"required": []any{"practiceProblems"},
		},
	}

	valid := json.RawMessage(`{"practiceProblems":[{"options":["a","b","c","d"]}]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"practiceProblems":[{"options":["a","b"]}]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for a problem with two options")
	}
}

func TestCheckStructured_TruncatedOutput(t *testing.T) {
	req := Request{Schema: testSchema()}
	err := checkStructured(req, json.RawMessage(`{"topic":"Osm`), "max_tokens")
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got: %v", err)
	}
}

func TestCheckStructured_PlainTextPassesThrough(t *testing.T) {
	if err := checkStructured(Request{}, json.RawMessage(`free text`), "max_tokens"); err != nil {
		t.Fatalf("expected no error without schema, got: %v", err)
	}
}
