package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewOpenRouterProvider(t *testing.T) {
	t.Run("empty API key", func(t *testing.T) {
		_, err := NewOpenRouterProvider(OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"})
		if err == nil {
			t.Fatal("expected error for empty API key")
		}
	})

	t.Run("vendor-prefixed model passes through", func(t *testing.T) {
		p, err := NewOpenRouterProvider(OpenRouterConfig{
			APIKey: "sk-or-test",
			Model:  "meta-llama/llama-3.1-8b-instruct",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ModelID() != "meta-llama/llama-3.1-8b-instruct" {
			t.Errorf("model = %q, want %q", p.ModelID(), "meta-llama/llama-3.1-8b-instruct")
		}
	})
}

func TestOpenRouterProvider_SendsAttributionHeaders(t *testing.T) {
	var gotReferer, gotTitle, gotAuth, gotModel, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReferer = r.Header.Get("HTTP-Referer")
		gotTitle = r.Header.Get("X-Title")
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path

		var body struct {
			Model string `json:"model"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		gotModel = body.Model

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "gen-test",
			"object":  "chat.completion",
			"created": 1234567890,
			"model":   body.Model,
			"choices": []map[string]any{
				{
					"index": 0,
					"message": map[string]any{
						"role":    "assistant",
						"content": `{"clarityScore":71}`,
					},
					"finish_reason": "stop",
				},
			},
			"usage": map[string]any{
				"prompt_tokens":     30,
				"completion_tokens": 12,
				"total_tokens":      42,
			},
		})
	}))
	t.Cleanup(server.Close)

	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey:  "sk-or-test",
		Model:   "anthropic/claude-3-haiku",
		BaseURL: server.URL + "/api/v1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := p.Generate(context.Background(), Request{
		System:   "You diagnose gaps in a learner's understanding.",
		Messages: []Message{{Role: RoleUser, Content: "Topic: Photosynthesis"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotReferer != openRouterReferer {
		t.Errorf("HTTP-Referer = %q, want %q", gotReferer, openRouterReferer)
	}
	if gotTitle != "LearnSense" {
		t.Errorf("X-Title = %q, want LearnSense", gotTitle)
	}
	if gotAuth != "Bearer sk-or-test" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotPath != "/api/v1/chat/completions" {
		t.Errorf("path = %q", gotPath)
	}
	if gotModel != "anthropic/claude-3-haiku" {
		t.Errorf("model sent = %q", gotModel)
	}
	if string(resp.Content) != `{"clarityScore":71}` {
		t.Errorf("content = %s", resp.Content)
	}
	if resp.Usage.InputTokens != 30 {
		t.Errorf("input tokens = %d, want 30", resp.Usage.InputTokens)
	}
}
