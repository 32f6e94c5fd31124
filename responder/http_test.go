package responder_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aayushCywarden/animagic-space/core/chat"
	"github.com/aayushCywarden/animagic-space/responder"
)

func TestOpenAISource_Reply(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "hello from the model"}},
			},
		})
	}))
	defer server.Close()

	src, err := responder.NewOpenAISource(responder.OpenAIConfig{
		BaseURL: server.URL + "/v1",
		APIKey:  "test-key",
		Model:   "gpt-4o-mini",
	})
	if err != nil {
		t.Fatalf("NewOpenAISource failed: %v", err)
	}

	history := []chat.Message{
		chat.NewMessage(1, chat.SenderAssistant, "greeting"),
		chat.NewMessage(2, chat.SenderUser, "question"),
	}
	text, err := src.Reply(context.Background(), history)
	if err != nil {
		t.Fatalf("Reply failed: %v", err)
	}
	if text != "hello from the model" {
		t.Errorf("Reply = %q, want model content", text)
	}

	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q, want bearer key", gotAuth)
	}
	if gotBody["model"] != "gpt-4o-mini" {
		t.Errorf("request model = %v, want gpt-4o-mini", gotBody["model"])
	}
	messages, ok := gotBody["messages"].([]any)
	if !ok || len(messages) != 2 {
		t.Fatalf("request messages = %v, want 2 entries", gotBody["messages"])
	}
	first := messages[0].(map[string]any)
	if first["role"] != "assistant" || first["content"] != "greeting" {
		t.Errorf("first request message = %v", first)
	}
	second := messages[1].(map[string]any)
	if second["role"] != "user" || second["content"] != "question" {
		t.Errorf("second request message = %v", second)
	}
}

func TestOpenAISource_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	src, err := responder.NewOpenAISource(responder.OpenAIConfig{BaseURL: server.URL, Model: "m"})
	if err != nil {
		t.Fatalf("NewOpenAISource failed: %v", err)
	}

	if _, err := src.Reply(context.Background(), nil); err == nil {
		t.Error("Reply succeeded on HTTP 429, want error")
	} else if !strings.Contains(err.Error(), "429") {
		t.Errorf("error %v does not surface the status code", err)
	}
}

func TestOpenAISource_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "model not found", "type": "invalid_request_error"},
		})
	}))
	defer server.Close()

	src, err := responder.NewOpenAISource(responder.OpenAIConfig{BaseURL: server.URL, Model: "m"})
	if err != nil {
		t.Fatalf("NewOpenAISource failed: %v", err)
	}

	if _, err := src.Reply(context.Background(), nil); err == nil {
		t.Error("Reply succeeded on API error body, want error")
	} else if !strings.Contains(err.Error(), "model not found") {
		t.Errorf("error %v does not surface the API message", err)
	}
}

func TestNewOpenAISource_RequiresConfiguration(t *testing.T) {
	if _, err := responder.NewOpenAISource(responder.OpenAIConfig{Model: "m"}); err == nil {
		t.Error("missing base URL accepted")
	}
	if _, err := responder.NewOpenAISource(responder.OpenAIConfig{BaseURL: "http://localhost"}); err == nil {
		t.Error("missing model accepted")
	}
}
