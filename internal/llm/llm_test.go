package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(Config{})
	if c.baseURL != defaultAnthropicURL || c.model != defaultAnthropicModel || c.maxTokens != 256 {
		t.Errorf("defaults not applied: %+v", c)
	}
	if c.httpClient.Timeout != 20*time.Second {
		t.Errorf("Timeout = %v", c.httpClient.Timeout)
	}
	if c.IsConfigured() {
		t.Errorf("client without key reports configured")
	}
}

func TestClientChat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/messages" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.Header.Get("x-api-key") != "test-key" {
			t.Errorf("x-api-key = %q", r.Header.Get("x-api-key"))
		}
		if r.Header.Get("anthropic-version") != anthropicVersion {
			t.Errorf("anthropic-version = %q", r.Header.Get("anthropic-version"))
		}
		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode: %v", err)
			return
		}
		if req.System != "be nice" || len(req.Messages) != 1 || req.Messages[0].Content != "hi" {
			t.Errorf("unexpected request: %+v", req)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"Keep going!"}]}`))
	}))
	defer server.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})
	got, err := c.Chat(context.Background(), "be nice", "hi")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if got != "Keep going!" {
		t.Errorf("Chat = %q", got)
	}
}

func TestClientErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"api error", http.StatusUnauthorized, `{"error":"bad key"}`, "anthropic API error 401"},
		{"bad json", http.StatusOK, `{`, "decode response"},
		{"no text", http.StatusOK, `{"content":[]}`, ErrEmptyResponse.Error()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := NewClient(Config{BaseURL: server.URL}).Chat(context.Background(), "", "hi")
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestOllamaChat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var req OllamaGenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode: %v", err)
			return
		}
		if req.Model != "tiny" || req.Stream || req.Prompt != "hi" || req.System != "sys" {
			t.Errorf("unexpected request: %+v", req)
		}
		_ = json.NewEncoder(w).Encode(OllamaGenerateResponse{Model: "tiny", Response: "You got this.", Done: true})
	}))
	defer server.Close()

	c := NewOllamaClient(OllamaConfig{BaseURL: server.URL + "/", Model: "tiny"})
	got, err := c.Chat(context.Background(), "sys", "hi")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if got != "You got this." {
		t.Errorf("Chat = %q", got)
	}
}

func TestOllamaEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response":"  ","done":true}`))
	}))
	defer server.Close()

	_, err := NewOllamaClient(OllamaConfig{BaseURL: server.URL}).Chat(context.Background(), "", "hi")
	if !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("err = %v, want ErrEmptyResponse", err)
	}
}

func TestGeneratorImplementations(t *testing.T) {
	var _ Generator = (*Client)(nil)
	var _ Generator = (*OllamaClient)(nil)
}
