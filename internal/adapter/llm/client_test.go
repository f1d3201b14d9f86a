package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestClientCreateChatCompletion(t *testing.T) {
	var got ChatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected Content-Type: %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"c1","object":"chat.completion","created":1,"model":"openai/gpt-4o-mini","choices":[{"index":0,"message":{"role":"assistant","content":"hi"},"finish_reason":"stop"}],"usage":{"prompt_tokens":1,"completion_tokens":2,"total_tokens":3}}`)
	}))
	defer server.Close()

	temperature := 0.7
	maxTokens := 500
	client := NewClient(server.URL+"/api/v1/", "", time.Second)
	resp, err := client.CreateChatCompletion(context.Background(), &ChatCompletionRequest{
		Model:       "openai/gpt-4o-mini",
		Messages:    []ChatMessage{{Role: "system", Content: "be brief"}, {Role: "user", Content: "hello"}},
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
	})
	if err != nil {
		t.Fatalf("CreateChatCompletion failed: %v", err)
	}

	content, err := resp.Content()
	if err != nil || content != "hi" {
		t.Fatalf("unexpected content %q, err %v", content, err)
	}
	if resp.Usage == nil || resp.Usage.TotalTokens != 3 {
		t.Fatalf("unexpected usage: %+v", resp.Usage)
	}

	if got.Model != "openai/gpt-4o-mini" || len(got.Messages) != 2 {
		t.Fatalf("unexpected request: %+v", got)
	}
	if got.Temperature == nil || *got.Temperature != 0.7 {
		t.Fatalf("unexpected temperature: %v", got.Temperature)
	}
	if got.MaxTokens == nil || *got.MaxTokens != 500 {
		t.Fatalf("unexpected max_tokens: %v", got.MaxTokens)
	}
}

func TestClientCreateChatCompletionAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"message":"No auth credentials found","code":401}}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", time.Second)
	_, err := client.CreateChatCompletion(context.Background(), &ChatCompletionRequest{
		Model:    "gpt",
		Messages: []ChatMessage{{Role: "user", Content: "hello"}},
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "[401]") || !strings.Contains(err.Error(), "No auth credentials found") {
		t.Fatalf("unexpected error text: %v", err)
	}
}

func TestClientCreateChatCompletionPlainError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, "bad gateway")
	}))
	defer server.Close()

	client := NewClient(server.URL, "", time.Second)
	_, err := client.CreateChatCompletion(context.Background(), &ChatCompletionRequest{Model: "gpt"})
	if err == nil || !strings.Contains(err.Error(), "bad gateway") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClientCreateChatCompletionMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices":`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", time.Second)
	_, err := client.CreateChatCompletion(context.Background(), &ChatCompletionRequest{Model: "gpt"})
	if err == nil || !strings.Contains(err.Error(), "failed to unmarshal response") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClientCreateChatCompletionConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url, "", time.Second)
	_, err := client.CreateChatCompletion(context.Background(), &ChatCompletionRequest{Model: "gpt"})
	if err == nil || !strings.Contains(err.Error(), "failed to send request") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClientSetHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("unexpected Authorization header: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices":[{"index":0,"message":{"role":"assistant","content":"ok"}}]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret", time.Second)
	if _, err := client.CreateChatCompletion(context.Background(), &ChatCompletionRequest{Model: "gpt"}); err != nil {
		t.Fatalf("CreateChatCompletion failed: %v", err)
	}
}

func TestClientOmitsAuthorizationWithoutKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("expected no Authorization header, got %q", got)
		}
		fmt.Fprint(w, `{"choices":[]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", time.Second)
	if _, err := client.CreateChatCompletion(context.Background(), &ChatCompletionRequest{Model: "gpt"}); err != nil {
		t.Fatalf("CreateChatCompletion failed: %v", err)
	}
}

func TestResponseContent(t *testing.T) {
	resp := &ChatCompletionResponse{}
	if _, err := resp.Content(); !errors.Is(err, ErrNoChoices) {
		t.Fatalf("expected ErrNoChoices, got %v", err)
	}

	resp.Choices = []Choice{{Index: 0}}
	if _, err := resp.Content(); !errors.Is(err, ErrNoChoices) {
		t.Fatalf("expected ErrNoChoices for nil message, got %v", err)
	}

	first, second := "first", "second"
	resp.Choices = []Choice{
		{Index: 0, Message: &ResponseMessage{Role: "assistant", Content: &first}},
		{Index: 1, Message: &ResponseMessage{Role: "assistant", Content: &second}},
	}
	content, err := resp.Content()
	if err != nil || content != "first" {
		t.Fatalf("unexpected content %q, err %v", content, err)
	}
}

func TestClientCreateChatCompletionMissingContent(t *testing.T) {
	bodies := map[string]string{
		"null":    `{"choices":[{"index":0,"message":{"role":"assistant","content":null}}]}`,
		"absent":  `{"choices":[{"index":0,"message":{"role":"assistant"}}]}`,
		"present": `{"choices":[{"index":0,"message":{"role":"assistant","content":""}}]}`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprint(w, body)
			}))
			defer server.Close()

			client := NewClient(server.URL, "", time.Second)
			resp, err := client.CreateChatCompletion(context.Background(), &ChatCompletionRequest{Model: "gpt"})
			if err != nil {
				t.Fatalf("CreateChatCompletion failed: %v", err)
			}

			content, err := resp.Content()
			if name == "present" {
				if err != nil || content != "" {
					t.Fatalf("expected empty content without error, got %q, %v", content, err)
				}
				return
			}
			if !errors.Is(err, ErrNoContent) {
				t.Fatalf("expected ErrNoContent, got %v", err)
			}
		})
	}
}
