package reminder

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGeminiClient_GenerateText(t *testing.T) {
	t.Run("sends the prompt and returns candidate text", func(t *testing.T) {
		var gotPath, gotKey string
		var gotBody geminiRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotKey = r.Header.Get("x-goog-api-key")
			if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
				t.Errorf("decoding request body: %v", err)
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Hari "},{"text":"Om"}]}}]}`))
		}))
		defer server.Close()

		client := NewGeminiClientWithHTTP("secret", "", server.URL, server.Client())
		text, err := client.GenerateText(context.Background(), "write a reminder")
		if err != nil {
			t.Fatalf("expected success, got %v", err)
		}

		if text != "Hari Om" {
			t.Fatalf("text = %q, want concatenated parts", text)
		}
		if gotPath != "/v1beta/models/gemini-2.5-flash:generateContent" {
			t.Fatalf("path = %q", gotPath)
		}
		if gotKey != "secret" {
			t.Fatalf("api key header = %q", gotKey)
		}
		if len(gotBody.Contents) != 1 || len(gotBody.Contents[0].Parts) != 1 ||
			gotBody.Contents[0].Parts[0].Text != "write a reminder" {
			t.Fatalf("unexpected request body: %+v", gotBody)
		}
	})

	t.Run("missing key fails without a network call", func(t *testing.T) {
		client := NewGeminiClient("", "")
		_, err := client.GenerateText(context.Background(), "prompt")
		if !errors.Is(err, ErrMissingAPIKey) {
			t.Fatalf("expected ErrMissingAPIKey, got %v", err)
		}
	})

	t.Run("surfaces the API error message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`))
		}))
		defer server.Close()

		client := NewGeminiClientWithHTTP("bad", "", server.URL, server.Client())
		_, err := client.GenerateText(context.Background(), "prompt")
		if err == nil || !strings.Contains(err.Error(), "API key not valid") {
			t.Fatalf("expected API error message, got %v", err)
		}
	})

	t.Run("falls back to the raw body for non-JSON errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream unavailable"))
		}))
		defer server.Close()

		client := NewGeminiClientWithHTTP("secret", "", server.URL, server.Client())
		_, err := client.GenerateText(context.Background(), "prompt")
		if err == nil || !strings.Contains(err.Error(), "upstream unavailable") {
			t.Fatalf("expected raw body in error, got %v", err)
		}
	})

	t.Run("empty candidate list yields empty text", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"candidates":[]}`))
		}))
		defer server.Close()

		client := NewGeminiClientWithHTTP("secret", "", server.URL, server.Client())
		text, err := client.GenerateText(context.Background(), "prompt")
		if err != nil {
			t.Fatalf("expected success, got %v", err)
		}
		if text != "" {
			t.Fatalf("text = %q, want empty", text)
		}
	})

	t.Run("custom model shapes the endpoint path", func(t *testing.T) {
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`))
		}))
		defer server.Close()

		client := NewGeminiClientWithHTTP("secret", "gemini-2.0-pro", server.URL, server.Client())
		if _, err := client.GenerateText(context.Background(), "prompt"); err != nil {
			t.Fatalf("expected success, got %v", err)
		}
		if gotPath != "/v1beta/models/gemini-2.0-pro:generateContent" {
			t.Fatalf("path = %q", gotPath)
		}
	})
}
