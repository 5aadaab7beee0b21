package config

import (
	"os"
	"strings"
	"testing"
)

func TestLoader_ParseEnvironment(t *testing.T) {

	t.Run("applies defaults when variables are missing", func(t *testing.T) {
		unset := []string{
			"SEVACONNECT_HTTP_PORT",
			"SEVACONNECT_LOG_LEVEL",
			"SEVACONNECT_LOG_FORMAT",
			"SEVACONNECT_DEMO_DATA",
			"GEMINI_API_KEY",
			"GEMINI_MODEL",
		}
		for _, key := range unset {
			if err := os.Unsetenv(key); err != nil {
				t.Fatalf("failed to unset %s: %v", key, err)
			}
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}

		if cfg.HTTPPort != 8080 {
			t.Fatalf("expected default HTTP port 8080, got %d", cfg.HTTPPort)
		}
		if cfg.LogLevel != "info" {
			t.Fatalf("expected default log level info, got %q", cfg.LogLevel)
		}
		if cfg.LogFormat != "text" {
			t.Fatalf("expected default log format text, got %q", cfg.LogFormat)
		}
		if cfg.DemoData {
			t.Fatal("demo data must default to off")
		}
		if cfg.GeminiAPIKey != "" {
			t.Fatalf("expected empty API key, got %q", cfg.GeminiAPIKey)
		}
	})

	t.Run("parses explicit values", func(t *testing.T) {
		t.Setenv("SEVACONNECT_HTTP_PORT", "9090")
		t.Setenv("SEVACONNECT_LOG_LEVEL", "DEBUG")
		t.Setenv("SEVACONNECT_LOG_FORMAT", "json")
		t.Setenv("SEVACONNECT_DEMO_DATA", "true")
		t.Setenv("GEMINI_API_KEY", "  secret-key  ")
		t.Setenv("GEMINI_MODEL", "gemini-2.0-pro")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}

		if cfg.HTTPPort != 9090 {
			t.Fatalf("expected HTTP port 9090, got %d", cfg.HTTPPort)
		}
		if cfg.LogLevel != "debug" {
			t.Fatalf("expected log level debug, got %q", cfg.LogLevel)
		}
		if cfg.LogFormat != "json" {
			t.Fatalf("expected log format json, got %q", cfg.LogFormat)
		}
		if !cfg.DemoData {
			t.Fatal("expected demo data on")
		}
		if cfg.GeminiAPIKey != "secret-key" {
			t.Fatalf("expected trimmed API key, got %q", cfg.GeminiAPIKey)
		}
		if cfg.GeminiModel != "gemini-2.0-pro" {
			t.Fatalf("unexpected model: %q", cfg.GeminiModel)
		}
	})

	t.Run("reports every invalid value", func(t *testing.T) {
		t.Setenv("SEVACONNECT_HTTP_PORT", "not-a-port")
		t.Setenv("SEVACONNECT_LOG_LEVEL", "verbose")
		t.Setenv("SEVACONNECT_LOG_FORMAT", "text")
		t.Setenv("SEVACONNECT_DEMO_DATA", "maybe")

		_, err := Load()
		if err == nil {
			t.Fatal("expected error for invalid values")
		}
		for _, key := range []string{"SEVACONNECT_HTTP_PORT", "SEVACONNECT_LOG_LEVEL", "SEVACONNECT_DEMO_DATA"} {
			if !strings.Contains(err.Error(), key) {
				t.Fatalf("error %q does not mention %s", err.Error(), key)
			}
		}
	})
}
