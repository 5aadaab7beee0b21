package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config captures environment driven configuration values for the service.
type Config struct {
	HTTPPort     int
	LogLevel     string
	LogFormat    string
	DemoData     bool
	GeminiAPIKey string
	GeminiModel  string
}

// Load parses configuration values from the current process environment.
// A .env file in the working directory, when present, is loaded first.
//
// The loader applies sensible defaults for optional fields while validating
// the values that are set. The Gemini key is optional: without it the
// reminder drafting endpoints degrade to their fallback messages.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		HTTPPort:  8080,
		LogLevel:  "info",
		LogFormat: "text",
	}

	invalid := make([]string, 0, 2)

	if portValue := strings.TrimSpace(os.Getenv("SEVACONNECT_HTTP_PORT")); portValue != "" {
		port, err := strconv.Atoi(portValue)
		if err != nil || port <= 0 {
			invalid = append(invalid, "SEVACONNECT_HTTP_PORT")
		} else {
			cfg.HTTPPort = port
		}
	}

	if level := strings.TrimSpace(os.Getenv("SEVACONNECT_LOG_LEVEL")); level != "" {
		switch strings.ToLower(level) {
		case "debug", "info", "warn", "warning", "error":
			cfg.LogLevel = strings.ToLower(level)
		default:
			invalid = append(invalid, "SEVACONNECT_LOG_LEVEL")
		}
	}

	if format := strings.TrimSpace(os.Getenv("SEVACONNECT_LOG_FORMAT")); format != "" {
		switch strings.ToLower(format) {
		case "text", "json":
			cfg.LogFormat = strings.ToLower(format)
		default:
			invalid = append(invalid, "SEVACONNECT_LOG_FORMAT")
		}
	}

	if demoValue := strings.TrimSpace(os.Getenv("SEVACONNECT_DEMO_DATA")); demoValue != "" {
		demo, err := strconv.ParseBool(demoValue)
		if err != nil {
			invalid = append(invalid, "SEVACONNECT_DEMO_DATA")
		} else {
			cfg.DemoData = demo
		}
	}

	cfg.GeminiAPIKey = strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	cfg.GeminiModel = strings.TrimSpace(os.Getenv("GEMINI_MODEL"))

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variable values: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}
