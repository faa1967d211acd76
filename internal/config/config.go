// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Provider names for the generation backend.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Config is the full configuration surface of the service.
type Config struct {
	// Generation backend
	Provider        string
	OpenAIAPIKey    string
	AnthropicAPIKey string
	ModelID         string // empty means the adapter default

	// Transport
	Bind       string
	AccessCode string // empty disables the gate (dev only)

	// Logging
	LogLevel  string
	LogFormat string
}

// Load reads configuration from the environment, first merging a .env file
// if present. A missing API credential for the selected provider is a fatal
// startup condition.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Provider:        getEnvDefault("MODEL_PROVIDER", ProviderOpenAI),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		ModelID:         os.Getenv("MODEL_ID"),
		Bind:            getEnvDefault("BIND", "0.0.0.0:8080"),
		AccessCode:      os.Getenv("ACCESS_CODE"),
		LogLevel:        getEnvDefault("LOG_LEVEL", "info"),
		LogFormat:       getEnvDefault("LOG_FORMAT", "json"),
	}

	switch cfg.Provider {
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required")
		}
	case ProviderAnthropic:
		if cfg.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY is required")
		}
	default:
		return nil, fmt.Errorf("unknown MODEL_PROVIDER %q", cfg.Provider)
	}

	return cfg, nil
}

func getEnvDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
