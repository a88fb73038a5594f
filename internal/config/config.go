package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Store driver values
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port string

	// Entity store configuration
	StoreDriver string // memory or sqlite
	SQLiteDSN   string // sqlite only; defaults to :memory:

	// Text-generation provider configuration
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAITimeout int  // seconds per completion call
	ProviderStub  bool // serve deterministic fallbacks instead of calling out

	// Authorizer configuration (optional; empty URL disables session auth)
	AuthzURL      string
	AuthzClientID string
}

// Load loads configuration from the environment, reading a .env file first
// when one is present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "5000"),
		StoreDriver:   getEnv("STORE_DRIVER", StoreMemory),
		SQLiteDSN:     getEnv("SQLITE_DSN", ":memory:"),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o"),
		OpenAITimeout: getEnvAsInt("OPENAI_TIMEOUT_SECONDS", 30),
		ProviderStub:  getEnvAsBool("PROVIDER_STUB", false),
		AuthzURL:      getEnv("AUTHZ_URL", ""),
		AuthzClientID: getEnv("AUTHZ_CLIENT_ID", ""),
	}

	if cfg.StoreDriver != StoreMemory && cfg.StoreDriver != StoreSQLite {
		return nil, fmt.Errorf("unsupported STORE_DRIVER: %s", cfg.StoreDriver)
	}
	if cfg.OpenAITimeout <= 0 {
		return nil, fmt.Errorf("OPENAI_TIMEOUT_SECONDS must be positive")
	}
	if cfg.AuthzURL != "" && cfg.AuthzClientID == "" {
		return nil, fmt.Errorf("AUTHZ_CLIENT_ID is required when AUTHZ_URL is set")
	}

	// No API key means there is nothing to call; fall back to stub mode.
	if cfg.OpenAIAPIKey == "" {
		cfg.ProviderStub = true
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool gets an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
