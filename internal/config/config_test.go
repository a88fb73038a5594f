package config

import "testing"

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "STORE_DRIVER", "SQLITE_DSN",
		"OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_TIMEOUT_SECONDS", "PROVIDER_STUB",
		"AUTHZ_URL", "AUTHZ_CLIENT_ID",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != "5000" {
		t.Errorf("Expected default port 5000, got %s", cfg.Port)
	}
	if cfg.StoreDriver != StoreMemory {
		t.Errorf("Expected memory store driver, got %s", cfg.StoreDriver)
	}
	if cfg.SQLiteDSN != ":memory:" {
		t.Errorf("Expected :memory: DSN, got %s", cfg.SQLiteDSN)
	}
	if cfg.OpenAIModel != "gpt-4o" {
		t.Errorf("Expected default model gpt-4o, got %s", cfg.OpenAIModel)
	}
	if cfg.OpenAITimeout != 30 {
		t.Errorf("Expected default timeout 30, got %d", cfg.OpenAITimeout)
	}
	// Without an API key there is nothing to call
	if !cfg.ProviderStub {
		t.Error("Expected stub mode when no API key is configured")
	}
}

func TestLoadWithAPIKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ProviderStub {
		t.Error("Expected live provider when an API key is configured")
	}
}

func TestLoadStubOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("PROVIDER_STUB", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.ProviderStub {
		t.Error("Expected stub mode to stay on when explicitly requested")
	}
}

func TestLoadRejectsUnknownStoreDriver(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_DRIVER", "mongo")

	if _, err := Load(); err == nil {
		t.Error("Expected error for unknown store driver")
	}
}

func TestLoadRejectsAuthzWithoutClientID(t *testing.T) {
	clearEnv(t)
	t.Setenv("AUTHZ_URL", "http://localhost:8080")

	if _, err := Load(); err == nil {
		t.Error("Expected error when AUTHZ_URL is set without AUTHZ_CLIENT_ID")
	}
}
