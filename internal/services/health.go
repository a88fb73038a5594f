package services

import (
	"context"
	"fmt"
	"log"

	"github.com/amorgan/brandhub/internal/config"
	"github.com/amorgan/brandhub/internal/storage"
	"github.com/amorgan/brandhub/internal/utils"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Store        string            `json:"store"`
	Provider     string            `json:"provider"`
	Authorizer   string            `json:"authorizer"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// HealthCheck probes the entity store and the optional Authorizer and
// reports the provider mode.
func HealthCheck(ctx context.Context, cfg *config.Config, store storage.Storage) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	// An absent lookup still exercises the store end to end.
	if _, err := store.GetUser(ctx, 0); err != nil {
		result.Status = "unhealthy"
		result.Store = "error"
		result.Details["store_error"] = err.Error()
		result.ErrorMessage = fmt.Sprintf("Store probe failed: %v", err)
		log.Printf("Health check failed - store probe: %v", err)
	} else {
		result.Store = "ok"
		result.Details["store_driver"] = cfg.StoreDriver
	}

	if cfg.ProviderStub {
		result.Provider = "stub"
	} else {
		result.Provider = "openai"
		result.Details["provider_model"] = cfg.OpenAIModel
	}

	if cfg.AuthzURL == "" {
		result.Authorizer = "disabled"
	} else if err := utils.PingAuthorizer(cfg.AuthzURL); err != nil {
		result.Status = "unhealthy"
		result.Authorizer = "unreachable"
		result.Details["authorizer_error"] = err.Error()
		if result.ErrorMessage == "" {
			result.ErrorMessage = fmt.Sprintf("Authorizer ping failed: %v", err)
		} else {
			result.ErrorMessage += fmt.Sprintf("; Authorizer ping failed: %v", err)
		}
		log.Printf("Health check failed - authorizer ping: %v", err)
	} else {
		result.Authorizer = "ok"
		result.Details["authorizer_url"] = cfg.AuthzURL
	}

	return result
}
