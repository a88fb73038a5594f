package middleware

import (
	"fmt"

	"github.com/amorgan/brandhub/internal/config"
	"github.com/amorgan/brandhub/internal/services"
	"github.com/amorgan/brandhub/internal/types"
	"github.com/gofiber/fiber/v2"
)

// AuthUser validates the session cookie through the Authorizer service.
// With no AUTHZ_URL configured the dashboard runs single-tenant and open;
// the middleware passes everything through.
func AuthUser(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.AuthzURL == "" {
			return c.Next()
		}
		return authorize(c, cfg, []string{"user"}, types.ErrTypeAuthorization)
	}
}

// authorize performs the authorization check
func authorize(c *fiber.Ctx, cfg *config.Config, roles []string, errorType string) error {
	if !services.IsAuthorizerInitialized() {
		if err := services.InitAuthorizer(cfg, c.Protocol(), c.Hostname()); err != nil {
			return &types.CustomError{
				Code:    fiber.StatusServiceUnavailable,
				Message: fmt.Sprintf("Authorizer unavailable: %v", err),
				Type:    errorType,
			}
		}
	}

	session := c.Cookies("cookie_session")
	if session == "" {
		return &types.CustomError{
			Code:    fiber.StatusForbidden,
			Message: "Authorizer cookie \"cookie_session\" not found",
			Type:    errorType,
		}
	}

	data, err := services.ValidateSession(session, roles)
	if err != nil {
		return &types.CustomError{
			Code:    fiber.StatusForbidden,
			Message: fmt.Sprintf("Invalid session: %v", err),
			Type:    errorType,
		}
	}

	if user, ok := data["user"]; ok {
		c.Locals("user", user)
	}

	return c.Next()
}
