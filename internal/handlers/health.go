package handlers

import (
	"github.com/amorgan/brandhub/internal/config"
	"github.com/amorgan/brandhub/internal/services"
	"github.com/amorgan/brandhub/internal/storage"
	"github.com/gofiber/fiber/v2"
)

// HealthHandler handles the health route
type HealthHandler struct {
	Cfg   *config.Config
	Store storage.Storage
}

// Health handles GET /api/health
// @Summary Service health
// @Tags Health
// @Produce json
// @Success 200 {object} services.HealthCheckResult
// @Failure 503 {object} services.HealthCheckResult
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	result := services.HealthCheck(c.Context(), h.Cfg, h.Store)
	status := fiber.StatusOK
	if result.Status != "healthy" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(result)
}
