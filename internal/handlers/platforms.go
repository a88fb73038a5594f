package handlers

import (
	"fmt"
	"time"

	"github.com/amorgan/brandhub/internal/models"
	"github.com/amorgan/brandhub/internal/services"
	"github.com/amorgan/brandhub/internal/storage"
	"github.com/amorgan/brandhub/internal/types"
	"github.com/amorgan/brandhub/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PlatformHandler handles platform routes
type PlatformHandler struct {
	Store storage.Storage
}

// CreatePlatform handles POST /api/platforms
// @Summary Register a platform for a user
// @Tags Platforms
// @Accept json
// @Produce json
// @Param body body object true "Platform fields"
// @Success 201 {object} models.Platform
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /platforms [post]
func (h *PlatformHandler) CreatePlatform(c *fiber.Ctx) error {
	var body struct {
		UserID   int            `json:"userId"`
		Name     string         `json:"name"`
		Type     string         `json:"type"`
		Settings datatypes.JSON `json:"settings"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, types.ErrTypeValidation)
	}
	if body.UserID <= 0 || body.Name == "" {
		return utils.ErrorResponse(c, "userId and name are required", fiber.StatusBadRequest, types.ErrTypeValidation)
	}
	if !models.ValidPlatformType(body.Type) {
		return utils.ErrorResponse(c, fmt.Sprintf("Unknown platform type: %s", body.Type), fiber.StatusBadRequest, types.ErrTypeValidation)
	}

	platform, err := h.Store.CreatePlatform(c.Context(), models.Platform{
		UserID:   body.UserID,
		Name:     body.Name,
		Type:     body.Type,
		Settings: body.Settings,
	})
	if err != nil {
		return respondError(c, err, types.ErrTypeInternal)
	}

	return c.Status(fiber.StatusCreated).JSON(platform)
}

// GetPlatform handles GET /api/platforms/:id
// @Summary Get a platform by id
// @Tags Platforms
// @Produce json
// @Param id path int true "Platform ID"
// @Success 200 {object} models.Platform
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /platforms/{id} [get]
func (h *PlatformHandler) GetPlatform(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, types.ErrTypeValidation)
	}

	platform, err := h.Store.GetPlatform(c.Context(), id)
	if err != nil {
		return respondError(c, err, types.ErrTypeInternal)
	}
	if platform == nil {
		return utils.NotFoundResponse(c, "Platform not found")
	}

	return c.Status(fiber.StatusOK).JSON(platform)
}

// GetPlatformsByUser handles GET /api/users/:userId/platforms
// @Summary List a user's platforms
// @Tags Platforms
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} models.Platform
// @Router /users/{userId}/platforms [get]
func (h *PlatformHandler) GetPlatformsByUser(c *fiber.Ctx) error {
	userID, err := paramID(c, "userId")
	if err != nil {
		return respondError(c, err, types.ErrTypeValidation)
	}

	platforms, err := h.Store.GetPlatformsByUserID(c.Context(), userID)
	if err != nil {
		return respondError(c, err, types.ErrTypeInternal)
	}
	if platforms == nil {
		platforms = []models.Platform{}
	}

	return c.Status(fiber.StatusOK).JSON(platforms)
}

// UpdatePlatform handles PATCH /api/platforms/:id
// @Summary Update a platform
// @Tags Platforms
// @Accept json
// @Produce json
// @Param id path int true "Platform ID"
// @Param body body models.PlatformUpdate true "Fields to update"
// @Success 200 {object} models.Platform
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /platforms/{id} [patch]
func (h *PlatformHandler) UpdatePlatform(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, types.ErrTypeValidation)
	}

	var upd models.PlatformUpdate
	if err := c.BodyParser(&upd); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, types.ErrTypeValidation)
	}
	if upd.Type != nil && !models.ValidPlatformType(*upd.Type) {
		return utils.ErrorResponse(c, fmt.Sprintf("Unknown platform type: %s", *upd.Type), fiber.StatusBadRequest, types.ErrTypeValidation)
	}

	platform, err := h.Store.UpdatePlatform(c.Context(), id, upd)
	if err != nil {
		return respondError(c, err, types.ErrTypeInternal)
	}
	if platform == nil {
		return utils.NotFoundResponse(c, "Platform not found")
	}

	return c.Status(fiber.StatusOK).JSON(platform)
}

// DeletePlatform handles DELETE /api/platforms/:id
// @Summary Delete a platform
// @Tags Platforms
// @Produce json
// @Param id path int true "Platform ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /platforms/{id} [delete]
func (h *PlatformHandler) DeletePlatform(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, types.ErrTypeValidation)
	}

	deleted, err := h.Store.DeletePlatform(c.Context(), id)
	if err != nil {
		return respondError(c, err, types.ErrTypeInternal)
	}
	if !deleted {
		return utils.NotFoundResponse(c, "Platform not found")
	}

	return utils.MutationSuccessResponse(c)
}

// ConnectPlatform handles POST /api/platforms/:id/connect
// @Summary Simulate connecting a platform account
// @Description Marks the platform connected, issues opaque tokens and seeds a mock analytics snapshot
// @Tags Platforms
// @Produce json
// @Param id path int true "Platform ID"
// @Success 200 {object} models.Platform
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /platforms/{id}/connect [post]
func (h *PlatformHandler) ConnectPlatform(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, types.ErrTypeValidation)
	}

	platform, err := h.Store.GetPlatform(c.Context(), id)
	if err != nil {
		return respondError(c, err, types.ErrTypeInternal)
	}
	if platform == nil {
		return utils.NotFoundResponse(c, "Platform not found")
	}

	// Publishing is simulated; the tokens are opaque placeholders standing
	// in for the identity provider's grant.
	connected := true
	accessToken := uuid.NewString()
	refreshToken := uuid.NewString()
	expiry := time.Now().Add(time.Hour)

	updated, err := h.Store.UpdatePlatform(c.Context(), id, models.PlatformUpdate{
		Connected:    &connected,
		AccessToken:  &accessToken,
		RefreshToken: &refreshToken,
		TokenExpiry:  &expiry,
	})
	if err != nil {
		return respondError(c, err, types.ErrTypeInternal)
	}

	// First connect seeds a mock analytics snapshot for the dashboard.
	existing, err := h.Store.GetAnalyticsByPlatformID(c.Context(), id)
	if err != nil {
		return respondError(c, err, types.ErrTypeInternal)
	}
	if existing == nil {
		snapshot := services.MockAnalytics(platform.UserID, platform.ID, platform.Type)
		if _, err := h.Store.CreateAnalytics(c.Context(), snapshot); err != nil {
			return respondError(c, err, types.ErrTypeInternal)
		}
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}
