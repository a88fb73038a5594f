package handlers

import (
	"github.com/amorgan/brandhub/internal/models"
	"github.com/amorgan/brandhub/internal/storage"
	"github.com/amorgan/brandhub/internal/types"
	"github.com/amorgan/brandhub/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// AnalyticsHandler handles analytics routes
type AnalyticsHandler struct {
	Store storage.Storage
}

// CreateAnalytics handles POST /api/analytics
// @Summary Create an analytics snapshot
// @Tags Analytics
// @Accept json
// @Produce json
// @Param body body object true "Analytics fields"
// @Success 201 {object} models.Analytics
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /analytics [post]
func (h *AnalyticsHandler) CreateAnalytics(c *fiber.Ctx) error {
	var body struct {
		UserID          int            `json:"userId"`
		PlatformID      int            `json:"platformId"`
		Followers       int            `json:"followers"`
		Engagement      datatypes.JSON `json:"engagement"`
		PostPerformance datatypes.JSON `json:"postPerformance"`
		GrowthTrends    datatypes.JSON `json:"growthTrends"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, types.ErrTypeValidation)
	}
	if body.UserID <= 0 {
		return utils.ErrorResponse(c, "userId is required", fiber.StatusBadRequest, types.ErrTypeValidation)
	}
	if body.Followers < 0 {
		return utils.ErrorResponse(c, "followers must not be negative", fiber.StatusBadRequest, types.ErrTypeValidation)
	}

	analytics, err := h.Store.CreateAnalytics(c.Context(), models.Analytics{
		UserID:          body.UserID,
		PlatformID:      body.PlatformID,
		Followers:       body.Followers,
		Engagement:      body.Engagement,
		PostPerformance: body.PostPerformance,
		GrowthTrends:    body.GrowthTrends,
	})
	if err != nil {
		return respondError(c, err, types.ErrTypeInternal)
	}

	return c.Status(fiber.StatusCreated).JSON(analytics)
}

// GetAnalytics handles GET /api/analytics/:id
// @Summary Get an analytics snapshot by id
// @Tags Analytics
// @Produce json
// @Param id path int true "Analytics ID"
// @Success 200 {object} models.Analytics
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /analytics/{id} [get]
func (h *AnalyticsHandler) GetAnalytics(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, types.ErrTypeValidation)
	}

	analytics, err := h.Store.GetAnalytics(c.Context(), id)
	if err != nil {
		return respondError(c, err, types.ErrTypeInternal)
	}
	if analytics == nil {
		return utils.NotFoundResponse(c, "Analytics not found")
	}

	return c.Status(fiber.StatusOK).JSON(analytics)
}

// GetAnalyticsByUser handles GET /api/users/:userId/analytics
// @Summary List a user's analytics snapshots
// @Tags Analytics
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} models.Analytics
// @Router /users/{userId}/analytics [get]
func (h *AnalyticsHandler) GetAnalyticsByUser(c *fiber.Ctx) error {
	userID, err := paramID(c, "userId")
	if err != nil {
		return respondError(c, err, types.ErrTypeValidation)
	}

	analytics, err := h.Store.GetAnalyticsByUserID(c.Context(), userID)
	if err != nil {
		return respondError(c, err, types.ErrTypeInternal)
	}
	if analytics == nil {
		analytics = []models.Analytics{}
	}

	return c.Status(fiber.StatusOK).JSON(analytics)
}

// GetAnalyticsByPlatform handles GET /api/platforms/:platformId/analytics
// @Summary Get the analytics snapshot for a platform
// @Tags Analytics
// @Produce json
// @Param platformId path int true "Platform ID"
// @Success 200 {object} models.Analytics
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /platforms/{platformId}/analytics [get]
func (h *AnalyticsHandler) GetAnalyticsByPlatform(c *fiber.Ctx) error {
	platformID, err := paramID(c, "platformId")
	if err != nil {
		return respondError(c, err, types.ErrTypeValidation)
	}

	analytics, err := h.Store.GetAnalyticsByPlatformID(c.Context(), platformID)
	if err != nil {
		return respondError(c, err, types.ErrTypeInternal)
	}
	if analytics == nil {
		return utils.NotFoundResponse(c, "Analytics not found")
	}

	return c.Status(fiber.StatusOK).JSON(analytics)
}

// UpdateAnalytics handles PATCH /api/analytics/:id
// @Summary Update an analytics snapshot
// @Tags Analytics
// @Accept json
// @Produce json
// @Param id path int true "Analytics ID"
// @Param body body models.AnalyticsUpdate true "Fields to update"
// @Success 200 {object} models.Analytics
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /analytics/{id} [patch]
func (h *AnalyticsHandler) UpdateAnalytics(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, types.ErrTypeValidation)
	}

	var upd models.AnalyticsUpdate
	if err := c.BodyParser(&upd); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, types.ErrTypeValidation)
	}
	if upd.Followers != nil && *upd.Followers < 0 {
		return utils.ErrorResponse(c, "followers must not be negative", fiber.StatusBadRequest, types.ErrTypeValidation)
	}

	analytics, err := h.Store.UpdateAnalytics(c.Context(), id, upd)
	if err != nil {
		return respondError(c, err, types.ErrTypeInternal)
	}
	if analytics == nil {
		return utils.NotFoundResponse(c, "Analytics not found")
	}

	return c.Status(fiber.StatusOK).JSON(analytics)
}
