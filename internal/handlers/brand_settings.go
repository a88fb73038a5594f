package handlers

import (
	"github.com/amorgan/brandhub/internal/models"
	"github.com/amorgan/brandhub/internal/storage"
	"github.com/amorgan/brandhub/internal/types"
	"github.com/amorgan/brandhub/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// BrandSettingsHandler handles brand settings routes
type BrandSettingsHandler struct {
	Store storage.Storage
}

// GetBrandSettings handles GET /api/users/:userId/brand-settings
// @Summary Get a user's brand settings
// @Tags BrandSettings
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} models.BrandSettings
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /users/{userId}/brand-settings [get]
func (h *BrandSettingsHandler) GetBrandSettings(c *fiber.Ctx) error {
	userID, err := paramID(c, "userId")
	if err != nil {
		return respondError(c, err, types.ErrTypeValidation)
	}

	settings, err := h.Store.GetBrandSettings(c.Context(), userID)
	if err != nil {
		return respondError(c, err, types.ErrTypeInternal)
	}
	if settings == nil {
		return utils.NotFoundResponse(c, "Brand settings not found")
	}

	return c.Status(fiber.StatusOK).JSON(settings)
}

// CreateBrandSettings handles POST /api/users/:userId/brand-settings
// @Summary Create a user's brand settings
// @Description At most one settings row exists per user; sliders default to 50
// @Tags BrandSettings
// @Accept json
// @Produce json
// @Param userId path int true "User ID"
// @Param body body object true "Slider values and content pillars"
// @Success 201 {object} models.BrandSettings
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /users/{userId}/brand-settings [post]
func (h *BrandSettingsHandler) CreateBrandSettings(c *fiber.Ctx) error {
	userID, err := paramID(c, "userId")
	if err != nil {
		return respondError(c, err, types.ErrTypeValidation)
	}

	var body struct {
		FormalToCasual          *int           `json:"formalToCasual"`
		TechnicalToAccessible   *int           `json:"technicalToAccessible"`
		ReservedToEnthusiastic  *int           `json:"reservedToEnthusiastic"`
		TraditionalToInnovative *int           `json:"traditionalToInnovative"`
		ContentPillars          datatypes.JSON `json:"contentPillars"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, types.ErrTypeValidation)
	}

	settings := models.BrandSettings{
		UserID:                  userID,
		FormalToCasual:          50,
		TechnicalToAccessible:   50,
		ReservedToEnthusiastic:  50,
		TraditionalToInnovative: 50,
		ContentPillars:          body.ContentPillars,
	}
	for _, v := range []struct {
		src *int
		dst *int
	}{
		{body.FormalToCasual, &settings.FormalToCasual},
		{body.TechnicalToAccessible, &settings.TechnicalToAccessible},
		{body.ReservedToEnthusiastic, &settings.ReservedToEnthusiastic},
		{body.TraditionalToInnovative, &settings.TraditionalToInnovative},
	} {
		if v.src == nil {
			continue
		}
		if !validSlider(*v.src) {
			return utils.ErrorResponse(c, "Slider values must be between 0 and 100", fiber.StatusBadRequest, types.ErrTypeValidation)
		}
		*v.dst = *v.src
	}

	existing, err := h.Store.GetBrandSettings(c.Context(), userID)
	if err != nil {
		return respondError(c, err, types.ErrTypeInternal)
	}
	if existing != nil {
		return utils.ErrorResponse(c, "Brand settings already exist for this user", fiber.StatusBadRequest, types.ErrTypeValidation)
	}

	created, err := h.Store.CreateBrandSettings(c.Context(), settings)
	if err != nil {
		return respondError(c, err, types.ErrTypeInternal)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateBrandSettings handles PATCH /api/users/:userId/brand-settings
// @Summary Update a user's brand settings
// @Tags BrandSettings
// @Accept json
// @Produce json
// @Param userId path int true "User ID"
// @Param body body models.BrandSettingsUpdate true "Fields to update"
// @Success 200 {object} models.BrandSettings
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /users/{userId}/brand-settings [patch]
func (h *BrandSettingsHandler) UpdateBrandSettings(c *fiber.Ctx) error {
	userID, err := paramID(c, "userId")
	if err != nil {
		return respondError(c, err, types.ErrTypeValidation)
	}

	var upd models.BrandSettingsUpdate
	if err := c.BodyParser(&upd); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, types.ErrTypeValidation)
	}
	for _, v := range []*int{upd.FormalToCasual, upd.TechnicalToAccessible, upd.ReservedToEnthusiastic, upd.TraditionalToInnovative} {
		if v != nil && !validSlider(*v) {
			return utils.ErrorResponse(c, "Slider values must be between 0 and 100", fiber.StatusBadRequest, types.ErrTypeValidation)
		}
	}

	settings, err := h.Store.UpdateBrandSettings(c.Context(), userID, upd)
	if err != nil {
		return respondError(c, err, types.ErrTypeInternal)
	}
	if settings == nil {
		return utils.NotFoundResponse(c, "Brand settings not found")
	}

	return c.Status(fiber.StatusOK).JSON(settings)
}
