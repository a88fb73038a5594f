package handlers

import (
	"fmt"
	"time"

	"github.com/amorgan/brandhub/internal/models"
	"github.com/amorgan/brandhub/internal/storage"
	"github.com/amorgan/brandhub/internal/types"
	"github.com/amorgan/brandhub/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// ContentPostHandler handles content post routes
type ContentPostHandler struct {
	Store storage.Storage
}

// CreateContentPost handles POST /api/content-posts
// @Summary Create a content post
// @Tags ContentPosts
// @Accept json
// @Produce json
// @Param body body object true "Post fields"
// @Success 201 {object} models.ContentPost
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /content-posts [post]
func (h *ContentPostHandler) CreateContentPost(c *fiber.Ctx) error {
	var body struct {
		UserID      int        `json:"userId"`
		PlatformID  int        `json:"platformId"`
		Title       string     `json:"title"`
		Content     string     `json:"content"`
		Tone        string     `json:"tone"`
		Length      string     `json:"length"`
		Type        string     `json:"type"`
		Status      string     `json:"status"`
		ScheduledAt *time.Time `json:"scheduledAt"`
		PublishedAt *time.Time `json:"publishedAt"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, types.ErrTypeValidation)
	}
	if body.UserID <= 0 || body.Content == "" {
		return utils.ErrorResponse(c, "userId and content are required", fiber.StatusBadRequest, types.ErrTypeValidation)
	}
	if body.Status != "" && !models.ValidPostStatus(body.Status) {
		return utils.ErrorResponse(c, fmt.Sprintf("Unknown status: %s", body.Status), fiber.StatusBadRequest, types.ErrTypeValidation)
	}

	post, err := h.Store.CreateContentPost(c.Context(), models.ContentPost{
		UserID:      body.UserID,
		PlatformID:  body.PlatformID,
		Title:       body.Title,
		Content:     body.Content,
		Tone:        body.Tone,
		Length:      body.Length,
		Type:        body.Type,
		Status:      body.Status,
		ScheduledAt: body.ScheduledAt,
		PublishedAt: body.PublishedAt,
	})
	if err != nil {
		return respondError(c, err, types.ErrTypeInternal)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetContentPost handles GET /api/content-posts/:id
// @Summary Get a content post by id
// @Tags ContentPosts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} models.ContentPost
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /content-posts/{id} [get]
func (h *ContentPostHandler) GetContentPost(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, types.ErrTypeValidation)
	}

	post, err := h.Store.GetContentPost(c.Context(), id)
	if err != nil {
		return respondError(c, err, types.ErrTypeInternal)
	}
	if post == nil {
		return utils.NotFoundResponse(c, "Content post not found")
	}

	return c.Status(fiber.StatusOK).JSON(post)
}

// GetContentPostsByUser handles GET /api/users/:userId/content-posts
// @Summary List a user's content posts
// @Tags ContentPosts
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} models.ContentPost
// @Router /users/{userId}/content-posts [get]
func (h *ContentPostHandler) GetContentPostsByUser(c *fiber.Ctx) error {
	userID, err := paramID(c, "userId")
	if err != nil {
		return respondError(c, err, types.ErrTypeValidation)
	}

	posts, err := h.Store.GetContentPostsByUserID(c.Context(), userID)
	if err != nil {
		return respondError(c, err, types.ErrTypeInternal)
	}
	if posts == nil {
		posts = []models.ContentPost{}
	}

	return c.Status(fiber.StatusOK).JSON(posts)
}

// GetContentPostsByPlatform handles GET /api/platforms/:platformId/content-posts
// @Summary List a platform's content posts
// @Tags ContentPosts
// @Produce json
// @Param platformId path int true "Platform ID"
// @Success 200 {array} models.ContentPost
// @Router /platforms/{platformId}/content-posts [get]
func (h *ContentPostHandler) GetContentPostsByPlatform(c *fiber.Ctx) error {
	platformID, err := paramID(c, "platformId")
	if err != nil {
		return respondError(c, err, types.ErrTypeValidation)
	}

	posts, err := h.Store.GetContentPostsByPlatformID(c.Context(), platformID)
	if err != nil {
		return respondError(c, err, types.ErrTypeInternal)
	}
	if posts == nil {
		posts = []models.ContentPost{}
	}

	return c.Status(fiber.StatusOK).JSON(posts)
}

// UpdateContentPost handles PATCH /api/content-posts/:id
// @Summary Update a content post
// @Description Blind merge; status transitions are advisory and not enforced
// @Tags ContentPosts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param body body models.ContentPostUpdate true "Fields to update"
// @Success 200 {object} models.ContentPost
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /content-posts/{id} [patch]
func (h *ContentPostHandler) UpdateContentPost(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, types.ErrTypeValidation)
	}

	var upd models.ContentPostUpdate
	if err := c.BodyParser(&upd); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, types.ErrTypeValidation)
	}
	if upd.Status != nil && !models.ValidPostStatus(*upd.Status) {
		return utils.ErrorResponse(c, fmt.Sprintf("Unknown status: %s", *upd.Status), fiber.StatusBadRequest, types.ErrTypeValidation)
	}

	post, err := h.Store.UpdateContentPost(c.Context(), id, upd)
	if err != nil {
		return respondError(c, err, types.ErrTypeInternal)
	}
	if post == nil {
		return utils.NotFoundResponse(c, "Content post not found")
	}

	return c.Status(fiber.StatusOK).JSON(post)
}

// DeleteContentPost handles DELETE /api/content-posts/:id
// @Summary Delete a content post
// @Tags ContentPosts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /content-posts/{id} [delete]
func (h *ContentPostHandler) DeleteContentPost(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, types.ErrTypeValidation)
	}

	deleted, err := h.Store.DeleteContentPost(c.Context(), id)
	if err != nil {
		return respondError(c, err, types.ErrTypeInternal)
	}
	if !deleted {
		return utils.NotFoundResponse(c, "Content post not found")
	}

	return utils.MutationSuccessResponse(c)
}
