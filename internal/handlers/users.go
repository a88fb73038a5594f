package handlers

import (
	"github.com/amorgan/brandhub/internal/models"
	"github.com/amorgan/brandhub/internal/storage"
	"github.com/amorgan/brandhub/internal/types"
	"github.com/amorgan/brandhub/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles user routes
type UserHandler struct {
	Store storage.Storage
}

// CreateUser handles POST /api/users
// @Summary Create a user
// @Tags Users
// @Accept json
// @Produce json
// @Param body body object true "User fields"
// @Success 201 {object} models.User
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /users [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Name     string `json:"name"`
		Email    string `json:"email"`
		Avatar   string `json:"avatar"`
		Plan     string `json:"plan"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, types.ErrTypeValidation)
	}
	if body.Username == "" || body.Password == "" {
		return utils.ErrorResponse(c, "username and password are required", fiber.StatusBadRequest, types.ErrTypeValidation)
	}

	existing, err := h.Store.GetUserByUsername(c.Context(), body.Username)
	if err != nil {
		return respondError(c, err, types.ErrTypeInternal)
	}
	if existing != nil {
		return utils.ErrorResponse(c, "Username already taken", fiber.StatusBadRequest, types.ErrTypeValidation)
	}

	user, err := h.Store.CreateUser(c.Context(), models.User{
		Username: body.Username,
		Password: body.Password,
		Name:     body.Name,
		Email:    body.Email,
		Avatar:   body.Avatar,
		Plan:     body.Plan,
	})
	if err != nil {
		return respondError(c, err, types.ErrTypeInternal)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// GetUser handles GET /api/users/:id
// @Summary Get a user by id
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, types.ErrTypeValidation)
	}

	user, err := h.Store.GetUser(c.Context(), id)
	if err != nil {
		return respondError(c, err, types.ErrTypeInternal)
	}
	if user == nil {
		return utils.NotFoundResponse(c, "User not found")
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

// GetUserByUsername handles GET /api/users/by-username/:username
// @Summary Get a user by username
// @Tags Users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} models.User
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /users/by-username/{username} [get]
func (h *UserHandler) GetUserByUsername(c *fiber.Ctx) error {
	username := c.Params("username")

	user, err := h.Store.GetUserByUsername(c.Context(), username)
	if err != nil {
		return respondError(c, err, types.ErrTypeInternal)
	}
	if user == nil {
		return utils.NotFoundResponse(c, "User not found")
	}

	return c.Status(fiber.StatusOK).JSON(user)
}
