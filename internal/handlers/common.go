package handlers

import (
	"errors"

	"github.com/amorgan/brandhub/internal/types"
	"github.com/amorgan/brandhub/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// respondError translates a gateway or store error into the standard error
// envelope, preserving the taxonomy code and type when present.
func respondError(c *fiber.Ctx, err error, fallbackType string) error {
	var custom *types.CustomError
	if errors.As(err, &custom) {
		return utils.ErrorResponse(c, custom.Message, custom.Code, custom.Type)
	}
	return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, fallbackType)
}

// paramID parses a positive integer route parameter.
func paramID(c *fiber.Ctx, name string) (int, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, types.NewValidationError("Invalid " + name + " parameter")
	}
	return id, nil
}

// validSlider reports whether a voice slider value is within [0,100].
func validSlider(v int) bool {
	return v >= 0 && v <= 100
}
