package handlers

import (
	"github.com/amorgan/brandhub/internal/gateway"
	"github.com/amorgan/brandhub/internal/types"
	"github.com/amorgan/brandhub/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// ContentHandler handles the content-generation routes
type ContentHandler struct {
	Gateway *gateway.Gateway
}

// GenerateContent handles POST /api/generate-content
// @Summary Generate a post from a content brief
// @Description Generate platform-ready content with the configured text-generation provider
// @Tags Content
// @Accept json
// @Produce json
// @Param body body gateway.ContentRequest true "Content brief"
// @Success 200 {object} gateway.ContentResult
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /generate-content [post]
func (h *ContentHandler) GenerateContent(c *fiber.Ctx) error {
	var req gateway.ContentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, types.ErrTypeValidation)
	}

	result, err := h.Gateway.Generate(c.Context(), req)
	if err != nil {
		return respondError(c, err, types.ErrTypeGeneration)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// AnalyzeBrandVoice handles POST /api/analyze-brand-voice
// @Summary Analyze brand voice from writing samples
// @Description Derive voice sliders and suggested content pillars from at least two samples
// @Tags Content
// @Accept json
// @Produce json
// @Param body body object true "Samples"
// @Success 200 {object} gateway.VoiceAnalysis
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /analyze-brand-voice [post]
func (h *ContentHandler) AnalyzeBrandVoice(c *fiber.Ctx) error {
	var body struct {
		Samples []string `json:"samples"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, types.ErrTypeValidation)
	}

	analysis, err := h.Gateway.AnalyzeVoice(c.Context(), body.Samples)
	if err != nil {
		return respondError(c, err, types.ErrTypeGeneration)
	}

	return c.Status(fiber.StatusOK).JSON(analysis)
}

// RepurposeContent handles POST /api/repurpose-content
// @Summary Repurpose content for multiple platforms
// @Description Adapt one piece of content for each target platform, in input order
// @Tags Content
// @Accept json
// @Produce json
// @Param body body object true "Original content and target platforms"
// @Success 200 {array} gateway.RepurposedContent
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /repurpose-content [post]
func (h *ContentHandler) RepurposeContent(c *fiber.Ctx) error {
	var body struct {
		OriginalContent string   `json:"originalContent"`
		TargetPlatforms []string `json:"targetPlatforms"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, types.ErrTypeValidation)
	}

	results, err := h.Gateway.Repurpose(c.Context(), body.OriginalContent, body.TargetPlatforms)
	if err != nil {
		return respondError(c, err, types.ErrTypeGeneration)
	}

	return c.Status(fiber.StatusOK).JSON(results)
}
