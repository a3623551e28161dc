package handler

import (
	"quiz-dump/internal/domain"
	"quiz-dump/internal/middleware"
	"quiz-dump/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AIContentHandler serves generated explanation and theory texts.
type AIContentHandler struct {
	service service.AIContentService
}

func NewAIContentHandler(svc service.AIContentService) *AIContentHandler {
	return &AIContentHandler{service: svc}
}

// GetExplanation godoc
// @Summary Get an AI explanation
// @Description Explains why the official answer is right and the other options are wrong. Responses are cached per question and language.
// @Tags ai
// @Produce json
// @Param id path string true "Question ID"
// @Param lang query string false "Language code" Enums(vi, en, ja, ko, zh, fr, de, es) default(vi)
// @Success 200 {object} dto.AIContentResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /questions/{id}/explanation [get]
func (h *AIContentHandler) GetExplanation(c *fiber.Ctx) error {
	return h.get(c, domain.ContentExplanation)
}

// GetTheory godoc
// @Summary Get AI theory notes
// @Description Defines the services and concepts the question mentions. Responses are cached per question and language.
// @Tags ai
// @Produce json
// @Param id path string true "Question ID"
// @Param lang query string false "Language code" Enums(vi, en, ja, ko, zh, fr, de, es) default(vi)
// @Success 200 {object} dto.AIContentResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /questions/{id}/theory [get]
func (h *AIContentHandler) GetTheory(c *fiber.Ctx) error {
	return h.get(c, domain.ContentTheory)
}

// Invalidate godoc
// @Summary Drop cached AI content
// @Description Removes a cached explanation or theory text so the next request regenerates it
// @Tags ai
// @Param id path string true "Question ID"
// @Param kind path string true "Content kind" Enums(explanation, theory)
// @Param lang query string false "Language code" default(vi)
// @Success 204
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /questions/{id}/{kind} [delete]
func (h *AIContentHandler) Invalidate(c *fiber.Ctx) error {
	lang, _ := c.Locals(middleware.LanguageKey).(string)
	kind := domain.ContentKind(c.Params("kind"))
	if err := h.service.Invalidate(c.UserContext(), kind, c.Params("id"), lang); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AIContentHandler) get(c *fiber.Ctx, kind domain.ContentKind) error {
	lang, _ := c.Locals(middleware.LanguageKey).(string)
	resp, err := h.service.Get(c.UserContext(), kind, c.Params("id"), lang)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
