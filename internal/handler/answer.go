package handler

import (
	"quiz-dump/internal/domain"
	"quiz-dump/internal/dto"
	"quiz-dump/internal/logger"
	"quiz-dump/internal/middleware"
	"quiz-dump/internal/service"
	"quiz-dump/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AnswerHandler records and reports session answers.
type AnswerHandler struct {
	service   service.AnswerService
	validator *validation.Validator
}

func NewAnswerHandler(svc service.AnswerService) *AnswerHandler {
	return &AnswerHandler{service: svc, validator: validation.NewValidator()}
}

// SubmitAnswer godoc
// @Summary Submit an answer
// @Description Records the selected option letters for the session and grades them against the official answer
// @Tags answers
// @Accept json
// @Produce json
// @Param id path string true "Question ID"
// @Param X-Session-ID header string false "Session ULID; issued when missing"
// @Param answer body dto.SubmitAnswerRequest true "Selected letters"
// @Success 200 {object} dto.SubmitAnswerResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /questions/{id}/answers [post]
func (h *AnswerHandler) SubmitAnswer(c *fiber.Ctx) error {
	var req dto.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Debug("Failed to parse answer body", zap.Error(err))
		return domain.NewInvalidInputError("request body must be JSON with a selected array")
	}
	if errs := h.validator.ValidateSelection(req.Selected); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.Submit(c.UserContext(), middleware.SessionID(c), c.Params("id"), req.Selected)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetSessionAnswers godoc
// @Summary Get session answers
// @Description Returns the session's answers with total, answered and correct counters
// @Tags answers
// @Produce json
// @Param X-Session-ID header string false "Session ULID; issued when missing"
// @Success 200 {object} dto.SessionAnswersResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /sessions/answers [get]
func (h *AnswerHandler) GetSessionAnswers(c *fiber.Ctx) error {
	resp, err := h.service.SessionAnswers(c.UserContext(), middleware.SessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ResetSession godoc
// @Summary Reset session answers
// @Description Deletes every answer stored for the session
// @Tags answers
// @Param X-Session-ID header string false "Session ULID; issued when missing"
// @Success 204
// @Failure 500 {object} middleware.ErrorResponse
// @Router /sessions/answers [delete]
func (h *AnswerHandler) ResetSession(c *fiber.Ctx) error {
	if err := h.service.ResetSession(c.UserContext(), middleware.SessionID(c)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
