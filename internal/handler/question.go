package handler

import (
	"strconv"

	"quiz-dump/internal/domain"
	"quiz-dump/internal/dto"
	"quiz-dump/internal/middleware"
	"quiz-dump/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuestionHandler serves the parsed question bank.
type QuestionHandler struct {
	bank service.QuestionBankService
}

// NewQuestionHandler creates a new QuestionHandler instance
func NewQuestionHandler(bank service.QuestionBankService) *QuestionHandler {
	return &QuestionHandler{bank: bank}
}

// ListQuestions godoc
// @Summary List questions
// @Description Returns a page of question summaries in document order, optionally filtered by a search term
// @Tags questions
// @Produce json
// @Param offset query int false "Number of records to skip" default(0)
// @Param limit query int false "Page size (1-200)" default(20)
// @Param search query string false "Exact id, or text found in the body or options"
// @Success 200 {object} dto.QuestionListResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /questions [get]
func (h *QuestionHandler) ListQuestions(c *fiber.Ctx) error {
	offset, _ := c.Locals(middleware.OffsetKey).(int)
	limit, ok := c.Locals(middleware.LimitKey).(int)
	if !ok {
		limit = middleware.DefaultPageLimit
	}

	all, err := h.bank.List(c.UserContext(), c.Query("search"))
	if err != nil {
		return err
	}

	resp := dto.QuestionListResponse{
		Total:  len(all),
		Offset: offset,
		Limit:  limit,
		Items:  []dto.QuestionSummary{},
	}
	if offset < len(all) {
		end := min(offset+limit, len(all))
		for _, pq := range all[offset:end] {
			resp.Items = append(resp.Items, toSummary(pq))
		}
	}
	return c.JSON(resp)
}

// GetQuestion godoc
// @Summary Get a question
// @Description Returns the full record for a question id; the first record wins when ids repeat
// @Tags questions
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /questions/{id} [get]
func (h *QuestionHandler) GetQuestion(c *fiber.Ctx) error {
	id := c.Params("id")
	q, position, err := h.bank.ByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.QuestionResponse{Position: position, Question: *q})
}

// Navigate godoc
// @Summary Navigate by position
// @Description Returns the record at a 1-based position with the total and the previous/next positions
// @Tags questions
// @Produce json
// @Param position path int true "1-based position"
// @Success 200 {object} dto.NavigationResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /navigation/{position} [get]
func (h *QuestionHandler) Navigate(c *fiber.Ctx) error {
	position, err := strconv.Atoi(c.Params("position"))
	if err != nil {
		return domain.ValidationErrors{domain.NewInvalidFormatError("position", c.Params("position"))}
	}

	q, total, err := h.bank.ByPosition(c.UserContext(), position)
	if err != nil {
		return err
	}

	resp := dto.NavigationResponse{
		Position: position,
		Total:    total,
		Question: dto.QuestionResponse{Position: position, Question: *q},
	}
	if position > 1 {
		prev := position - 1
		resp.Prev = &prev
	}
	if position < total {
		next := position + 1
		resp.Next = &next
	}
	return c.JSON(resp)
}

func toSummary(pq service.PositionedQuestion) dto.QuestionSummary {
	return dto.QuestionSummary{
		ID:            pq.Question.ID,
		Position:      pq.Position,
		Topic:         pq.Question.Topic,
		IsMultiselect: pq.Question.IsMultiselect,
		ExpectedCount: pq.Question.ExpectedCount,
		HasAnswer:     pq.Question.HasCorrectAnswer(),
	}
}
