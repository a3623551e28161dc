package handler

import (
	"bytes"
	"unicode/utf8"

	"quiz-dump/internal/domain"
	"quiz-dump/internal/dto"
	"quiz-dump/internal/export"
	"quiz-dump/internal/service"

	"github.com/gofiber/fiber/v2"
)

// DocumentHandler accepts uploaded exam dumps.
type DocumentHandler struct {
	bank service.QuestionBankService
}

func NewDocumentHandler(bank service.QuestionBankService) *DocumentHandler {
	return &DocumentHandler{bank: bank}
}

// UploadDocument godoc
// @Summary Upload an exam dump
// @Description Parses a raw markdown dump. With activate=true the records replace the bundled document until restart.
// @Tags documents
// @Accept plain
// @Produce json
// @Param activate query bool false "Serve the uploaded records" default(false)
// @Param document body string true "Markdown text"
// @Success 200 {object} dto.DocumentLoadResponse
// @Success 201 {object} dto.DocumentLoadResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /documents [post]
func (h *DocumentHandler) UploadDocument(c *fiber.Ctx) error {
	body := c.Body()
	if !utf8.Valid(body) {
		return domain.NewInvalidInputError("document must be UTF-8 text")
	}
	activate := c.QueryBool("activate", false)

	questions, err := h.bank.LoadDocument(c.UserContext(), string(body), activate)
	if err != nil {
		return err
	}
	if questions == nil {
		questions = []domain.Question{}
	}

	status := fiber.StatusOK
	if activate {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(dto.DocumentLoadResponse{
		Activated: activate,
		Count:     len(questions),
		Questions: questions,
	})
}

// ExportQuestions godoc
// @Summary Export questions
// @Description Returns the question bank as an Excel workbook, one row per record
// @Tags documents
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param search query string false "Exact id, or text found in the body or options"
// @Success 200 {file} file
// @Failure 503 {object} middleware.ErrorResponse
// @Router /exports/questions.xlsx [get]
func (h *DocumentHandler) ExportQuestions(c *fiber.Ctx) error {
	all, err := h.bank.List(c.UserContext(), c.Query("search"))
	if err != nil {
		return err
	}
	questions := make([]domain.Question, 0, len(all))
	for _, pq := range all {
		questions = append(questions, *pq.Question)
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, questions); err != nil {
		return domain.NewInternalError("failed to build workbook", err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="questions.xlsx"`)
	return c.Send(buf.Bytes())
}
