package handler

import (
	"quiz-dump/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups every HTTP handler of the API.
type Handlers struct {
	Health    *HealthHandler
	Question  *QuestionHandler
	Answer    *AnswerHandler
	AIContent *AIContentHandler
	Document  *DocumentHandler
}

// RegisterRoutes mounts the API under /api.
func RegisterRoutes(app *fiber.App, h Handlers) {
	vm := middleware.NewValidationMiddleware()

	api := app.Group("/api")
	api.Get("/health", h.Health.Health)

	questions := api.Group("/questions")
	questions.Get("/", vm.ValidatePagination(), h.Question.ListQuestions)
	questions.Get("/:id", vm.ValidateQuestionID(), h.Question.GetQuestion)
	questions.Post("/:id/answers", vm.ValidateQuestionID(), middleware.Session(), h.Answer.SubmitAnswer)
	questions.Get("/:id/explanation", vm.ValidateQuestionID(), vm.ValidateLanguage(), h.AIContent.GetExplanation)
	questions.Get("/:id/theory", vm.ValidateQuestionID(), vm.ValidateLanguage(), h.AIContent.GetTheory)
	questions.Delete("/:id/:kind", vm.ValidateQuestionID(), vm.ValidateLanguage(), h.AIContent.Invalidate)

	api.Get("/navigation/:position", h.Question.Navigate)

	sessions := api.Group("/sessions", middleware.Session())
	sessions.Get("/answers", h.Answer.GetSessionAnswers)
	sessions.Delete("/answers", h.Answer.ResetSession)

	api.Post("/documents", h.Document.UploadDocument)
	api.Get("/exports/questions.xlsx", h.Document.ExportQuestions)
}
