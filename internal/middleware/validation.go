package middleware

import (
	"quiz-dump/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPageLimit = 20

	QuestionIDKey = "validated_question_id"
	OffsetKey     = "validated_offset"
	LimitKey      = "validated_limit"
	LanguageKey   = "validated_lang"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateQuestionID validates the :id path parameter.
func (vm *ValidationMiddleware) ValidateQuestionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if errors := vm.validator.ValidateQuestionID(id); len(errors) > 0 {
			return errors
		}
		c.Locals(QuestionIDKey, id)
		return c.Next()
	}
}

// ValidatePagination validates the offset and limit query parameters.
func (vm *ValidationMiddleware) ValidatePagination() fiber.Handler {
	return func(c *fiber.Ctx) error {
		offset := c.QueryInt("offset", 0)
		limit := c.QueryInt("limit", DefaultPageLimit)
		if errors := vm.validator.ValidatePagination(offset, limit); len(errors) > 0 {
			return errors
		}
		c.Locals(OffsetKey, offset)
		c.Locals(LimitKey, limit)
		return c.Next()
	}
}

// ValidateLanguage validates the lang query parameter.
func (vm *ValidationMiddleware) ValidateLanguage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lang := c.Query("lang")
		if errors := vm.validator.ValidateLanguage(lang); len(errors) > 0 {
			return errors
		}
		c.Locals(LanguageKey, lang)
		return c.Next()
	}
}

// Validator exposes the validator for body checks done in handlers.
func (vm *ValidationMiddleware) Validator() *validation.Validator {
	return vm.validator
}
