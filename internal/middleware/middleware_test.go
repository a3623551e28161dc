package middleware_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"quiz-dump/internal/domain"
	"quiz-dump/internal/middleware"
	"quiz-dump/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Use(middleware.RequestLogger())
	return app
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, v), string(body))
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{"question not found", domain.NewQuestionNotFoundError("404"), http.StatusNotFound, "QUESTION_NOT_FOUND"},
		{"position out of range", domain.NewPositionOutOfRangeError(9, 3), http.StatusNotFound, "QUESTION_NOT_FOUND"},
		{"invalid input", domain.NewInvalidInputError("bad"), http.StatusBadRequest, "INVALID_INPUT"},
		{"invalid answer", domain.NewInvalidAnswerError("bad"), http.StatusBadRequest, "INVALID_ANSWER"},
		{"llm", domain.NewLLMServiceError(errors.New("429")), http.StatusServiceUnavailable, "LLM_SERVICE_ERROR"},
		{"document", domain.NewDocumentUnavailableError(nil), http.StatusServiceUnavailable, "DOCUMENT_UNAVAILABLE"},
		{"internal", domain.NewInternalError("boom", errors.New("db")), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"fiber", fiber.NewError(http.StatusMethodNotAllowed, "nope"), http.StatusMethodNotAllowed, "HTTP_ERROR"},
		{"unknown", errors.New("plain"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp()
			app.Get("/", func(c *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			var body middleware.ErrorResponse
			decode(t, resp, &body)
			assert.Equal(t, tt.expectedCode, body.Code)
			assert.Equal(t, tt.expectedStatus, body.Status)
		})
	}
}

func TestErrorHandler_ValidationErrors(t *testing.T) {
	app := newApp()
	vm := middleware.NewValidationMiddleware()
	app.Get("/questions/:id", vm.ValidateQuestionID(), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(middleware.QuestionIDKey).(string))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/questions/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body middleware.ValidationErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "id", body.Errors[0].Field)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/questions/935", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestValidatePagination(t *testing.T) {
	app := newApp()
	vm := middleware.NewValidationMiddleware()
	app.Get("/", vm.ValidatePagination(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"offset": c.Locals(middleware.OffsetKey),
			"limit":  c.Locals(middleware.LimitKey),
		})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	var body map[string]int
	decode(t, resp, &body)
	assert.Equal(t, 0, body["offset"])
	assert.Equal(t, middleware.DefaultPageLimit, body["limit"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/?offset=-1&limit=1000", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestValidateLanguage(t *testing.T) {
	app := newApp()
	vm := middleware.NewValidationMiddleware()
	app.Get("/", vm.ValidateLanguage(), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(middleware.LanguageKey).(string))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/?lang=en", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/?lang=klingon", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSession(t *testing.T) {
	app := newApp()
	app.Use(middleware.Session())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(middleware.SessionID(c))
	})

	t.Run("IssuesNewID", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		issued := resp.Header.Get(middleware.SessionHeader)
		assert.True(t, util.IsULID(issued))
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, issued, string(body))
	})

	t.Run("KeepsValidID", func(t *testing.T) {
		id := util.NewULID()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.SessionHeader, id)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, id, resp.Header.Get(middleware.SessionHeader))
	})

	t.Run("ReplacesMalformedID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.SessionHeader, "'; DROP TABLE user_answers; --")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.True(t, util.IsULID(resp.Header.Get(middleware.SessionHeader)))
	})

	t.Run("ReplacesTruncatedID", func(t *testing.T) {
		truncated := util.NewULID()[:25]
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.SessionHeader, truncated)
		resp, err := app.Test(req)
		require.NoError(t, err)
		issued := resp.Header.Get(middleware.SessionHeader)
		assert.NotEqual(t, truncated, issued)
		assert.True(t, util.IsULID(issued))
	})
}
