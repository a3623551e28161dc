package handler

import (
	"quiz-dump/internal/domain"
	"quiz-dump/internal/dto"
	"quiz-dump/internal/logger"
	"quiz-dump/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HealthHandler reports service and dependency status.
type HealthHandler struct {
	bank  service.QuestionBankService
	cache domain.Cache
}

// NewHealthHandler creates a health handler. cache may be nil.
func NewHealthHandler(bank service.QuestionBankService, cache domain.Cache) *HealthHandler {
	return &HealthHandler{bank: bank, cache: cache}
}

// Health godoc
// @Summary Health check
// @Description Always 200 while the process serves requests; degraded dependencies are reported in the body
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx := c.UserContext()
	resp := dto.HealthResponse{Status: "ok", Cache: "disabled"}

	count, err := h.bank.Count(ctx)
	if err != nil {
		logger.Get().Warn("Health check: question bank unavailable", zap.Error(err))
		resp.Status = "degraded"
	}
	resp.Questions = count

	if h.cache != nil {
		if err := h.cache.Ping(ctx); err != nil {
			logger.Get().Warn("Health check: cache ping failed", zap.Error(err))
			resp.Cache = "unavailable"
			resp.Status = "degraded"
		} else {
			resp.Cache = "ok"
		}
	}
	return c.JSON(resp)
}
