package middleware

import (
	"quiz-dump/internal/logger"
	"quiz-dump/internal/util"
	"quiz-dump/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	SessionHeader = "X-Session-ID"
	SessionIDKey  = "sessionID" // Key for storing the session id in fiber.Ctx locals
)

// Session attaches an anonymous session id to the request. A missing or
// malformed X-Session-ID gets a fresh ULID; the id in use is echoed in the
// response header.
func Session() fiber.Handler {
	validator := validation.NewValidator()
	return func(c *fiber.Ctx) error {
		sessionID := c.Get(SessionHeader)
		if errs := validator.ValidateSessionID(sessionID); len(errs) > 0 {
			if sessionID != "" {
				logger.Get().Debug("Replacing malformed session id", zap.Error(errs))
			}
			sessionID = util.NewULID()
		}
		c.Locals(SessionIDKey, sessionID)
		c.Set(SessionHeader, sessionID)
		return c.Next()
	}
}

// SessionID returns the id stored by Session, or "" outside it.
func SessionID(c *fiber.Ctx) string {
	id, _ := c.Locals(SessionIDKey).(string)
	return id
}
