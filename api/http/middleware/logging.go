package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/artem13815/skillpath/pkg/logging"
)

// RequestIDKey is the Locals key holding the request id.
const RequestIDKey = "requestId"

// RequestID assigns every request a uuid, reusing an incoming X-Request-ID.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		Generator:  uuid.NewString,
		ContextKey: RequestIDKey,
	})
}

// RequestIDFrom returns the id set by RequestID, or "" outside a request.
func RequestIDFrom(c *fiber.Ctx) string {
	id, _ := c.Locals(RequestIDKey).(string)
	return id
}

// AccessLog writes one line per request. Errors from the chain are rendered
// here so the logged status matches what the client receives.
func AccessLog(log logging.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()
		if chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		status := c.Response().StatusCode()
		args := []any{
			"request_id", RequestIDFrom(c),
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		switch {
		case status >= fiber.StatusInternalServerError:
			log.Error(c.Context(), "request", args...)
		case status >= fiber.StatusBadRequest:
			log.Warn(c.Context(), "request", args...)
		default:
			log.Info(c.Context(), "request", args...)
		}
		return nil
	}
}
