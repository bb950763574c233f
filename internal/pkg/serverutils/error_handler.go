// FILE: internal/pkg/serverutils/error_handler.go
package serverutils

import (
	"errors"

	"roadmap-voting-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

const genericErrorMessage = "An error occurred. Please try again."

// ErrorHandlerMiddleware converts errors returned by handlers into the
// uniform envelope. Typed APIErrors pass their message through; everything
// else is logged with detail and surfaced as a generic 500.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return ctx.Status(apiErr.StatusCode).JSON(ErrorResponse(apiErr.Message))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		if log != nil {
			log.Error("http", "Unhandled request error", map[string]interface{}{
				"error":  err.Error(),
				"path":   ctx.Path(),
				"method": ctx.Method(),
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(genericErrorMessage))
	}
}
