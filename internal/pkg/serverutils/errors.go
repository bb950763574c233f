// FILE: internal/pkg/serverutils/errors.go
package serverutils

import "github.com/gofiber/fiber/v2"

// APIError is a user-facing failure with a safe message. Anything else that
// escapes a handler is treated as an infrastructure error and hidden behind
// a generic message by the error middleware.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

func NewAPIError(statusCode int, message string) *APIError {
	return &APIError{StatusCode: statusCode, Message: message}
}

func NewBadRequest(message string) *APIError {
	return NewAPIError(fiber.StatusBadRequest, message)
}

func NewUnauthorized(message string) *APIError {
	return NewAPIError(fiber.StatusUnauthorized, message)
}

func NewNotFound(message string) *APIError {
	return NewAPIError(fiber.StatusNotFound, message)
}

func NewConflict(message string) *APIError {
	return NewAPIError(fiber.StatusConflict, message)
}

func NewTooManyRequests(message string) *APIError {
	return NewAPIError(fiber.StatusTooManyRequests, message)
}
