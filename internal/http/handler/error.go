package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"docstyle/internal/http/middleware"
	"docstyle/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response. message must be safe
// to show to clients.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	})
}

// writeServiceError maps a service failure onto the HTTP envelope. Only the
// client-facing message of a *service.Error is rendered.
func writeServiceError(c *fiber.Ctx, err error) error {
	var se *service.Error
	if !errors.As(err, &se) {
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}

	switch se.Kind {
	case service.KindValidation:
		return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", se.Message)
	case service.KindConfiguration:
		return writeError(c, fiber.StatusInternalServerError, "CONFIGURATION_ERROR", se.Message)
	case service.KindQuota:
		return writeError(c, fiber.StatusTooManyRequests, "QUOTA_EXCEEDED", se.Message)
	case service.KindParse:
		return writeError(c, fiber.StatusInternalServerError, "PARSE_ERROR", se.Message)
	case service.KindNotFound:
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", se.Message)
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", se.Message)
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "request body too large")
		default:
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
	}
}
