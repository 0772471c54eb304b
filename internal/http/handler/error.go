package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"storefront/internal/client"
	"storefront/internal/http/middleware"
	"storefront/internal/model"
	"storefront/internal/viewmodel"
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

func requestIDFromCtx(c *fiber.Ctx) string {
	if s, ok := c.Locals(middleware.RequestIDLocalKey).(string); ok {
		return s
	}
	return ""
}

// writeError writes a standardized JSON error. message must be safe to show;
// internal error text never goes here.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	})
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
		case fiber.StatusUnauthorized:
			return writeError(c, status, "UNAUTHORIZED", "authentication required")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		default:
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
	}
}

// renderScreen writes a screen. Load failures already live inside the screen's
// state, so only a bad request or an upstream-rejected token change the status.
func renderScreen(c *fiber.Ctx, screen any, err error) error {
	switch {
	case errors.Is(err, viewmodel.ErrInvalidQuery):
		return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid query")
	case errors.Is(err, client.ErrUnauthorized):
		return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "session expired")
	}
	return c.JSON(screen)
}

// renderAction writes the outcome of a user action. A failed action is still a
// 200 with success=false; validation failures are 400 with the validation text.
func renderAction(c *fiber.Ctx, res model.ActionResult, body any, err error) error {
	switch {
	case errors.Is(err, viewmodel.ErrInvalidQuery):
		msg := res.Message
		if msg == "" {
			msg = "invalid input"
		}
		return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", msg)
	case errors.Is(err, client.ErrUnauthorized):
		return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "session expired")
	}
	if body == nil {
		return c.JSON(res)
	}
	return c.JSON(body)
}
