package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"storefront/internal/client"
	"storefront/internal/service"
)

// Cover redirects to a presigned URL of the book's mirrored cover.
//
// @Summary  Book cover
// @Tags     covers
// @Param    book_id path string true "Book ID"
// @Success  302
// @Failure  404 {object} errorPayload
// @Router   /v1/covers/{book_id} [get]
func Cover(covers service.CoverService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		url, err := covers.URL(c.UserContext(), c.Params("book_id"))
		if err != nil {
			switch {
			case errors.Is(err, service.ErrIDRequired):
				return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "book id is required")
			case errors.Is(err, service.ErrNoCover), errors.Is(err, client.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "cover not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Redirect(url, fiber.StatusFound)
	}
}
