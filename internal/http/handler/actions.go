package handler

import (
	"github.com/gofiber/fiber/v2"

	"storefront/internal/model"
	"storefront/internal/session"
)

// SetFavorite adds (favorite=true) or removes the book from favorites.
//
// @Summary   Favorite or unfavorite a book
// @Tags      actions
// @Produce   json
// @Security  BearerAuth
// @Param     id path string true "Book ID"
// @Success   200 {object} model.ActionResult
// @Router    /v1/books/{id}/favorite [post]
// @Router    /v1/books/{id}/favorite [delete]
func SetFavorite(favorite bool) fiber.Handler {
	return withSession(func(c *fiber.Ctx, s *session.Session) error {
		res, err := s.BookDetail.SetFavorite(c.UserContext(), c.Params("id"), favorite)
		return renderAction(c, res, nil, err)
	})
}

// AddToCart puts a book in the cart. A missing quantity means one copy.
//
// @Summary   Add a book to the cart
// @Tags      actions
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body body model.AddToCartRequest true "Book and quantity"
// @Success   200 {object} model.ActionResult
// @Failure   400 {object} errorPayload
// @Router    /v1/cart/items [post]
func AddToCart() fiber.Handler {
	return withSession(func(c *fiber.Ctx, s *session.Session) error {
		var req model.AddToCartRequest
		if err := c.BodyParser(&req); err != nil || req.BookID == "" {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "book_id is required")
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}
		res, err := s.BookDetail.AddToCart(c.UserContext(), req.BookID, req.Quantity)
		return renderAction(c, res, nil, err)
	})
}

// RemoveFromCart drops a book from the cart.
//
// @Summary   Remove a book from the cart
// @Tags      actions
// @Produce   json
// @Security  BearerAuth
// @Param     book_id path string true "Book ID"
// @Success   200 {object} model.ActionResult
// @Router    /v1/cart/items/{book_id} [delete]
func RemoveFromCart() fiber.Handler {
	return withSession(func(c *fiber.Ctx, s *session.Session) error {
		res, err := s.Cart.Remove(c.UserContext(), c.Params("book_id"))
		return renderAction(c, res, nil, err)
	})
}

// checkoutResponse carries the placed order next to the action result.
type checkoutResponse struct {
	model.ActionResult
	Order *model.OrderResponse `json:"order,omitempty"`
}

// Checkout places an order for the cart contents.
//
// @Summary   Check out the cart
// @Tags      actions
// @Produce   json
// @Security  BearerAuth
// @Success   200 {object} checkoutResponse
// @Router    /v1/cart/checkout [post]
func Checkout() fiber.Handler {
	return withSession(func(c *fiber.Ctx, s *session.Session) error {
		res, order, err := s.Cart.Checkout(c.UserContext())
		return renderAction(c, res, checkoutResponse{ActionResult: res, Order: order}, err)
	})
}

// SetFollow follows (follow=true) or unfollows an author.
//
// @Summary   Follow or unfollow an author
// @Tags      actions
// @Produce   json
// @Security  BearerAuth
// @Param     id path string true "Author ID"
// @Success   200 {object} model.ActionResult
// @Router    /v1/authors/{id}/follow [post]
// @Router    /v1/authors/{id}/follow [delete]
func SetFollow(follow bool) fiber.Handler {
	return withSession(func(c *fiber.Ctx, s *session.Session) error {
		res, err := s.AuthorDetail.SetFollow(c.UserContext(), c.Params("id"), follow)
		return renderAction(c, res, nil, err)
	})
}

// UpdateProfile validates and saves the user's name and email.
//
// @Summary   Update profile
// @Tags      actions
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body body model.UpdateProfileRequest true "Profile"
// @Success   200 {object} model.ActionResult
// @Failure   400 {object} errorPayload
// @Router    /v1/profile [put]
func UpdateProfile() fiber.Handler {
	return withSession(func(c *fiber.Ctx, s *session.Session) error {
		var req model.UpdateProfileRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid body")
		}
		res, err := s.Profile.Update(c.UserContext(), req)
		return renderAction(c, res, nil, err)
	})
}
