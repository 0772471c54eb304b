package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"storefront/internal/http/middleware"
	"storefront/internal/model"
	"storefront/internal/session"
)

// withSession runs fn with the caller's session; routes behind Authenticate always have one.
func withSession(fn func(c *fiber.Ctx, s *session.Session) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := middleware.SessionFrom(c)
		if s == nil {
			return fiber.ErrUnauthorized
		}
		return fn(c, s)
	}
}

// HomeScreen renders categories and the books matching filter, sort and category.
//
// @Summary   Home screen
// @Tags      screens
// @Produce   json
// @Security  BearerAuth
// @Param     filter      query string false "all|new|popular|bestseller"
// @Param     sort        query string false "newest|price_asc|price_desc|rating|title"
// @Param     category_id query string false "Category ID"
// @Param     refresh     query bool   false "Re-fetch even if the query did not change"
// @Success   200 {object} viewmodel.HomeScreen
// @Failure   400 {object} errorPayload
// @Failure   401 {object} errorPayload
// @Router    /v1/screens/home [get]
func HomeScreen() fiber.Handler {
	return withSession(func(c *fiber.Ctx, s *session.Session) error {
		refresh := false
		if v := c.Query("refresh"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid refresh")
			}
			refresh = b
		}
		q := model.BookQuery{
			Filter:     model.BookFilter(c.Query("filter")),
			Sort:       model.BookSort(c.Query("sort")),
			CategoryID: c.Query("category_id"),
		}
		screen, err := s.Home.Apply(c.UserContext(), q, refresh)
		return renderScreen(c, screen, err)
	})
}

// SearchScreen runs a free-text search. An empty q yields an empty result.
//
// @Summary   Search screen
// @Tags      screens
// @Produce   json
// @Security  BearerAuth
// @Param     q query string false "Search text"
// @Success   200 {object} viewmodel.SearchScreen
// @Failure   401 {object} errorPayload
// @Router    /v1/screens/search [get]
func SearchScreen() fiber.Handler {
	return withSession(func(c *fiber.Ctx, s *session.Session) error {
		screen, err := s.Search.Run(c.UserContext(), c.Query("q"))
		return renderScreen(c, screen, err)
	})
}

// BookScreen renders one book with its favorite and in-cart flags.
//
// @Summary   Book detail screen
// @Tags      screens
// @Produce   json
// @Security  BearerAuth
// @Param     id path string true "Book ID"
// @Success   200 {object} viewmodel.BookDetailScreen
// @Failure   401 {object} errorPayload
// @Router    /v1/screens/books/{id} [get]
func BookScreen() fiber.Handler {
	return withSession(func(c *fiber.Ctx, s *session.Session) error {
		screen, err := s.BookDetail.Load(c.UserContext(), c.Params("id"))
		return renderScreen(c, screen, err)
	})
}

// AuthorsScreen lists every author.
//
// @Summary   Authors screen
// @Tags      screens
// @Produce   json
// @Security  BearerAuth
// @Success   200 {object} viewmodel.State[[]model.AuthorResponse]
// @Failure   401 {object} errorPayload
// @Router    /v1/screens/authors [get]
func AuthorsScreen() fiber.Handler {
	return withSession(func(c *fiber.Ctx, s *session.Session) error {
		st, err := s.AuthorList.Load(c.UserContext())
		return renderScreen(c, st, err)
	})
}

// AuthorScreen renders an author, their books and whether the user follows them.
//
// @Summary   Author detail screen
// @Tags      screens
// @Produce   json
// @Security  BearerAuth
// @Param     id path string true "Author ID"
// @Success   200 {object} viewmodel.AuthorDetailScreen
// @Failure   401 {object} errorPayload
// @Router    /v1/screens/authors/{id} [get]
func AuthorScreen() fiber.Handler {
	return withSession(func(c *fiber.Ctx, s *session.Session) error {
		screen, err := s.AuthorDetail.Load(c.UserContext(), c.Params("id"))
		return renderScreen(c, screen, err)
	})
}

// CartScreen renders the cart.
//
// @Summary   Cart screen
// @Tags      screens
// @Produce   json
// @Security  BearerAuth
// @Success   200 {object} viewmodel.State[model.CartResponse]
// @Failure   401 {object} errorPayload
// @Router    /v1/screens/cart [get]
func CartScreen() fiber.Handler {
	return withSession(func(c *fiber.Ctx, s *session.Session) error {
		st, err := s.Cart.Load(c.UserContext())
		return renderScreen(c, st, err)
	})
}

// FavoritesScreen lists the user's favorite books.
//
// @Summary   Favorites screen
// @Tags      screens
// @Produce   json
// @Security  BearerAuth
// @Success   200 {object} viewmodel.State[[]model.FavoriteResponse]
// @Router    /v1/screens/favorites [get]
func FavoritesScreen() fiber.Handler {
	return withSession(func(c *fiber.Ctx, s *session.Session) error {
		st, err := s.Favorites.Load(c.UserContext())
		return renderScreen(c, st, err)
	})
}

// FollowingScreen lists followed authors.
//
// @Summary   Following screen
// @Tags      screens
// @Produce   json
// @Security  BearerAuth
// @Success   200 {object} viewmodel.State[[]model.FollowResponse]
// @Router    /v1/screens/following [get]
func FollowingScreen() fiber.Handler {
	return withSession(func(c *fiber.Ctx, s *session.Session) error {
		st, err := s.Following.Load(c.UserContext())
		return renderScreen(c, st, err)
	})
}

// OrdersScreen lists past orders.
//
// @Summary   Orders screen
// @Tags      screens
// @Produce   json
// @Security  BearerAuth
// @Success   200 {object} viewmodel.State[[]model.OrderResponse]
// @Router    /v1/screens/orders [get]
func OrdersScreen() fiber.Handler {
	return withSession(func(c *fiber.Ctx, s *session.Session) error {
		st, err := s.Orders.Load(c.UserContext())
		return renderScreen(c, st, err)
	})
}

// OrderScreen renders one order.
//
// @Summary   Order detail screen
// @Tags      screens
// @Produce   json
// @Security  BearerAuth
// @Param     id path string true "Order ID"
// @Success   200 {object} viewmodel.State[model.OrderResponse]
// @Router    /v1/screens/orders/{id} [get]
func OrderScreen() fiber.Handler {
	return withSession(func(c *fiber.Ctx, s *session.Session) error {
		st, err := s.Orders.Detail(c.UserContext(), c.Params("id"))
		return renderScreen(c, st, err)
	})
}

// ProfileScreen renders the signed-in user.
//
// @Summary   Profile screen
// @Tags      screens
// @Produce   json
// @Security  BearerAuth
// @Success   200 {object} viewmodel.State[model.UserResponse]
// @Router    /v1/screens/profile [get]
func ProfileScreen() fiber.Handler {
	return withSession(func(c *fiber.Ctx, s *session.Session) error {
		st, err := s.Profile.Load(c.UserContext())
		return renderScreen(c, st, err)
	})
}
