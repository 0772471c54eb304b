package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"storefront/internal/http/middleware"
	"storefront/internal/service"
	"storefront/internal/viewmodel"
)

// Deps are the collaborators the routes are served from.
type Deps struct {
	DB       *sql.DB
	Sessions SessionStore
	Auth     *viewmodel.Auth
	Covers   service.CoverService
}

// RegisterRoutes attaches the HTTP routes to app. Ops endpoints (/metrics,
// /swagger) are mounted by the caller.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())

	v1 := app.Group("/v1")

	v1.Post("/auth/login", Login(d.Auth, d.Sessions))
	v1.Post("/auth/register", Register(d.Auth, d.Sessions))
	v1.Get("/covers/:book_id", Cover(d.Covers))

	// Public routes above are matched before this group's middleware, which
	// guards every /v1 route registered after it.
	authed := v1.Group("", middleware.Authenticate(d.Sessions))

	authed.Post("/auth/logout", Logout(d.Sessions))

	authed.Get("/screens/home", HomeScreen())
	authed.Get("/screens/search", SearchScreen())
	authed.Get("/screens/books/:id", BookScreen())
	authed.Get("/screens/authors", AuthorsScreen())
	authed.Get("/screens/authors/:id", AuthorScreen())
	authed.Get("/screens/cart", CartScreen())
	authed.Get("/screens/favorites", FavoritesScreen())
	authed.Get("/screens/following", FollowingScreen())
	authed.Get("/screens/orders", OrdersScreen())
	authed.Get("/screens/orders/:id", OrderScreen())
	authed.Get("/screens/profile", ProfileScreen())

	authed.Post("/books/:id/favorite", SetFavorite(true))
	authed.Delete("/books/:id/favorite", SetFavorite(false))
	authed.Post("/cart/items", AddToCart())
	authed.Delete("/cart/items/:book_id", RemoveFromCart())
	authed.Post("/cart/checkout", Checkout())
	authed.Post("/authors/:id/follow", SetFollow(true))
	authed.Delete("/authors/:id/follow", SetFollow(false))
	authed.Put("/profile", UpdateProfile())
}
