package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/client"
	"storefront/internal/http/middleware"
	"storefront/internal/logging"
	"storefront/internal/model"
	"storefront/internal/repository"
	repoMocks "storefront/internal/repository/mocks"
	"storefront/internal/service"
	serviceMocks "storefront/internal/service/mocks"
	"storefront/internal/session"
	"storefront/internal/viewmodel"
)

const testToken = "tok-123"

type fixture struct {
	app        *fiber.App
	books      *repoMocks.MockBookRepository
	authors    *repoMocks.MockAuthorRepository
	categories *repoMocks.MockCategoryRepository
	cart       *repoMocks.MockCartRepository
	favorites  *repoMocks.MockFavoriteRepository
	follows    *repoMocks.MockFollowRepository
	orders     *repoMocks.MockOrderRepository
	users      *repoMocks.MockUserRepository
	creds      *repoMocks.MockCredentialStore
	covers     *serviceMocks.MockCoverService
	sessions   *session.Registry
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		books:      new(repoMocks.MockBookRepository),
		authors:    new(repoMocks.MockAuthorRepository),
		categories: new(repoMocks.MockCategoryRepository),
		cart:       new(repoMocks.MockCartRepository),
		favorites:  new(repoMocks.MockFavoriteRepository),
		follows:    new(repoMocks.MockFollowRepository),
		orders:     new(repoMocks.MockOrderRepository),
		users:      new(repoMocks.MockUserRepository),
		creds:      new(repoMocks.MockCredentialStore),
		covers:     new(serviceMocks.MockCoverService),
	}
	f.creds.On("Save", mock.Anything, mock.Anything).Return(nil).Maybe()
	f.creds.On("FindByToken", mock.Anything, mock.Anything).Return(nil, sql.ErrNoRows).Maybe()

	f.sessions = session.NewRegistry(session.Repositories{
		Books:      f.books,
		Authors:    f.authors,
		Categories: f.categories,
		Cart:       f.cart,
		Favorites:  f.favorites,
		Follows:    f.follows,
		Orders:     f.orders,
		Users:      f.users,
	}, f.creds, time.Hour, logging.Discard())

	_, err := f.sessions.Open(context.Background(), model.AuthResponse{
		Token: testToken,
		User:  model.UserResponse{ID: "u1", Name: "Ann", Email: "ann@example.com"},
	})
	require.NoError(t, err)

	f.app = fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	f.app.Use(middleware.RequestID())
	RegisterRoutes(f.app, Deps{
		Sessions: f.sessions,
		Auth:     viewmodel.NewAuth(f.users),
		Covers:   f.covers,
	})
	return f
}

// do sends a request with the test session's bearer token unless token is "-".
func (f *fixture) do(t *testing.T, method, path string, body any, token ...string) (*http.Response, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	tok := testToken
	if len(token) > 0 {
		tok = token[0]
	}
	if tok != "-" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	resp, err := f.app.Test(req)
	require.NoError(t, err)

	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp, out
}

func errorCode(body map[string]any) string {
	e, _ := body["error"].(map[string]any)
	code, _ := e["code"].(string)
	return code
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "SERVICE_UNAVAILABLE", body.Error.Code)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestScreens_RequireSession(t *testing.T) {
	f := newFixture(t)

	for _, tok := range []string{"-", "unknown"} {
		resp, body := f.do(t, http.MethodGet, "/v1/screens/home", nil, tok)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "UNAUTHORIZED", errorCode(body))
		assert.NotEmpty(t, body["request_id"])
	}
}

func TestHomeScreen(t *testing.T) {
	f := newFixture(t)
	f.categories.On("List", mock.Anything).Return(repository.Fetched[[]model.CategoryResponse]{
		Data: []model.CategoryResponse{{ID: "c1", Name: "Fantasy"}},
	}, nil)
	f.books.On("List", mock.Anything, model.BookQuery{Filter: model.FilterPopular, Sort: model.SortRating, CategoryID: "c1"}).
		Return(repository.Fetched[[]model.BookResponse]{Data: []model.BookResponse{{ID: "b1", Title: "Dune"}}, Stale: true}, nil).Once()

	t.Run("renders books", func(t *testing.T) {
		resp, body := f.do(t, http.MethodGet, "/v1/screens/home?filter=popular&sort=rating&category_id=c1", nil)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		books := body["books"].(map[string]any)
		assert.Equal(t, true, books["stale"])
		assert.Len(t, books["data"], 1)
		assert.Len(t, body["categories"].(map[string]any)["data"], 1)
	})

	t.Run("same query is served from the holder", func(t *testing.T) {
		resp, _ := f.do(t, http.MethodGet, "/v1/screens/home?filter=popular&sort=rating&category_id=c1", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		f.books.AssertNumberOfCalls(t, "List", 1)
	})

	t.Run("invalid filter", func(t *testing.T) {
		resp, body := f.do(t, http.MethodGet, "/v1/screens/home?filter=cheapest", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "BAD_REQUEST", errorCode(body))
	})

	t.Run("invalid refresh", func(t *testing.T) {
		resp, _ := f.do(t, http.MethodGet, "/v1/screens/home?refresh=maybe", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestBookScreen_LoadFailureIsState(t *testing.T) {
	f := newFixture(t)
	f.books.On("Get", mock.Anything, "b1").Return(repository.Fetched[model.BookResponse]{}, &client.APIError{Status: 503})
	f.favorites.On("List", mock.Anything).Return([]model.FavoriteResponse{}, nil)
	f.cart.On("Get", mock.Anything).Return(&model.CartResponse{}, nil)

	resp, body := f.do(t, http.MethodGet, "/v1/screens/books/b1", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Failed to load book", body["book"].(map[string]any)["error"])
}

func TestScreen_UpstreamRejectsToken(t *testing.T) {
	f := newFixture(t)
	f.orders.On("List", mock.Anything).Return(nil, &client.APIError{Status: 401})

	resp, body := f.do(t, http.MethodGet, "/v1/screens/orders", nil)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", errorCode(body))
}

func TestSearchScreen_BlankQuery(t *testing.T) {
	f := newFixture(t)

	resp, body := f.do(t, http.MethodGet, "/v1/screens/search?q=", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body["results"].(map[string]any)["data"])
	f.books.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestLogin(t *testing.T) {
	f := newFixture(t)

	t.Run("validation", func(t *testing.T) {
		resp, body := f.do(t, http.MethodPost, "/v1/auth/login", model.LoginRequest{Email: "ann", Password: "x"}, "-")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Email is invalid", body["error"].(map[string]any)["message"])
	})

	t.Run("rejected", func(t *testing.T) {
		req := model.LoginRequest{Email: "ann@example.com", Password: "wrong"}
		f.users.On("Login", mock.Anything, req).Return(nil, &client.APIError{Status: 401, Message: "Invalid email or password"}).Once()

		resp, body := f.do(t, http.MethodPost, "/v1/auth/login", req, "-")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Invalid email or password", body["message"])
	})

	t.Run("success opens a session", func(t *testing.T) {
		req := model.LoginRequest{Email: "ann@example.com", Password: "secret1"}
		f.users.On("Login", mock.Anything, req).Return(&model.AuthResponse{
			Token: "fresh-token",
			User:  model.UserResponse{ID: "u1", Name: "Ann"},
		}, nil).Once()

		resp, body := f.do(t, http.MethodPost, "/v1/auth/login", req, "-")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "fresh-token", body["token"])

		_, err := f.sessions.Get(context.Background(), "fresh-token")
		assert.NoError(t, err)
	})

	t.Run("upstream answers without a token", func(t *testing.T) {
		req := model.LoginRequest{Email: "ann@example.com", Password: "tokenless"}
		f.users.On("Login", mock.Anything, req).Return(&model.AuthResponse{User: model.UserResponse{ID: "u1"}}, nil).Once()

		resp, body := f.do(t, http.MethodPost, "/v1/auth/login", req, "-")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Login failed", body["message"])
		assert.Nil(t, body["token"])
	})
}

func TestRegister_Validation(t *testing.T) {
	f := newFixture(t)

	resp, body := f.do(t, http.MethodPost, "/v1/auth/register", model.RegisterRequest{Name: " ", Email: "a@b.co", Password: "secret1"}, "-")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Name is required", body["error"].(map[string]any)["message"])
}

func TestLogout(t *testing.T) {
	f := newFixture(t)
	f.creds.On("DeleteByToken", mock.Anything, testToken).Return(nil).Once()

	resp, body := f.do(t, http.MethodPost, "/v1/auth/logout", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	resp, _ = f.do(t, http.MethodGet, "/v1/screens/profile", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCartActions(t *testing.T) {
	f := newFixture(t)

	t.Run("add requires a book", func(t *testing.T) {
		resp, _ := f.do(t, http.MethodPost, "/v1/cart/items", model.AddToCartRequest{})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("add defaults to one copy", func(t *testing.T) {
		f.cart.On("Add", mock.Anything, "b1", 1).Return(&model.CartResponse{}, nil).Once()

		resp, body := f.do(t, http.MethodPost, "/v1/cart/items", model.AddToCartRequest{BookID: "b1"})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Added to cart", body["message"])
	})

	t.Run("refused upstream", func(t *testing.T) {
		f.cart.On("Add", mock.Anything, "b2", 1).Return(nil, &client.APIError{Status: 409, Message: "Out of stock"}).Once()

		resp, body := f.do(t, http.MethodPost, "/v1/cart/items", model.AddToCartRequest{BookID: "b2"})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, map[string]any{"success": false, "message": "Out of stock"}, body)
	})

	t.Run("session rejected upstream", func(t *testing.T) {
		f.cart.On("Add", mock.Anything, "b3", 1).Return(nil, &client.APIError{Status: 401}).Once()

		resp, _ := f.do(t, http.MethodPost, "/v1/cart/items", model.AddToCartRequest{BookID: "b3"})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("negative quantity", func(t *testing.T) {
		resp, body := f.do(t, http.MethodPost, "/v1/cart/items", model.AddToCartRequest{BookID: "b1", Quantity: -2})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Quantity must be at least 1", body["error"].(map[string]any)["message"])
	})

	t.Run("checkout", func(t *testing.T) {
		f.cart.On("Get", mock.Anything).Return(&model.CartResponse{
			Items: []model.CartItemResponse{{BookID: "b1", Price: 9.5, Quantity: 2}},
		}, nil).Once()
		f.orders.On("Place", mock.Anything).Return(&model.OrderResponse{ID: "o1", Status: model.OrderPending}, nil).Once()

		resp, body := f.do(t, http.MethodPost, "/v1/cart/checkout", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "o1", body["order"].(map[string]any)["id"])
	})
}

func TestFavoriteAndFollowActions(t *testing.T) {
	f := newFixture(t)
	f.favorites.On("Remove", mock.Anything, "b1").Return(errors.New("boom")).Once()
	f.follows.On("Follow", mock.Anything, "a1").Return(nil).Once()

	resp, body := f.do(t, http.MethodDelete, "/v1/books/b1/favorite", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Failed to update favorites", body["message"])

	resp, body = f.do(t, http.MethodPost, "/v1/authors/a1/follow", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Following author", body["message"])
}

func TestUpdateProfile_Validation(t *testing.T) {
	f := newFixture(t)

	resp, body := f.do(t, http.MethodPut, "/v1/profile", model.UpdateProfileRequest{Name: "Ann", Email: "nope"})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Email is invalid", body["error"].(map[string]any)["message"])
	f.users.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything)
}

func TestCover(t *testing.T) {
	f := newFixture(t)
	f.covers.On("URL", mock.Anything, "b1").Return("https://minio.local/covers/b1.jpg?sig=1", nil).Once()
	f.covers.On("URL", mock.Anything, "b2").Return("", service.ErrNoCover).Once()
	f.covers.On("URL", mock.Anything, "b3").Return("", errors.New("minio down")).Once()

	resp, _ := f.do(t, http.MethodGet, "/v1/covers/b1", nil, "-")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "https://minio.local/covers/b1.jpg?sig=1", resp.Header.Get("Location"))

	resp, body := f.do(t, http.MethodGet, "/v1/covers/b2", nil, "-")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errorCode(body))

	resp, body = f.do(t, http.MethodGet, "/v1/covers/b3", nil, "-")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "INTERNAL_ERROR", errorCode(body))
}

func TestRouting(t *testing.T) {
	f := newFixture(t)

	t.Run("not found route", func(t *testing.T) {
		resp, body := f.do(t, http.MethodGet, "/non-existent", nil, "-")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", errorCode(body))
	})

	t.Run("method not allowed", func(t *testing.T) {
		resp, body := f.do(t, http.MethodPost, "/health", nil, "-")
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Equal(t, "METHOD_NOT_ALLOWED", errorCode(body))
	})
}
