package handler

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"storefront/internal/http/middleware"
	"storefront/internal/model"
	"storefront/internal/session"
	"storefront/internal/viewmodel"
)

// SessionStore opens, resolves and closes signed-in sessions.
type SessionStore interface {
	middleware.Sessions
	Open(ctx context.Context, auth model.AuthResponse) (*session.Session, error)
	Close(ctx context.Context, token string) error
}

// authResponse is the body of login and register.
type authResponse struct {
	model.ActionResult
	Token string              `json:"token,omitempty"`
	User  *model.UserResponse `json:"user,omitempty"`
}

// Login signs in against the upstream and opens a session for the returned token.
//
// @Summary  Sign in
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body model.LoginRequest true "Credentials"
// @Success  200 {object} authResponse
// @Failure  400 {object} errorPayload
// @Router   /v1/auth/login [post]
func Login(auth *viewmodel.Auth, sessions SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid body")
		}
		res, authRes, err := auth.Login(c.UserContext(), req)
		return openSession(c, sessions, res, authRes, err, "Login failed")
	}
}

// Register creates an account and opens a session for it.
//
// @Summary  Create an account
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body model.RegisterRequest true "New account"
// @Success  200 {object} authResponse
// @Failure  400 {object} errorPayload
// @Router   /v1/auth/register [post]
func Register(auth *viewmodel.Auth, sessions SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.RegisterRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid body")
		}
		res, authRes, err := auth.Register(c.UserContext(), req)
		return openSession(c, sessions, res, authRes, err, "Registration failed")
	}
}

// openSession opens a session for a successful sign-in. An upstream answer
// without a usable token fails the action.
func openSession(c *fiber.Ctx, sessions SessionStore, res model.ActionResult, authRes *model.AuthResponse, err error, failMsg string) error {
	if err != nil || authRes == nil {
		return renderAction(c, res, nil, err)
	}
	if _, err := sessions.Open(c.UserContext(), *authRes); err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return c.JSON(model.ActionResult{Message: failMsg})
		}
		return err
	}
	user := authRes.User
	return c.JSON(authResponse{ActionResult: res, Token: authRes.Token, User: &user})
}

// Logout ends the caller's session.
//
// @Summary   Sign out
// @Tags      auth
// @Produce   json
// @Security  BearerAuth
// @Success   200 {object} model.ActionResult
// @Failure   401 {object} errorPayload
// @Router    /v1/auth/logout [post]
func Logout(sessions SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := sessions.Close(c.UserContext(), middleware.BearerToken(c)); err != nil {
			return err
		}
		return c.JSON(model.ActionResult{Success: true, Message: "Logged out"})
	}
}
