package viewmodel

import (
	"context"
	"strings"

	"storefront/internal/model"
	"storefront/internal/repository"
)

// Auth signs users in and up. It keeps no per-user state.
type Auth struct {
	users repository.UserRepository
}

func NewAuth(users repository.UserRepository) *Auth {
	return &Auth{users: users}
}

// Login validates the form and signs in. Rejected credentials are reported in the
// result with a nil error; only transport-level failures return an error.
func (a *Auth) Login(ctx context.Context, req model.LoginRequest) (model.ActionResult, *model.AuthResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	if msg := validationMessage(req); msg != "" {
		return model.ActionResult{Message: msg}, nil, ErrInvalidQuery
	}
	res, err := a.users.Login(ctx, req)
	if err != nil {
		return signInRejected(err, "Login failed")
	}
	return model.ActionResult{Success: true, Message: "Logged in"}, res, nil
}

func (a *Auth) Register(ctx context.Context, req model.RegisterRequest) (model.ActionResult, *model.AuthResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if msg := validationMessage(req); msg != "" {
		return model.ActionResult{Message: msg}, nil, ErrInvalidQuery
	}
	res, err := a.users.Register(ctx, req)
	if err != nil {
		return signInRejected(err, "Registration failed")
	}
	return model.ActionResult{Success: true, Message: "Account created"}, res, nil
}
