package client

import (
	"context"
	"net/http"

	"storefront/internal/model"
)

func (c *Client) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error) {
	var out model.AuthResponse
	if err := c.do(ctx, http.MethodPost, "auth.login", "/auth/login", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error) {
	var out model.AuthResponse
	if err := c.do(ctx, http.MethodPost, "auth.register", "/auth/register", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetProfile(ctx context.Context) (*model.UserResponse, error) {
	var out model.UserResponse
	if err := c.get(ctx, "users.me", "/users/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProfile(ctx context.Context, req model.UpdateProfileRequest) (*model.UserResponse, error) {
	var out model.UserResponse
	if err := c.do(ctx, http.MethodPut, "users.update", "/users/me", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
