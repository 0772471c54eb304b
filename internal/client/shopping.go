package client

import (
	"context"
	"net/http"
	"net/url"

	"storefront/internal/model"
)

func (c *Client) GetCart(ctx context.Context) (*model.CartResponse, error) {
	var out model.CartResponse
	if err := c.get(ctx, "cart.get", "/cart", nil, &out); err != nil {
		return nil, err
	}
	if out.Items == nil {
		out.Items = make([]model.CartItemResponse, 0)
	}
	return &out, nil
}

func (c *Client) AddToCart(ctx context.Context, req model.AddToCartRequest) (*model.CartResponse, error) {
	var out model.CartResponse
	if err := c.do(ctx, http.MethodPost, "cart.add", "/cart", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RemoveFromCart(ctx context.Context, bookID string) error {
	return c.do(ctx, http.MethodDelete, "cart.remove", "/cart/"+url.PathEscape(bookID), nil, nil, nil)
}

func (c *Client) ListFavorites(ctx context.Context) ([]model.FavoriteResponse, error) {
	out := make([]model.FavoriteResponse, 0)
	if err := c.get(ctx, "favorites.list", "/favorites", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddFavorite(ctx context.Context, bookID string) error {
	return c.do(ctx, http.MethodPost, "favorites.add", "/favorites", nil, model.FavoriteRequest{BookID: bookID}, nil)
}

func (c *Client) RemoveFavorite(ctx context.Context, bookID string) error {
	return c.do(ctx, http.MethodDelete, "favorites.remove", "/favorites/"+url.PathEscape(bookID), nil, nil, nil)
}

func (c *Client) ListFollows(ctx context.Context) ([]model.FollowResponse, error) {
	out := make([]model.FollowResponse, 0)
	if err := c.get(ctx, "follows.list", "/follows", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Follow(ctx context.Context, authorID string) error {
	return c.do(ctx, http.MethodPost, "follows.add", "/follows", nil, model.FollowRequest{AuthorID: authorID}, nil)
}

func (c *Client) Unfollow(ctx context.Context, authorID string) error {
	return c.do(ctx, http.MethodDelete, "follows.remove", "/follows/"+url.PathEscape(authorID), nil, nil, nil)
}

func (c *Client) ListOrders(ctx context.Context) ([]model.OrderResponse, error) {
	out := make([]model.OrderResponse, 0)
	if err := c.get(ctx, "orders.list", "/orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetOrder(ctx context.Context, id string) (*model.OrderResponse, error) {
	var out model.OrderResponse
	if err := c.get(ctx, "orders.get", "/orders/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PlaceOrder checks out the current cart.
func (c *Client) PlaceOrder(ctx context.Context) (*model.OrderResponse, error) {
	var out model.OrderResponse
	if err := c.do(ctx, http.MethodPost, "orders.create", "/orders", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
