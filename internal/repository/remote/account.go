package remote

import (
	"context"
	"errors"
	"strings"

	"storefront/internal/client"
	"storefront/internal/model"
	"storefront/internal/repository"
)

// Account is the subset of the upstream client used by the per-user repositories.
type Account interface {
	Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error)
	Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error)
	GetProfile(ctx context.Context) (*model.UserResponse, error)
	UpdateProfile(ctx context.Context, req model.UpdateProfileRequest) (*model.UserResponse, error)

	GetCart(ctx context.Context) (*model.CartResponse, error)
	AddToCart(ctx context.Context, req model.AddToCartRequest) (*model.CartResponse, error)
	RemoveFromCart(ctx context.Context, bookID string) error

	ListFavorites(ctx context.Context) ([]model.FavoriteResponse, error)
	AddFavorite(ctx context.Context, bookID string) error
	RemoveFavorite(ctx context.Context, bookID string) error

	ListFollows(ctx context.Context) ([]model.FollowResponse, error)
	Follow(ctx context.Context, authorID string) error
	Unfollow(ctx context.Context, authorID string) error

	ListOrders(ctx context.Context) ([]model.OrderResponse, error)
	GetOrder(ctx context.Context, id string) (*model.OrderResponse, error)
	PlaceOrder(ctx context.Context) (*model.OrderResponse, error)
}

var _ Account = (*client.Client)(nil)

// ErrInvalidQuantity is returned when adding fewer than one copy to the cart.
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

type UserRemote struct{ api Account }

func NewUserRemote(api Account) *UserRemote { return &UserRemote{api: api} }

var _ repository.UserRepository = (*UserRemote)(nil)

// Login normalizes the email before sending it upstream.
func (r *UserRemote) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	return r.api.Login(ctx, req)
}

func (r *UserRemote) Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	return r.api.Register(ctx, req)
}

func (r *UserRemote) Profile(ctx context.Context) (*model.UserResponse, error) {
	return r.api.GetProfile(ctx)
}

func (r *UserRemote) UpdateProfile(ctx context.Context, req model.UpdateProfileRequest) (*model.UserResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	return r.api.UpdateProfile(ctx, req)
}

type CartRemote struct{ api Account }

func NewCartRemote(api Account) *CartRemote { return &CartRemote{api: api} }

var _ repository.CartRepository = (*CartRemote)(nil)

// Get returns the cart with its total recomputed from the lines when the upstream left it empty.
func (r *CartRemote) Get(ctx context.Context) (*model.CartResponse, error) {
	cart, err := r.api.GetCart(ctx)
	if err != nil {
		return nil, err
	}
	if cart.Total == 0 && len(cart.Items) > 0 {
		cart.Total = cart.ComputedTotal()
	}
	return cart, nil
}

func (r *CartRemote) Add(ctx context.Context, bookID string, quantity int) (*model.CartResponse, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	return r.api.AddToCart(ctx, model.AddToCartRequest{BookID: bookID, Quantity: quantity})
}

func (r *CartRemote) Remove(ctx context.Context, bookID string) error {
	return r.api.RemoveFromCart(ctx, bookID)
}

type FavoriteRemote struct{ api Account }

func NewFavoriteRemote(api Account) *FavoriteRemote { return &FavoriteRemote{api: api} }

var _ repository.FavoriteRepository = (*FavoriteRemote)(nil)

func (r *FavoriteRemote) List(ctx context.Context) ([]model.FavoriteResponse, error) {
	return r.api.ListFavorites(ctx)
}

func (r *FavoriteRemote) Add(ctx context.Context, bookID string) error {
	return r.api.AddFavorite(ctx, bookID)
}

func (r *FavoriteRemote) Remove(ctx context.Context, bookID string) error {
	return r.api.RemoveFavorite(ctx, bookID)
}

type FollowRemote struct{ api Account }

func NewFollowRemote(api Account) *FollowRemote { return &FollowRemote{api: api} }

var _ repository.FollowRepository = (*FollowRemote)(nil)

func (r *FollowRemote) List(ctx context.Context) ([]model.FollowResponse, error) {
	return r.api.ListFollows(ctx)
}

func (r *FollowRemote) Follow(ctx context.Context, authorID string) error {
	return r.api.Follow(ctx, authorID)
}

func (r *FollowRemote) Unfollow(ctx context.Context, authorID string) error {
	return r.api.Unfollow(ctx, authorID)
}

type OrderRemote struct{ api Account }

func NewOrderRemote(api Account) *OrderRemote { return &OrderRemote{api: api} }

var _ repository.OrderRepository = (*OrderRemote)(nil)

func (r *OrderRemote) List(ctx context.Context) ([]model.OrderResponse, error) {
	return r.api.ListOrders(ctx)
}

func (r *OrderRemote) Get(ctx context.Context, id string) (*model.OrderResponse, error) {
	return r.api.GetOrder(ctx, id)
}

func (r *OrderRemote) Place(ctx context.Context) (*model.OrderResponse, error) {
	return r.api.PlaceOrder(ctx)
}
