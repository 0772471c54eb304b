// Package repository declares the data access contracts of the storefront.
//
// Entity repositories wrap upstream endpoints (implemented in remote); cache
// stores persist catalog rows and credentials locally (implemented in postgres).
package repository

import (
	"context"

	"storefront/internal/model"
)

// Fetched wraps a read result. Stale is set when the data came from the local
// cache because the upstream could not be reached.
type Fetched[T any] struct {
	Data  T
	Stale bool
}

type AuthorRepository interface {
	List(ctx context.Context) (Fetched[[]model.AuthorResponse], error)
	Get(ctx context.Context, id string) (Fetched[model.AuthorResponse], error)
}

type BookRepository interface {
	List(ctx context.Context, q model.BookQuery) (Fetched[[]model.BookResponse], error)
	Get(ctx context.Context, id string) (Fetched[model.BookResponse], error)
	Search(ctx context.Context, query string) (Fetched[[]model.BookResponse], error)
	ListByAuthor(ctx context.Context, authorID string) (Fetched[[]model.BookResponse], error)
}

type CategoryRepository interface {
	List(ctx context.Context) (Fetched[[]model.CategoryResponse], error)
}

type CartRepository interface {
	Get(ctx context.Context) (*model.CartResponse, error)
	Add(ctx context.Context, bookID string, quantity int) (*model.CartResponse, error)
	Remove(ctx context.Context, bookID string) error
}

type FavoriteRepository interface {
	List(ctx context.Context) ([]model.FavoriteResponse, error)
	Add(ctx context.Context, bookID string) error
	Remove(ctx context.Context, bookID string) error
}

type FollowRepository interface {
	List(ctx context.Context) ([]model.FollowResponse, error)
	Follow(ctx context.Context, authorID string) error
	Unfollow(ctx context.Context, authorID string) error
}

type OrderRepository interface {
	List(ctx context.Context) ([]model.OrderResponse, error)
	Get(ctx context.Context, id string) (*model.OrderResponse, error)
	// Place checks out the current cart and returns the created order.
	Place(ctx context.Context) (*model.OrderResponse, error)
}

type UserRepository interface {
	Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error)
	Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error)
	Profile(ctx context.Context) (*model.UserResponse, error)
	UpdateProfile(ctx context.Context, req model.UpdateProfileRequest) (*model.UserResponse, error)
}
