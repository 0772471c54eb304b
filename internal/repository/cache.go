package repository

import (
	"context"
	"time"

	"storefront/internal/model"
)

// AuthorCache persists author rows. FindByID returns sql.ErrNoRows when absent.
type AuthorCache interface {
	UpsertMany(ctx context.Context, authors []model.Author) error
	List(ctx context.Context) ([]model.Author, error)
	FindByID(ctx context.Context, id string) (*model.Author, error)
}

// BookCache persists book rows. List honours the category and sort of q;
// the upstream-only filters (popular, bestseller) are not reproducible offline.
type BookCache interface {
	UpsertMany(ctx context.Context, books []model.Book) error
	List(ctx context.Context, q model.BookQuery) ([]model.Book, error)
	FindByID(ctx context.Context, id string) (*model.Book, error)
	ListByAuthor(ctx context.Context, authorID string) ([]model.Book, error)
	Search(ctx context.Context, text string) ([]model.Book, error)
}

type CategoryCache interface {
	UpsertMany(ctx context.Context, categories []model.Category) error
	List(ctx context.Context) ([]model.Category, error)
}

// CredentialStore keeps the credentials of signed-in users.
type CredentialStore interface {
	Save(ctx context.Context, u model.User) error
	// FindByToken returns sql.ErrNoRows when the token is unknown.
	FindByToken(ctx context.Context, token string) (*model.User, error)
	DeleteByToken(ctx context.Context, token string) error
	// DeleteExpired removes credentials expired at now and reports how many.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
