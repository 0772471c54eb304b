package remote

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sirupsen/logrus"

	"storefront/internal/client"
	"storefront/internal/model"
	"storefront/internal/repository"
)

// Catalog is the subset of the upstream client used by the catalog repositories.
type Catalog interface {
	ListBooks(ctx context.Context, q model.BookQuery) ([]model.BookResponse, error)
	GetBook(ctx context.Context, id string) (*model.BookResponse, error)
	SearchBooks(ctx context.Context, query string) ([]model.BookResponse, error)
	ListAuthorBooks(ctx context.Context, authorID string) ([]model.BookResponse, error)
	ListAuthors(ctx context.Context) ([]model.AuthorResponse, error)
	GetAuthor(ctx context.Context, id string) (*model.AuthorResponse, error)
	ListCategories(ctx context.Context) ([]model.CategoryResponse, error)
}

var _ Catalog = (*client.Client)(nil)

// BookRemote implements repository.BookRepository.
type BookRemote struct {
	api   Catalog
	cache repository.BookCache
	log   logrus.FieldLogger
}

func NewBookRemote(api Catalog, cache repository.BookCache, log logrus.FieldLogger) *BookRemote {
	return &BookRemote{api: api, cache: cache, log: log}
}

var _ repository.BookRepository = (*BookRemote)(nil)

func (r *BookRemote) List(ctx context.Context, q model.BookQuery) (repository.Fetched[[]model.BookResponse], error) {
	return fallback(ctx, r.log, "books",
		func(ctx context.Context) ([]model.BookResponse, error) { return r.api.ListBooks(ctx, q) },
		r.storeBooks,
		func(ctx context.Context) ([]model.BookResponse, bool, error) {
			return booksFromCache(r.cache.List(ctx, q))
		},
	)
}

func (r *BookRemote) Get(ctx context.Context, id string) (repository.Fetched[model.BookResponse], error) {
	return fallback(ctx, r.log, "books",
		func(ctx context.Context) (model.BookResponse, error) {
			b, err := r.api.GetBook(ctx, id)
			if err != nil {
				return model.BookResponse{}, err
			}
			return *b, nil
		},
		func(ctx context.Context, b model.BookResponse) error {
			return r.storeBooks(ctx, []model.BookResponse{b})
		},
		func(ctx context.Context) (model.BookResponse, bool, error) {
			b, err := r.cache.FindByID(ctx, id)
			if errors.Is(err, sql.ErrNoRows) {
				return model.BookResponse{}, false, nil
			}
			if err != nil {
				return model.BookResponse{}, false, err
			}
			return b.ToResponse(), true, nil
		},
	)
}

func (r *BookRemote) Search(ctx context.Context, query string) (repository.Fetched[[]model.BookResponse], error) {
	return fallback(ctx, r.log, "books",
		func(ctx context.Context) ([]model.BookResponse, error) { return r.api.SearchBooks(ctx, query) },
		r.storeBooks,
		func(ctx context.Context) ([]model.BookResponse, bool, error) {
			return booksFromCache(r.cache.Search(ctx, query))
		},
	)
}

func (r *BookRemote) ListByAuthor(ctx context.Context, authorID string) (repository.Fetched[[]model.BookResponse], error) {
	return fallback(ctx, r.log, "books",
		func(ctx context.Context) ([]model.BookResponse, error) { return r.api.ListAuthorBooks(ctx, authorID) },
		r.storeBooks,
		func(ctx context.Context) ([]model.BookResponse, bool, error) {
			return booksFromCache(r.cache.ListByAuthor(ctx, authorID))
		},
	)
}

func (r *BookRemote) storeBooks(ctx context.Context, books []model.BookResponse) error {
	now := clock()
	rows := make([]model.Book, 0, len(books))
	for _, b := range books {
		rows = append(rows, model.BookFromResponse(b, now))
	}
	return r.cache.UpsertMany(ctx, rows)
}

func booksFromCache(rows []model.Book, err error) ([]model.BookResponse, bool, error) {
	if err != nil {
		return nil, false, err
	}
	if len(rows) == 0 {
		return nil, false, nil
	}
	out := make([]model.BookResponse, 0, len(rows))
	for _, b := range rows {
		out = append(out, b.ToResponse())
	}
	return out, true, nil
}

// AuthorRemote implements repository.AuthorRepository.
type AuthorRemote struct {
	api   Catalog
	cache repository.AuthorCache
	log   logrus.FieldLogger
}

func NewAuthorRemote(api Catalog, cache repository.AuthorCache, log logrus.FieldLogger) *AuthorRemote {
	return &AuthorRemote{api: api, cache: cache, log: log}
}

var _ repository.AuthorRepository = (*AuthorRemote)(nil)

func (r *AuthorRemote) List(ctx context.Context) (repository.Fetched[[]model.AuthorResponse], error) {
	return fallback(ctx, r.log, "authors",
		r.api.ListAuthors,
		r.storeAuthors,
		func(ctx context.Context) ([]model.AuthorResponse, bool, error) {
			rows, err := r.cache.List(ctx)
			if err != nil || len(rows) == 0 {
				return nil, false, err
			}
			out := make([]model.AuthorResponse, 0, len(rows))
			for _, a := range rows {
				out = append(out, a.ToResponse())
			}
			return out, true, nil
		},
	)
}

func (r *AuthorRemote) Get(ctx context.Context, id string) (repository.Fetched[model.AuthorResponse], error) {
	return fallback(ctx, r.log, "authors",
		func(ctx context.Context) (model.AuthorResponse, error) {
			a, err := r.api.GetAuthor(ctx, id)
			if err != nil {
				return model.AuthorResponse{}, err
			}
			return *a, nil
		},
		func(ctx context.Context, a model.AuthorResponse) error {
			return r.storeAuthors(ctx, []model.AuthorResponse{a})
		},
		func(ctx context.Context) (model.AuthorResponse, bool, error) {
			a, err := r.cache.FindByID(ctx, id)
			if errors.Is(err, sql.ErrNoRows) {
				return model.AuthorResponse{}, false, nil
			}
			if err != nil {
				return model.AuthorResponse{}, false, err
			}
			return a.ToResponse(), true, nil
		},
	)
}

func (r *AuthorRemote) storeAuthors(ctx context.Context, authors []model.AuthorResponse) error {
	now := clock()
	rows := make([]model.Author, 0, len(authors))
	for _, a := range authors {
		rows = append(rows, model.AuthorFromResponse(a, now))
	}
	return r.cache.UpsertMany(ctx, rows)
}

// CategoryRemote implements repository.CategoryRepository.
type CategoryRemote struct {
	api   Catalog
	cache repository.CategoryCache
	log   logrus.FieldLogger
}

func NewCategoryRemote(api Catalog, cache repository.CategoryCache, log logrus.FieldLogger) *CategoryRemote {
	return &CategoryRemote{api: api, cache: cache, log: log}
}

var _ repository.CategoryRepository = (*CategoryRemote)(nil)

func (r *CategoryRemote) List(ctx context.Context) (repository.Fetched[[]model.CategoryResponse], error) {
	return fallback(ctx, r.log, "categories",
		r.api.ListCategories,
		func(ctx context.Context, cats []model.CategoryResponse) error {
			now := clock()
			rows := make([]model.Category, 0, len(cats))
			for _, c := range cats {
				rows = append(rows, model.CategoryFromResponse(c, now))
			}
			return r.cache.UpsertMany(ctx, rows)
		},
		func(ctx context.Context) ([]model.CategoryResponse, bool, error) {
			rows, err := r.cache.List(ctx)
			if err != nil || len(rows) == 0 {
				return nil, false, err
			}
			out := make([]model.CategoryResponse, 0, len(rows))
			for _, c := range rows {
				out = append(out, c.ToResponse())
			}
			return out, true, nil
		},
	)
}
