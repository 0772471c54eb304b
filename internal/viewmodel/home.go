package viewmodel

import (
	"context"
	"fmt"
	"sync"

	"storefront/internal/model"
	"storefront/internal/repository"
)

// HomeScreen is the rendered home screen.
type HomeScreen struct {
	Query      model.BookQuery                 `json:"query"`
	Categories State[[]model.CategoryResponse] `json:"categories"`
	Books      State[[]model.BookResponse]     `json:"books"`
}

// Home lists categories and the books matching the current filter, sort and category.
type Home struct {
	books      repository.BookRepository
	categories repository.CategoryRepository

	applyMu sync.Mutex // serializes Apply

	mu      sync.Mutex
	query   model.BookQuery
	applied bool

	bookState     loader[[]model.BookResponse]
	categoryState loader[[]model.CategoryResponse]
}

func NewHome(books repository.BookRepository, categories repository.CategoryRepository) *Home {
	return &Home{
		books:      books,
		categories: categories,
		query:      DefaultHomeQuery(),
	}
}

// DefaultHomeQuery is what the home screen shows before the user picks anything.
func DefaultHomeQuery() model.BookQuery {
	return model.BookQuery{Filter: model.FilterAll, Sort: model.SortNewest}
}

// NormalizeHomeQuery fills defaults and validates q.
func NormalizeHomeQuery(q model.BookQuery) (model.BookQuery, error) {
	if q.Filter == "" {
		q.Filter = model.FilterAll
	}
	if q.Sort == "" {
		q.Sort = model.SortNewest
	}
	if !q.Filter.Valid() {
		return q, fmt.Errorf("%w: unknown filter %q", ErrInvalidQuery, q.Filter)
	}
	if !q.Sort.Valid() {
		return q, fmt.Errorf("%w: unknown sort %q", ErrInvalidQuery, q.Sort)
	}
	return q, nil
}

// Apply renders the home screen for q. Books are re-fetched only when q differs
// from the last successfully applied query, when nothing fresh has loaded yet, or
// when force is set. Categories load until they succeed once. Stale cache data
// is not a success.
func (h *Home) Apply(ctx context.Context, q model.BookQuery, force bool) (HomeScreen, error) {
	q, err := NormalizeHomeQuery(q)
	if err != nil {
		return h.Snapshot(), err
	}

	h.applyMu.Lock()
	defer h.applyMu.Unlock()

	var catErr error
	if force || !h.categoryState.succeeded() {
		_, catErr = h.categoryState.run(ctx, "categories", h.categories.List)
	}

	h.mu.Lock()
	refetch := force || !h.applied || q != h.query
	h.query = q
	h.mu.Unlock()

	var bookErr error
	if refetch {
		var st State[[]model.BookResponse]
		st, bookErr = h.bookState.run(ctx, "books", func(ctx context.Context) (repository.Fetched[[]model.BookResponse], error) {
			return h.books.List(ctx, q)
		})
		h.mu.Lock()
		h.applied = bookErr == nil && !st.Stale
		h.mu.Unlock()
	}

	return h.Snapshot(), firstErr(bookErr, catErr)
}

// Snapshot returns the current state without fetching.
func (h *Home) Snapshot() HomeScreen {
	h.mu.Lock()
	q := h.query
	h.mu.Unlock()
	return HomeScreen{
		Query:      q,
		Categories: h.categoryState.snapshot(),
		Books:      h.bookState.snapshot(),
	}
}
