package viewmodel

import (
	"context"
	"strings"
	"sync"

	"storefront/internal/model"
	"storefront/internal/repository"
)

// Search runs free-text book searches.
type Search struct {
	books repository.BookRepository

	mu      sync.Mutex
	query   string
	results loader[[]model.BookResponse]
}

func NewSearch(books repository.BookRepository) *Search {
	return &Search{books: books}
}

// SearchScreen is the rendered search screen.
type SearchScreen struct {
	Query   string                      `json:"query"`
	Results State[[]model.BookResponse] `json:"results"`
}

// Run searches for query. A blank query clears the results without calling upstream.
func (s *Search) Run(ctx context.Context, query string) (SearchScreen, error) {
	query = strings.TrimSpace(query)

	s.mu.Lock()
	s.query = query
	s.mu.Unlock()

	if query == "" {
		s.results.set(make([]model.BookResponse, 0))
		return SearchScreen{Query: query, Results: s.results.snapshot()}, nil
	}
	st, err := s.results.run(ctx, "search results", func(ctx context.Context) (repository.Fetched[[]model.BookResponse], error) {
		return s.books.Search(ctx, query)
	})
	return SearchScreen{Query: query, Results: st}, err
}

// BookDetailScreen is one book plus the user's relation to it.
type BookDetailScreen struct {
	Book       State[model.BookResponse] `json:"book"`
	IsFavorite bool                      `json:"is_favorite"`
	InCart     bool                      `json:"in_cart"`
}

// BookDetail shows a book and lets the user favorite it or put it in the cart.
type BookDetail struct {
	books     repository.BookRepository
	favorites repository.FavoriteRepository
	cart      repository.CartRepository

	mu         sync.Mutex
	isFavorite bool
	inCart     bool
	book       loader[model.BookResponse]
}

func NewBookDetail(books repository.BookRepository, favorites repository.FavoriteRepository, cart repository.CartRepository) *BookDetail {
	return &BookDetail{books: books, favorites: favorites, cart: cart}
}

// Load fetches the book. Failing to read favorites or the cart leaves the
// corresponding flag false; only the book itself decides the screen state,
// unless the upstream reports the session as unauthorized.
func (d *BookDetail) Load(ctx context.Context, id string) (BookDetailScreen, error) {
	if strings.TrimSpace(id) == "" {
		return d.Snapshot(), ErrInvalidQuery
	}
	_, err := d.book.run(ctx, "book", func(ctx context.Context) (repository.Fetched[model.BookResponse], error) {
		return d.books.Get(ctx, id)
	})

	fav := false
	if favs, ferr := d.favorites.List(ctx); ferr == nil {
		for _, f := range favs {
			if f.BookID == id {
				fav = true
				break
			}
		}
	} else {
		err = firstErr(err, unauthorized(ferr))
	}

	inCart := false
	if cart, cerr := d.cart.Get(ctx); cerr == nil {
		inCart = cart.Contains(id)
	} else {
		err = firstErr(err, unauthorized(cerr))
	}

	d.mu.Lock()
	d.isFavorite = fav
	d.inCart = inCart
	d.mu.Unlock()

	return d.Snapshot(), err
}

func (d *BookDetail) Snapshot() BookDetailScreen {
	d.mu.Lock()
	defer d.mu.Unlock()
	return BookDetailScreen{
		Book:       d.book.snapshot(),
		IsFavorite: d.isFavorite,
		InCart:     d.inCart,
	}
}

// SetFavorite adds or removes the book from the user's favorites.
func (d *BookDetail) SetFavorite(ctx context.Context, bookID string, favorite bool) (model.ActionResult, error) {
	var err error
	if favorite {
		err = d.favorites.Add(ctx, bookID)
	} else {
		err = d.favorites.Remove(ctx, bookID)
	}
	if err != nil {
		return failed(err, "Failed to update favorites")
	}

	d.mu.Lock()
	d.isFavorite = favorite
	d.mu.Unlock()

	if favorite {
		return model.ActionResult{Success: true, Message: "Added to favorites"}, nil
	}
	return model.ActionResult{Success: true, Message: "Removed from favorites"}, nil
}

// AddToCart puts quantity copies of the book in the cart.
func (d *BookDetail) AddToCart(ctx context.Context, bookID string, quantity int) (model.ActionResult, error) {
	if quantity < 1 {
		return model.ActionResult{Message: "Quantity must be at least 1"}, ErrInvalidQuery
	}
	if _, err := d.cart.Add(ctx, bookID, quantity); err != nil {
		return failed(err, "Failed to add to cart")
	}

	d.mu.Lock()
	d.inCart = true
	d.mu.Unlock()

	return model.ActionResult{Success: true, Message: "Added to cart"}, nil
}

// AuthorList shows every author.
type AuthorList struct {
	authors repository.AuthorRepository
	state   loader[[]model.AuthorResponse]
}

func NewAuthorList(authors repository.AuthorRepository) *AuthorList {
	return &AuthorList{authors: authors}
}

func (a *AuthorList) Load(ctx context.Context) (State[[]model.AuthorResponse], error) {
	return a.state.run(ctx, "authors", a.authors.List)
}

// AuthorDetailScreen is one author, their books and whether the user follows them.
type AuthorDetailScreen struct {
	Author    State[model.AuthorResponse] `json:"author"`
	Books     State[[]model.BookResponse] `json:"books"`
	Following bool                        `json:"following"`
}

// AuthorDetail shows an author and lets the user follow or unfollow them.
type AuthorDetail struct {
	authors repository.AuthorRepository
	books   repository.BookRepository
	follows repository.FollowRepository

	mu        sync.Mutex
	following bool
	author    loader[model.AuthorResponse]
	list      loader[[]model.BookResponse]
}

func NewAuthorDetail(authors repository.AuthorRepository, books repository.BookRepository, follows repository.FollowRepository) *AuthorDetail {
	return &AuthorDetail{authors: authors, books: books, follows: follows}
}

func (a *AuthorDetail) Load(ctx context.Context, id string) (AuthorDetailScreen, error) {
	if strings.TrimSpace(id) == "" {
		return a.Snapshot(), ErrInvalidQuery
	}
	_, authorErr := a.author.run(ctx, "author", func(ctx context.Context) (repository.Fetched[model.AuthorResponse], error) {
		return a.authors.Get(ctx, id)
	})
	_, booksErr := a.list.run(ctx, "books", func(ctx context.Context) (repository.Fetched[[]model.BookResponse], error) {
		return a.books.ListByAuthor(ctx, id)
	})

	following := false
	follows, followErr := a.follows.List(ctx)
	for _, f := range follows {
		if f.AuthorID == id {
			following = true
			break
		}
	}

	a.mu.Lock()
	a.following = following
	a.mu.Unlock()

	return a.Snapshot(), firstErr(authorErr, booksErr, unauthorized(followErr))
}

func (a *AuthorDetail) Snapshot() AuthorDetailScreen {
	a.mu.Lock()
	defer a.mu.Unlock()
	return AuthorDetailScreen{
		Author:    a.author.snapshot(),
		Books:     a.list.snapshot(),
		Following: a.following,
	}
}

// SetFollow follows or unfollows the author.
func (a *AuthorDetail) SetFollow(ctx context.Context, authorID string, follow bool) (model.ActionResult, error) {
	var err error
	if follow {
		err = a.follows.Follow(ctx, authorID)
	} else {
		err = a.follows.Unfollow(ctx, authorID)
	}
	if err != nil {
		return failed(err, "Failed to update follow")
	}

	a.mu.Lock()
	a.following = follow
	a.mu.Unlock()

	if follow {
		return model.ActionResult{Success: true, Message: "Following author"}, nil
	}
	return model.ActionResult{Success: true, Message: "Unfollowed author"}, nil
}
