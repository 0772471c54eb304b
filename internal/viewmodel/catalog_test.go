package viewmodel

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/client"
	"storefront/internal/model"
	"storefront/internal/repository"
	repoMocks "storefront/internal/repository/mocks"
)

func TestSearch_BlankQuerySkipsUpstream(t *testing.T) {
	bookRepo := new(repoMocks.MockBookRepository)
	s := NewSearch(bookRepo)

	screen, err := s.Run(context.Background(), "   ")

	require.NoError(t, err)
	assert.Empty(t, screen.Query)
	assert.NotNil(t, screen.Results.Data)
	assert.Empty(t, screen.Results.Data)
	bookRepo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestSearch_Run(t *testing.T) {
	bookRepo := new(repoMocks.MockBookRepository)
	bookRepo.On("Search", mock.Anything, "dune").Return(books("b1"), nil).Once()
	bookRepo.On("Search", mock.Anything, "missing").Return(repository.Fetched[[]model.BookResponse]{}, errors.New("down")).Once()
	s := NewSearch(bookRepo)

	screen, err := s.Run(context.Background(), " dune ")
	require.NoError(t, err)
	assert.Equal(t, "dune", screen.Query)
	assert.Len(t, screen.Results.Data, 1)

	screen, err = s.Run(context.Background(), "missing")
	assert.Error(t, err)
	assert.Equal(t, "Failed to load search results", screen.Results.Error)
}

func TestBookDetail_Load(t *testing.T) {
	bookRepo := new(repoMocks.MockBookRepository)
	favRepo := new(repoMocks.MockFavoriteRepository)
	cartRepo := new(repoMocks.MockCartRepository)

	bookRepo.On("Get", mock.Anything, "b1").Return(repository.Fetched[model.BookResponse]{Data: model.BookResponse{ID: "b1", Title: "Dune"}}, nil)
	favRepo.On("List", mock.Anything).Return([]model.FavoriteResponse{{BookID: "b1"}}, nil)
	cartRepo.On("Get", mock.Anything).Return(&model.CartResponse{Items: []model.CartItemResponse{{BookID: "b2"}}}, nil)

	d := NewBookDetail(bookRepo, favRepo, cartRepo)
	screen, err := d.Load(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, "Dune", screen.Book.Data.Title)
	assert.True(t, screen.IsFavorite)
	assert.False(t, screen.InCart)
}

func TestBookDetail_Load_CartFailureKeepsBook(t *testing.T) {
	bookRepo := new(repoMocks.MockBookRepository)
	favRepo := new(repoMocks.MockFavoriteRepository)
	cartRepo := new(repoMocks.MockCartRepository)

	bookRepo.On("Get", mock.Anything, "b1").Return(repository.Fetched[model.BookResponse]{Data: model.BookResponse{ID: "b1"}}, nil)
	favRepo.On("List", mock.Anything).Return([]model.FavoriteResponse{}, nil)
	cartRepo.On("Get", mock.Anything).Return(nil, errors.New("cart down"))

	screen, err := NewBookDetail(bookRepo, favRepo, cartRepo).Load(context.Background(), "b1")

	require.NoError(t, err)
	assert.True(t, screen.Book.Success())
	assert.False(t, screen.InCart)
}

func TestBookDetail_Load_FavoritesFailureKeepsBook(t *testing.T) {
	bookRepo := new(repoMocks.MockBookRepository)
	favRepo := new(repoMocks.MockFavoriteRepository)
	cartRepo := new(repoMocks.MockCartRepository)

	bookRepo.On("Get", mock.Anything, "b1").Return(repository.Fetched[model.BookResponse]{Data: model.BookResponse{ID: "b1"}}, nil)
	favRepo.On("List", mock.Anything).Return(nil, &client.APIError{Status: 502})
	cartRepo.On("Get", mock.Anything).Return(&model.CartResponse{Items: []model.CartItemResponse{{BookID: "b1", Quantity: 1}}}, nil)

	screen, err := NewBookDetail(bookRepo, favRepo, cartRepo).Load(context.Background(), "b1")

	require.NoError(t, err)
	assert.True(t, screen.Book.Success())
	assert.False(t, screen.IsFavorite)
	assert.True(t, screen.InCart)
}

func TestBookDetail_Load_CartUnauthorized(t *testing.T) {
	bookRepo := new(repoMocks.MockBookRepository)
	favRepo := new(repoMocks.MockFavoriteRepository)
	cartRepo := new(repoMocks.MockCartRepository)

	bookRepo.On("Get", mock.Anything, "b1").Return(repository.Fetched[model.BookResponse]{Data: model.BookResponse{ID: "b1"}}, nil)
	favRepo.On("List", mock.Anything).Return([]model.FavoriteResponse{}, nil)
	cartRepo.On("Get", mock.Anything).Return(nil, &client.APIError{Status: 401})

	_, err := NewBookDetail(bookRepo, favRepo, cartRepo).Load(context.Background(), "b1")

	assert.ErrorIs(t, err, client.ErrUnauthorized)
}

func TestBookDetail_Load_Unauthorized(t *testing.T) {
	bookRepo := new(repoMocks.MockBookRepository)
	favRepo := new(repoMocks.MockFavoriteRepository)
	cartRepo := new(repoMocks.MockCartRepository)

	bookRepo.On("Get", mock.Anything, "b1").Return(repository.Fetched[model.BookResponse]{Data: model.BookResponse{ID: "b1"}}, nil)
	favRepo.On("List", mock.Anything).Return(nil, &client.APIError{Status: 401})
	cartRepo.On("Get", mock.Anything).Return(nil, &client.APIError{Status: 401})

	_, err := NewBookDetail(bookRepo, favRepo, cartRepo).Load(context.Background(), "b1")

	assert.ErrorIs(t, err, client.ErrUnauthorized)
}

func TestBookDetail_Actions(t *testing.T) {
	ctx := context.Background()
	favRepo := new(repoMocks.MockFavoriteRepository)
	cartRepo := new(repoMocks.MockCartRepository)
	d := NewBookDetail(new(repoMocks.MockBookRepository), favRepo, cartRepo)

	favRepo.On("Add", mock.Anything, "b1").Return(nil).Once()
	res, err := d.SetFavorite(ctx, "b1", true)
	require.NoError(t, err)
	assert.Equal(t, model.ActionResult{Success: true, Message: "Added to favorites"}, res)
	assert.True(t, d.Snapshot().IsFavorite)

	favRepo.On("Remove", mock.Anything, "b1").Return(errors.New("boom")).Once()
	res, err = d.SetFavorite(ctx, "b1", false)
	assert.Error(t, err)
	assert.False(t, res.Success)
	assert.True(t, d.Snapshot().IsFavorite)

	res, err = d.AddToCart(ctx, "b1", 0)
	assert.ErrorIs(t, err, ErrInvalidQuery)
	assert.False(t, res.Success)

	cartRepo.On("Add", mock.Anything, "b1", 2).Return(&model.CartResponse{}, nil).Once()
	res, err = d.AddToCart(ctx, "b1", 2)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.True(t, d.Snapshot().InCart)
}

func TestAuthorDetail_LoadAndFollow(t *testing.T) {
	ctx := context.Background()
	authorRepo := new(repoMocks.MockAuthorRepository)
	bookRepo := new(repoMocks.MockBookRepository)
	followRepo := new(repoMocks.MockFollowRepository)

	authorRepo.On("Get", mock.Anything, "a1").Return(repository.Fetched[model.AuthorResponse]{Data: model.AuthorResponse{ID: "a1", Name: "Frank Herbert"}}, nil)
	bookRepo.On("ListByAuthor", mock.Anything, "a1").Return(books("b1", "b3"), nil)
	followRepo.On("List", mock.Anything).Return([]model.FollowResponse{}, nil)
	followRepo.On("Follow", mock.Anything, "a1").Return(nil).Once()

	d := NewAuthorDetail(authorRepo, bookRepo, followRepo)
	screen, err := d.Load(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "Frank Herbert", screen.Author.Data.Name)
	assert.Len(t, screen.Books.Data, 2)
	assert.False(t, screen.Following)

	res, err := d.SetFollow(ctx, "a1", true)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.True(t, d.Snapshot().Following)
}

func TestAuthorDetail_BlankID(t *testing.T) {
	d := NewAuthorDetail(new(repoMocks.MockAuthorRepository), new(repoMocks.MockBookRepository), new(repoMocks.MockFollowRepository))
	_, err := d.Load(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidQuery)
}

func TestAuthorList_Load(t *testing.T) {
	authorRepo := new(repoMocks.MockAuthorRepository)
	authorRepo.On("List", mock.Anything).Return(repository.Fetched[[]model.AuthorResponse]{}, errors.New("down")).Once()

	st, err := NewAuthorList(authorRepo).Load(context.Background())

	assert.Error(t, err)
	assert.Equal(t, "Failed to load authors", st.Error)
}
