package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"storefront/internal/model"
	"storefront/internal/repository"
)

type MockBookRepository struct {
	mock.Mock
}

func (m *MockBookRepository) List(ctx context.Context, q model.BookQuery) (repository.Fetched[[]model.BookResponse], error) {
	args := m.Called(ctx, q)
	return args.Get(0).(repository.Fetched[[]model.BookResponse]), args.Error(1)
}

func (m *MockBookRepository) Get(ctx context.Context, id string) (repository.Fetched[model.BookResponse], error) {
	args := m.Called(ctx, id)
	return args.Get(0).(repository.Fetched[model.BookResponse]), args.Error(1)
}

func (m *MockBookRepository) Search(ctx context.Context, query string) (repository.Fetched[[]model.BookResponse], error) {
	args := m.Called(ctx, query)
	return args.Get(0).(repository.Fetched[[]model.BookResponse]), args.Error(1)
}

func (m *MockBookRepository) ListByAuthor(ctx context.Context, authorID string) (repository.Fetched[[]model.BookResponse], error) {
	args := m.Called(ctx, authorID)
	return args.Get(0).(repository.Fetched[[]model.BookResponse]), args.Error(1)
}

type MockAuthorRepository struct {
	mock.Mock
}

func (m *MockAuthorRepository) List(ctx context.Context) (repository.Fetched[[]model.AuthorResponse], error) {
	args := m.Called(ctx)
	return args.Get(0).(repository.Fetched[[]model.AuthorResponse]), args.Error(1)
}

func (m *MockAuthorRepository) Get(ctx context.Context, id string) (repository.Fetched[model.AuthorResponse], error) {
	args := m.Called(ctx, id)
	return args.Get(0).(repository.Fetched[model.AuthorResponse]), args.Error(1)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) List(ctx context.Context) (repository.Fetched[[]model.CategoryResponse], error) {
	args := m.Called(ctx)
	return args.Get(0).(repository.Fetched[[]model.CategoryResponse]), args.Error(1)
}
