package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockCoverService struct {
	mock.Mock
}

func (m *MockCoverService) URL(ctx context.Context, bookID string) (string, error) {
	args := m.Called(ctx, bookID)
	return args.String(0), args.Error(1)
}
