package service

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"storefront/internal/client"
	"storefront/internal/model"
	"storefront/internal/repository"
	repoMocks "storefront/internal/repository/mocks"
	"storefront/internal/storage"
	storeMocks "storefront/internal/storage/mocks"
)

type fakeSource struct {
	calls int
	err   error
}

func (f *fakeSource) FetchCover(ctx context.Context, coverURL string) (io.ReadCloser, string, int64, error) {
	f.calls++
	if f.err != nil {
		return nil, "", 0, f.err
	}
	return io.NopCloser(strings.NewReader("png-bytes")), "image/png", 9, nil
}

func bookWithCover(cover string) repository.Fetched[model.BookResponse] {
	return repository.Fetched[model.BookResponse]{Data: model.BookResponse{ID: "b1", CoverURL: cover}}
}

func TestCoverService_URL(t *testing.T) {
	ctx := context.Background()
	const src = "https://cdn.example.com/img/dune.PNG?v=2"
	ttl := 15 * time.Minute

	tests := []struct {
		name       string
		bookID     string
		setupMocks func(books *repoMocks.MockBookRepository, store *storeMocks.MockStorage)
		sourceErr  error
		want       string
		wantErr    error
		wantFetch  int
	}{
		{
			name:    "blank id",
			bookID:  " ",
			wantErr: ErrIDRequired,
		},
		{
			name:   "book not found",
			bookID: "b1",
			setupMocks: func(books *repoMocks.MockBookRepository, store *storeMocks.MockStorage) {
				books.On("Get", ctx, "b1").Return(repository.Fetched[model.BookResponse]{}, &client.APIError{Status: 404})
			},
			wantErr: client.ErrNotFound,
		},
		{
			name:   "no cover",
			bookID: "b1",
			setupMocks: func(books *repoMocks.MockBookRepository, store *storeMocks.MockStorage) {
				books.On("Get", ctx, "b1").Return(bookWithCover(""), nil)
			},
			wantErr: ErrNoCover,
		},
		{
			name:   "already mirrored",
			bookID: "b1",
			setupMocks: func(books *repoMocks.MockBookRepository, store *storeMocks.MockStorage) {
				books.On("Get", ctx, "b1").Return(bookWithCover(src), nil)
				store.On("Stat", ctx, "covers/b1.png").Return(storage.ObjectInfo{Metadata: map[string]string{sourceKey: src}}, nil)
				store.On("PresignGet", ctx, "covers/b1.png", ttl).Return("https://minio/covers/b1.png?sig", nil)
			},
			want: "https://minio/covers/b1.png?sig",
		},
		{
			name:   "first request mirrors",
			bookID: "b1",
			setupMocks: func(books *repoMocks.MockBookRepository, store *storeMocks.MockStorage) {
				books.On("Get", ctx, "b1").Return(bookWithCover(src), nil)
				store.On("Stat", ctx, "covers/b1.png").Return(storage.ObjectInfo{}, storage.ErrNotExist)
				store.On("Put", ctx, "covers/b1.png", mock.Anything, storage.PutObjectOptions{
					Size:        9,
					ContentType: "image/png",
					Metadata:    map[string]string{sourceKey: src},
				}).Return(storage.ObjectInfo{Key: "covers/b1.png"}, nil)
				store.On("PresignGet", ctx, "covers/b1.png", ttl).Return("https://minio/signed", nil)
			},
			want:      "https://minio/signed",
			wantFetch: 1,
		},
		{
			name:   "changed cover is replaced",
			bookID: "b1",
			setupMocks: func(books *repoMocks.MockBookRepository, store *storeMocks.MockStorage) {
				books.On("Get", ctx, "b1").Return(bookWithCover(src), nil)
				store.On("Stat", ctx, "covers/b1.png").Return(storage.ObjectInfo{Metadata: map[string]string{sourceKey: "old"}}, nil)
				store.On("Delete", ctx, "covers/b1.png").Return(nil)
				store.On("Put", ctx, "covers/b1.png", mock.Anything, mock.Anything).Return(storage.ObjectInfo{}, nil)
				store.On("PresignGet", ctx, "covers/b1.png", ttl).Return("https://minio/new", nil)
			},
			want:      "https://minio/new",
			wantFetch: 1,
		},
		{
			name:   "upstream download fails",
			bookID: "b1",
			setupMocks: func(books *repoMocks.MockBookRepository, store *storeMocks.MockStorage) {
				books.On("Get", ctx, "b1").Return(bookWithCover(src), nil)
				store.On("Stat", ctx, "covers/b1.png").Return(storage.ObjectInfo{}, storage.ErrNotExist)
			},
			sourceErr: &client.APIError{Status: 502},
			wantFetch: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			books := new(repoMocks.MockBookRepository)
			store := new(storeMocks.MockStorage)
			src := &fakeSource{err: tt.sourceErr}
			if tt.setupMocks != nil {
				tt.setupMocks(books, store)
			}
			svc := NewCoverService(books, src, store, ttl)

			got, err := svc.URL(ctx, tt.bookID)

			switch {
			case tt.sourceErr != nil:
				assert.ErrorIs(t, err, tt.sourceErr)
				assert.True(t, client.Temporary(err))
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.Equal(t, tt.wantFetch, src.calls)
			books.AssertExpectations(t)
			store.AssertExpectations(t)
		})
	}
}

func TestCoverKey(t *testing.T) {
	assert.Equal(t, "covers/b1.jpg", coverKey("b1", "/covers/b1"))
	assert.Equal(t, "covers/b1.webp", coverKey("b1", "https://x/y/z.webp"))
	assert.Equal(t, "covers/b1.jpg", coverKey("b1", "https://x/y/z.somethinglong"))
}
