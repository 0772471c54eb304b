package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"storefront/internal/repository"
	"storefront/internal/storage"
)

var (
	ErrIDRequired = errors.New("id is required")
	ErrNoCover    = errors.New("book has no cover")
)

// sourceKey is the object metadata entry recording which upstream URL a
// mirrored cover was copied from.
const sourceKey = "source-url"

// CoverSource downloads cover images from the upstream API.
type CoverSource interface {
	FetchCover(ctx context.Context, coverURL string) (io.ReadCloser, string, int64, error)
}

// CoverService serves book covers from the object store.
type CoverService interface {
	// URL returns a presigned download URL for the book's cover, mirroring the
	// image from upstream first if it is not stored yet or has changed.
	URL(ctx context.Context, bookID string) (string, error)
}

type coverService struct {
	books  repository.BookRepository
	source CoverSource
	store  storage.Storage
	ttl    time.Duration
}

func NewCoverService(books repository.BookRepository, source CoverSource, store storage.Storage, ttl time.Duration) CoverService {
	return &coverService{books: books, source: source, store: store, ttl: ttl}
}

func (s *coverService) URL(ctx context.Context, bookID string) (string, error) {
	if strings.TrimSpace(bookID) == "" {
		return "", ErrIDRequired
	}
	book, err := s.books.Get(ctx, bookID)
	if err != nil {
		return "", err
	}
	src := book.Data.CoverURL
	if src == "" {
		return "", ErrNoCover
	}
	key := coverKey(bookID, src)

	info, err := s.store.Stat(ctx, key)
	switch {
	case err == nil && info.Metadata[sourceKey] == src:
		return s.store.PresignGet(ctx, key, s.ttl)
	case err == nil:
		// The book points at a new image; drop the old copy so a failed refresh
		// does not keep serving it.
		if err := s.store.Delete(ctx, key); err != nil {
			return "", fmt.Errorf("delete stale cover: %w", err)
		}
	case !errors.Is(err, storage.ErrNotExist):
		return "", fmt.Errorf("stat cover: %w", err)
	}

	if err := s.mirror(ctx, key, src); err != nil {
		return "", err
	}
	return s.store.PresignGet(ctx, key, s.ttl)
}

func (s *coverService) mirror(ctx context.Context, key, src string) error {
	body, contentType, size, err := s.source.FetchCover(ctx, src)
	if err != nil {
		return fmt.Errorf("fetch cover: %w", err)
	}
	defer body.Close()

	_, err = s.store.Put(ctx, key, body, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata:    map[string]string{sourceKey: src},
	})
	if err != nil {
		return fmt.Errorf("upload cover: %w", err)
	}
	return nil
}

// coverKey is covers/<bookID><ext>, with the extension taken from the
// upstream URL path and defaulting to .jpg.
func coverKey(bookID, src string) string {
	p := src
	if u, err := url.Parse(src); err == nil {
		p = u.Path
	}
	ext := strings.ToLower(path.Ext(p))
	if ext == "" || len(ext) > 5 {
		ext = ".jpg"
	}
	return "covers/" + bookID + ext
}
