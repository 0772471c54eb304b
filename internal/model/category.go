package model

import "time"

// CategoryResponse mirrors the upstream category payload.
type CategoryResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	BooksCount int    `json:"books_count"`
}

// Category is a cached category row.
type Category struct {
	ID         string
	Name       string
	BooksCount int
	CachedAt   time.Time
}

func (c Category) ToResponse() CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, BooksCount: c.BooksCount}
}

func CategoryFromResponse(r CategoryResponse, cachedAt time.Time) Category {
	return Category{ID: r.ID, Name: r.Name, BooksCount: r.BooksCount, CachedAt: cachedAt}
}
