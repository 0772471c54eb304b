package model

import "time"

// BookResponse mirrors the upstream book payload.
type BookResponse struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	AuthorID     string     `json:"author_id"`
	AuthorName   string     `json:"author_name"`
	CategoryID   string     `json:"category_id,omitempty"`
	CategoryName string     `json:"category_name,omitempty"`
	Price        float64    `json:"price"`
	Rating       float64    `json:"rating"`
	CoverURL     string     `json:"cover_url,omitempty"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Book is a cached book row.
type Book struct {
	ID           string
	Title        string
	Description  string
	AuthorID     string
	AuthorName   string
	CategoryID   string
	CategoryName string
	Price        float64
	Rating       float64
	CoverURL     string
	PublishedAt  *time.Time
	CachedAt     time.Time
}

func (b Book) ToResponse() BookResponse {
	return BookResponse{
		ID:           b.ID,
		Title:        b.Title,
		Description:  b.Description,
		AuthorID:     b.AuthorID,
		AuthorName:   b.AuthorName,
		CategoryID:   b.CategoryID,
		CategoryName: b.CategoryName,
		Price:        b.Price,
		Rating:       b.Rating,
		CoverURL:     b.CoverURL,
		PublishedAt:  b.PublishedAt,
	}
}

func BookFromResponse(r BookResponse, cachedAt time.Time) Book {
	return Book{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		AuthorID:     r.AuthorID,
		AuthorName:   r.AuthorName,
		CategoryID:   r.CategoryID,
		CategoryName: r.CategoryName,
		Price:        r.Price,
		Rating:       r.Rating,
		CoverURL:     r.CoverURL,
		PublishedAt:  r.PublishedAt,
		CachedAt:     cachedAt,
	}
}

// BookFilter narrows the home-screen book list.
type BookFilter string

const (
	FilterAll        BookFilter = "all"
	FilterNew        BookFilter = "new"
	FilterPopular    BookFilter = "popular"
	FilterBestseller BookFilter = "bestseller"
)

// Valid reports whether f is a known filter.
func (f BookFilter) Valid() bool {
	switch f {
	case FilterAll, FilterNew, FilterPopular, FilterBestseller:
		return true
	}
	return false
}

// BookSort orders the home-screen book list.
type BookSort string

const (
	SortNewest    BookSort = "newest"
	SortPriceAsc  BookSort = "price_asc"
	SortPriceDesc BookSort = "price_desc"
	SortRating    BookSort = "rating"
	SortTitle     BookSort = "title"
)

func (s BookSort) Valid() bool {
	switch s {
	case SortNewest, SortPriceAsc, SortPriceDesc, SortRating, SortTitle:
		return true
	}
	return false
}

// BookQuery is the filter/sort/category triple sent to GET /books.
type BookQuery struct {
	Filter     BookFilter `json:"filter"`
	Sort       BookSort   `json:"sort"`
	CategoryID string     `json:"category_id,omitempty"`
}
