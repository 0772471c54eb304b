package model

import "time"

// FavoriteResponse is a favorited book.
type FavoriteResponse struct {
	BookID    string       `json:"book_id"`
	Book      BookResponse `json:"book"`
	CreatedAt time.Time    `json:"created_at"`
}

// FavoriteRequest is the body of POST /favorites.
type FavoriteRequest struct {
	BookID string `json:"book_id"`
}
