package model

import "math"

// CartItemResponse is one line of the shopping cart.
type CartItemResponse struct {
	BookID   string  `json:"book_id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	CoverURL string  `json:"cover_url,omitempty"`
}

// CartResponse is the whole cart as returned by GET /cart.
type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total float64            `json:"total"`
}

// AddToCartRequest is the body of POST /cart.
type AddToCartRequest struct {
	BookID   string `json:"book_id"`
	Quantity int    `json:"quantity"`
}

// Contains reports whether bookID is in the cart.
func (c CartResponse) Contains(bookID string) bool {
	for _, it := range c.Items {
		if it.BookID == bookID {
			return true
		}
	}
	return false
}

// ComputedTotal sums price*quantity in whole cents so repeated float
// additions don't drift.
func (c CartResponse) ComputedTotal() float64 {
	var cents int64
	for _, it := range c.Items {
		cents += int64(math.Round(it.Price*100)) * int64(it.Quantity)
	}
	return float64(cents) / 100
}
