package client

import (
	"context"
	"net/url"

	"storefront/internal/model"
)

// ListBooks fetches GET /books narrowed by q. Empty fields are omitted from the query string.
func (c *Client) ListBooks(ctx context.Context, q model.BookQuery) ([]model.BookResponse, error) {
	v := url.Values{}
	if q.Filter != "" {
		v.Set("filter", string(q.Filter))
	}
	if q.Sort != "" {
		v.Set("sort", string(q.Sort))
	}
	if q.CategoryID != "" {
		v.Set("category_id", q.CategoryID)
	}
	out := make([]model.BookResponse, 0)
	if err := c.get(ctx, "books.list", "/books", v, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetBook(ctx context.Context, id string) (*model.BookResponse, error) {
	var out model.BookResponse
	if err := c.get(ctx, "books.get", "/books/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SearchBooks(ctx context.Context, query string) ([]model.BookResponse, error) {
	out := make([]model.BookResponse, 0)
	if err := c.get(ctx, "books.search", "/books/search", url.Values{"q": {query}}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListAuthors(ctx context.Context) ([]model.AuthorResponse, error) {
	out := make([]model.AuthorResponse, 0)
	if err := c.get(ctx, "authors.list", "/authors", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetAuthor(ctx context.Context, id string) (*model.AuthorResponse, error) {
	var out model.AuthorResponse
	if err := c.get(ctx, "authors.get", "/authors/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListAuthorBooks(ctx context.Context, authorID string) ([]model.BookResponse, error) {
	out := make([]model.BookResponse, 0)
	if err := c.get(ctx, "authors.books", "/authors/"+url.PathEscape(authorID)+"/books", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]model.CategoryResponse, error) {
	out := make([]model.CategoryResponse, 0)
	if err := c.get(ctx, "categories.list", "/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
