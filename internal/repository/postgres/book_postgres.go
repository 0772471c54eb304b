package postgres

import (
	"context"
	"database/sql"
	"strings"

	"storefront/internal/model"
	"storefront/internal/repository"
)

// BookPostgres is the PostgreSQL implementation of repository.BookCache.
type BookPostgres struct {
	db *sql.DB
}

func NewBookPostgres(db *sql.DB) *BookPostgres {
	return &BookPostgres{db: db}
}

var _ repository.BookCache = (*BookPostgres)(nil)

const bookColumns = `id, title, description, author_id, author_name, category_id, category_name, price, rating, cover_url, published_at, cached_at`

// orderBy maps sort keys to fixed ORDER BY clauses; never interpolate user input.
var orderBy = map[model.BookSort]string{
	model.SortNewest:    "published_at DESC NULLS LAST, id ASC",
	model.SortPriceAsc:  "price ASC, id ASC",
	model.SortPriceDesc: "price DESC, id ASC",
	model.SortRating:    "rating DESC, id ASC",
	model.SortTitle:     "title ASC, id ASC",
}

func (r *BookPostgres) UpsertMany(ctx context.Context, books []model.Book) error {
	if len(books) == 0 {
		return nil
	}
	const q = `
		INSERT INTO books (` + bookColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			author_id = EXCLUDED.author_id,
			author_name = EXCLUDED.author_name,
			category_id = EXCLUDED.category_id,
			category_name = EXCLUDED.category_name,
			price = EXCLUDED.price,
			rating = EXCLUDED.rating,
			cover_url = EXCLUDED.cover_url,
			published_at = EXCLUDED.published_at,
			cached_at = EXCLUDED.cached_at
	`
	return inTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, b := range books {
			var published sql.NullTime
			if b.PublishedAt != nil {
				published = sql.NullTime{Time: *b.PublishedAt, Valid: true}
			}
			if _, err := tx.ExecContext(ctx, q,
				b.ID,
				b.Title,
				nullString(b.Description),
				b.AuthorID,
				b.AuthorName,
				nullString(b.CategoryID),
				nullString(b.CategoryName),
				b.Price,
				b.Rating,
				nullString(b.CoverURL),
				published,
				b.CachedAt,
			); err != nil {
				return err
			}
		}
		return nil
	})
}

// List returns cached books in the category of q (all when empty), ordered by q.Sort.
func (r *BookPostgres) List(ctx context.Context, q model.BookQuery) ([]model.Book, error) {
	order, ok := orderBy[q.Sort]
	if !ok {
		order = "cached_at DESC, id ASC"
	}
	query := `SELECT ` + bookColumns + ` FROM books WHERE ($1 = '' OR category_id = $1) ORDER BY ` + order
	return r.query(ctx, query, q.CategoryID)
}

func (r *BookPostgres) FindByID(ctx context.Context, id string) (*model.Book, error) {
	const q = `SELECT ` + bookColumns + ` FROM books WHERE id = $1`
	return scanBook(r.db.QueryRowContext(ctx, q, id))
}

func (r *BookPostgres) ListByAuthor(ctx context.Context, authorID string) ([]model.Book, error) {
	const q = `SELECT ` + bookColumns + ` FROM books WHERE author_id = $1 ORDER BY published_at DESC NULLS LAST, id ASC`
	return r.query(ctx, q, authorID)
}

// Search matches text against title and author name, case-insensitively.
func (r *BookPostgres) Search(ctx context.Context, text string) ([]model.Book, error) {
	const q = `SELECT ` + bookColumns + ` FROM books WHERE title ILIKE $1 ESCAPE '\' OR author_name ILIKE $1 ESCAPE '\' ORDER BY title ASC, id ASC`
	return r.query(ctx, q, likePattern(text))
}

func (r *BookPostgres) query(ctx context.Context, q string, args ...any) ([]model.Book, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Book, 0)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanBook(s scanner) (*model.Book, error) {
	var (
		b            model.Book
		description  sql.NullString
		categoryID   sql.NullString
		categoryName sql.NullString
		coverURL     sql.NullString
		published    sql.NullTime
	)
	if err := s.Scan(
		&b.ID,
		&b.Title,
		&description,
		&b.AuthorID,
		&b.AuthorName,
		&categoryID,
		&categoryName,
		&b.Price,
		&b.Rating,
		&coverURL,
		&published,
		&b.CachedAt,
	); err != nil {
		return nil, err
	}
	b.Description = description.String
	b.CategoryID = categoryID.String
	b.CategoryName = categoryName.String
	b.CoverURL = coverURL.String
	if published.Valid {
		t := published.Time
		b.PublishedAt = &t
	}
	return &b, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(text string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(text)) + "%"
}
