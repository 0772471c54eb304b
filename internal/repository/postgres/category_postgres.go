package postgres

import (
	"context"
	"database/sql"

	"storefront/internal/model"
	"storefront/internal/repository"
)

// CategoryPostgres is the PostgreSQL implementation of repository.CategoryCache.
type CategoryPostgres struct {
	db *sql.DB
}

func NewCategoryPostgres(db *sql.DB) *CategoryPostgres {
	return &CategoryPostgres{db: db}
}

var _ repository.CategoryCache = (*CategoryPostgres)(nil)

func (r *CategoryPostgres) UpsertMany(ctx context.Context, categories []model.Category) error {
	if len(categories) == 0 {
		return nil
	}
	const q = `
		INSERT INTO categories (id, name, books_count, cached_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			books_count = EXCLUDED.books_count,
			cached_at = EXCLUDED.cached_at
	`
	return inTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, c := range categories {
			if _, err := tx.ExecContext(ctx, q, c.ID, c.Name, c.BooksCount, c.CachedAt); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *CategoryPostgres) List(ctx context.Context) ([]model.Category, error) {
	const q = `
		SELECT id, name, books_count, cached_at
		FROM categories
		ORDER BY name ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Category, 0)
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.BooksCount, &c.CachedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
