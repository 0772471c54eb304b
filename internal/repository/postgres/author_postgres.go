package postgres

import (
	"context"
	"database/sql"

	"storefront/internal/model"
	"storefront/internal/repository"
)

// AuthorPostgres is the PostgreSQL implementation of repository.AuthorCache.
type AuthorPostgres struct {
	db *sql.DB
}

func NewAuthorPostgres(db *sql.DB) *AuthorPostgres {
	return &AuthorPostgres{db: db}
}

var _ repository.AuthorCache = (*AuthorPostgres)(nil)

// UpsertMany inserts or refreshes all authors in one transaction.
func (r *AuthorPostgres) UpsertMany(ctx context.Context, authors []model.Author) error {
	if len(authors) == 0 {
		return nil
	}
	const q = `
		INSERT INTO authors (id, name, bio, photo_url, followers_count, cached_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			bio = EXCLUDED.bio,
			photo_url = EXCLUDED.photo_url,
			followers_count = EXCLUDED.followers_count,
			cached_at = EXCLUDED.cached_at
	`
	return inTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, a := range authors {
			if _, err := tx.ExecContext(ctx, q,
				a.ID,
				a.Name,
				nullString(a.Bio),
				nullString(a.PhotoURL),
				a.FollowersCount,
				a.CachedAt,
			); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *AuthorPostgres) List(ctx context.Context) ([]model.Author, error) {
	const q = `
		SELECT id, name, bio, photo_url, followers_count, cached_at
		FROM authors
		ORDER BY name ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Author, 0)
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *AuthorPostgres) FindByID(ctx context.Context, id string) (*model.Author, error) {
	const q = `
		SELECT id, name, bio, photo_url, followers_count, cached_at
		FROM authors
		WHERE id = $1
	`
	return scanAuthor(r.db.QueryRowContext(ctx, q, id))
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAuthor(s scanner) (*model.Author, error) {
	var (
		a        model.Author
		bio      sql.NullString
		photoURL sql.NullString
	)
	if err := s.Scan(&a.ID, &a.Name, &bio, &photoURL, &a.FollowersCount, &a.CachedAt); err != nil {
		return nil, err
	}
	a.Bio = bio.String
	a.PhotoURL = photoURL.String
	return &a, nil
}
