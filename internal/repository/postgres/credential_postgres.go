package postgres

import (
	"context"
	"database/sql"
	"time"

	"storefront/internal/model"
	"storefront/internal/repository"
)

// CredentialPostgres stores signed-in users in the users table.
type CredentialPostgres struct {
	db *sql.DB
}

func NewCredentialPostgres(db *sql.DB) *CredentialPostgres {
	return &CredentialPostgres{db: db}
}

var _ repository.CredentialStore = (*CredentialPostgres)(nil)

// Save upserts the user row; a new login replaces the previous token.
func (r *CredentialPostgres) Save(ctx context.Context, u model.User) error {
	const q = `
		INSERT INTO users (id, name, email, token, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			token = EXCLUDED.token,
			expires_at = EXCLUDED.expires_at
	`
	var expires sql.NullTime
	if !u.ExpiresAt.IsZero() {
		expires = sql.NullTime{Time: u.ExpiresAt, Valid: true}
	}
	_, err := r.db.ExecContext(ctx, q, u.ID, u.Name, u.Email, u.Token, expires, u.CreatedAt)
	return err
}

func (r *CredentialPostgres) FindByToken(ctx context.Context, token string) (*model.User, error) {
	const q = `
		SELECT id, name, email, token, expires_at, created_at
		FROM users
		WHERE token = $1
	`
	var (
		u       model.User
		expires sql.NullTime
	)
	if err := r.db.QueryRowContext(ctx, q, token).Scan(&u.ID, &u.Name, &u.Email, &u.Token, &expires, &u.CreatedAt); err != nil {
		return nil, err
	}
	if expires.Valid {
		u.ExpiresAt = expires.Time
	}
	return &u, nil
}

// DeleteByToken removes the credential. A missing row is not an error.
func (r *CredentialPostgres) DeleteByToken(ctx context.Context, token string) error {
	const q = `DELETE FROM users WHERE token = $1`
	_, err := r.db.ExecContext(ctx, q, token)
	return err
}

func (r *CredentialPostgres) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	const q = `DELETE FROM users WHERE expires_at IS NOT NULL AND expires_at <= $1`
	res, err := r.db.ExecContext(ctx, q, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
