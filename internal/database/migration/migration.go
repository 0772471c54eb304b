package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_authors",
		SQL: `CREATE TABLE IF NOT EXISTS authors (
  id              TEXT        PRIMARY KEY,
  name            TEXT        NOT NULL,
  bio             TEXT,
  photo_url       TEXT,
  followers_count INTEGER     NOT NULL DEFAULT 0 CHECK (followers_count >= 0),
  cached_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_categories",
		SQL: `CREATE TABLE IF NOT EXISTS categories (
  id          TEXT        PRIMARY KEY,
  name        TEXT        NOT NULL,
  books_count INTEGER     NOT NULL DEFAULT 0 CHECK (books_count >= 0),
  cached_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_books",
		SQL: `CREATE TABLE IF NOT EXISTS books (
  id            TEXT             PRIMARY KEY,
  title         TEXT             NOT NULL,
  description   TEXT,
  author_id     TEXT             NOT NULL,
  author_name   TEXT             NOT NULL,
  category_id   TEXT,
  category_name TEXT,
  price         DOUBLE PRECISION NOT NULL DEFAULT 0,
  rating        DOUBLE PRECISION NOT NULL DEFAULT 0,
  cover_url     TEXT,
  published_at  TIMESTAMPTZ,
  cached_at     TIMESTAMPTZ      NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_books_author_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_books_author_id ON books (author_id);`,
	},
	{
		Name: "create_index_books_category_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_books_category_id ON books (category_id);`,
	},
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id         TEXT        PRIMARY KEY,
  name       TEXT        NOT NULL,
  email      TEXT        NOT NULL UNIQUE,
  token      TEXT        NOT NULL UNIQUE,
  expires_at TIMESTAMPTZ,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_users_expires_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_users_expires_at ON users (expires_at);`,
	},
}

// EnsureMigrated checks for the sentinel 'users' table (created last) and runs
// every step when it is missing. Steps are idempotent, so a partial earlier run
// is completed safely.
func EnsureMigrated(ctx context.Context, db *sql.DB, log logrus.FieldLogger, dbHost string) error {
	start := time.Now()
	base := log.WithFields(logrus.Fields{"component": "database", "db_host": dbHost})

	base.WithFields(logrus.Fields{"event": "db_migration_check", "status": "starting"}).Info("checking schema")

	var exists bool
	err := db.QueryRowContext(ctx, "SELECT to_regclass('public.users') IS NOT NULL").Scan(&exists)
	if err != nil {
		base.WithFields(logrus.Fields{
			"event":       "db_migration_failed",
			"status":      "error",
			"duration_ms": time.Since(start).Milliseconds(),
		}).WithError(err).Error("failed to check sentinel table")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		base.WithFields(logrus.Fields{
			"event":       "db_migration_skip",
			"status":      "success",
			"duration_ms": time.Since(start).Milliseconds(),
		}).Info("schema already exists, skipping migration")
		return nil
	}

	base.WithFields(logrus.Fields{"event": "db_migration_start", "status": "in_progress"}).Info("migrating schema")

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			base.WithFields(logrus.Fields{
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			}).WithError(err).Error("migration step failed")
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		base.WithFields(logrus.Fields{
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		}).Debug("migration step applied")
	}

	base.WithFields(logrus.Fields{
		"event":       "db_migration_success",
		"status":      "success",
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("schema migrated")

	return nil
}
