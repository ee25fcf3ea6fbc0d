package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"property-listings/internal/user/repository"
	"property-listings/pkg/log"
)

type implRepository struct {
	db    *sqlx.DB
	l     log.Logger
	now   func() time.Time
	newID func() string
}

// New creates a SQL-backed user Repository and makes sure the schema exists.
func New(ctx context.Context, db *sqlx.DB, l log.Logger) (repository.Repository, error) {
	if db == nil {
		panic("user/repository/sqlstore: db is required")
	}

	r := &implRepository{
		db:    db,
		l:     l,
		now:   time.Now,
		newID: uuid.NewString,
	}
	if err := r.initSchema(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("user/repository/sqlstore.%s", method)
}

func (r *implRepository) initSchema(ctx context.Context) error {
	const stmt = `
		CREATE TABLE IF NOT EXISTS users (
			id            TEXT PRIMARY KEY,
			username      TEXT NOT NULL,
			email         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at    BIGINT NOT NULL
		)`

	if _, err := r.db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("%s: %w", r.dsn("initSchema"), err)
	}
	return nil
}
