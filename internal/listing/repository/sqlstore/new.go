package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"property-listings/internal/listing/repository"
	"property-listings/pkg/log"
	"property-listings/pkg/sqldb"
)

type implRepository struct {
	db      *sqlx.DB
	dialect sqldb.Dialect
	l       log.Logger
	now     func() time.Time
	newID   func() string
}

// New creates a SQL-backed Repository for listings and makes sure the schema
// exists. Works with every driver pkg/sqldb opens.
func New(ctx context.Context, db *sqlx.DB, l log.Logger) (repository.Repository, error) {
	if db == nil {
		panic("listing/repository/sqlstore: db is required")
	}

	r := &implRepository{
		db:      db,
		dialect: sqldb.DialectOf(db.DriverName()),
		l:       l,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	if err := r.initSchema(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("listing/repository/sqlstore.%s", method)
}

func (r *implRepository) initSchema(ctx context.Context) error {
	seqColumn := "seq INTEGER PRIMARY KEY AUTOINCREMENT"
	if r.dialect == sqldb.DialectPostgres {
		seqColumn = "seq BIGSERIAL PRIMARY KEY"
	}

	stmts := []string{
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS listings (
			%s,
			id          TEXT NOT NULL UNIQUE,
			user_id     TEXT NOT NULL,
			title       TEXT NOT NULL,
			location    TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price       DOUBLE PRECISION NOT NULL,
			status      TEXT NOT NULL,
			created_at  BIGINT NOT NULL,
			updated_at  BIGINT NOT NULL
		)`, seqColumn),
		`CREATE INDEX IF NOT EXISTS idx_listings_user_id ON listings(user_id)`,
	}

	for _, stmt := range stmts {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%s: %w", r.dsn("initSchema"), err)
		}
	}
	return nil
}
