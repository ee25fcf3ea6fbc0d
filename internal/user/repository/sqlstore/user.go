package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"property-listings/internal/user"
	repo "property-listings/internal/user/repository"
)

const userColumns = `id, username, email, password_hash, created_at`

type userRow struct {
	ID           string `db:"id"`
	Username     string `db:"username"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	CreatedAt    int64  `db:"created_at"`
}

func (row userRow) toUser() user.User {
	return user.User{
		ID:           row.ID,
		Username:     row.Username,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		CreatedAt:    time.UnixMilli(row.CreatedAt).UTC(),
	}
}

// CreateUser inserts a new User row. The email uniqueness check and the
// insert run in one transaction.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (user.User, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s: begin: %v", r.dsn("CreateUser"), err)
		return user.User{}, repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	var taken int
	if err := tx.GetContext(ctx, &taken, tx.Rebind(`SELECT COUNT(*) FROM users WHERE email = ?`), opt.Email); err != nil {
		r.l.Errorf(ctx, "%s: check email: %v", r.dsn("CreateUser"), err)
		return user.User{}, repo.ErrFailedToInsert
	}
	if taken > 0 {
		return user.User{}, repo.ErrDuplicateEmail
	}

	row := userRow{
		ID:           r.newID(),
		Username:     opt.Username,
		Email:        opt.Email,
		PasswordHash: opt.PasswordHash,
		CreatedAt:    r.now().UnixMilli(),
	}
	const query = `
		INSERT INTO users (` + userColumns + `)
		VALUES (:id, :username, :email, :password_hash, :created_at)`
	if _, err := tx.NamedExecContext(ctx, query, row); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return user.User{}, repo.ErrFailedToInsert
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s: commit: %v", r.dsn("CreateUser"), err)
		return user.User{}, repo.ErrFailedToInsert
	}
	return row.toUser(), nil
}

// GetOneUser looks a user up by ID or email.
// Returns zero-value User when not found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (user.User, error) {
	column, value := "id", opt.ID
	if value == "" {
		column, value = "email", opt.Email
	}
	query := r.db.Rebind(`SELECT ` + userColumns + ` FROM users WHERE ` + column + ` = ? LIMIT 1`)

	var row userRow
	err := r.db.GetContext(ctx, &row, query, value)
	if errors.Is(err, sql.ErrNoRows) {
		return user.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return user.User{}, repo.ErrFailedToGet
	}
	return row.toUser(), nil
}
