package repository

import (
	"context"

	"property-listings/internal/user"
)

//go:generate mockery --name Repository
type Repository interface {
	UserRepository
}

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	// CreateUser inserts a new User. Returns ErrDuplicateEmail when the
	// email is already stored.
	CreateUser(ctx context.Context, opt CreateUserOptions) (user.User, error)
	// GetOneUser returns the zero value when no user matches.
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (user.User, error)
}
