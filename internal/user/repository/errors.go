package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert user")
	ErrFailedToGet    = errors.New("failed to get user")
	ErrDuplicateEmail = errors.New("duplicate email")
)
