package user

import "errors"

var (
	ErrInvalidUsername    = errors.New("username is required")
	ErrInvalidEmail       = errors.New("email is not valid")
	ErrInvalidPassword    = errors.New("password is required")
	ErrPasswordTooLong    = errors.New("password must be at most 72 bytes")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUnauthenticated    = errors.New("login required")
)
