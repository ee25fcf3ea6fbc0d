package listing

import "errors"

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrUnauthenticated = errors.New("login required")
	ErrForbidden       = errors.New("listing belongs to another user")
	ErrInvalidTitle    = errors.New("title is required")
	ErrInvalidLocation = errors.New("location is required")
	ErrInvalidPrice    = errors.New("price must be a non-negative number")
	ErrInvalidStatus   = errors.New("status must be available or sold")
)
