package http

import (
	"errors"
	"net/http"

	"property-listings/internal/user"
	pkgErrors "property-listings/pkg/errors"
)

var errMalformedRequest = pkgErrors.NewHTTPError(http.StatusBadRequest, "malformed request body")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrInvalidUsername),
		errors.Is(err, user.ErrInvalidEmail),
		errors.Is(err, user.ErrInvalidPassword),
		errors.Is(err, user.ErrPasswordTooLong):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, user.ErrEmailTaken):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, user.ErrInvalidCredentials):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, user.ErrUnauthenticated):
		return pkgErrors.ErrUnauthorized
	case errors.Is(err, user.ErrUserNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
