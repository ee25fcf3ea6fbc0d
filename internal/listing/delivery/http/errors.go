package http

import (
	"errors"
	"net/http"

	"property-listings/internal/listing"
	pkgErrors "property-listings/pkg/errors"
)

var (
	errIDRequired       = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	errPriceRequired    = pkgErrors.NewHTTPError(http.StatusBadRequest, "price is required")
	errInvalidPrice     = pkgErrors.NewHTTPError(http.StatusBadRequest, "price must be a number")
	errInvalidMinPrice  = pkgErrors.NewHTTPError(http.StatusBadRequest, "min_price must be a number")
	errInvalidMaxPrice  = pkgErrors.NewHTTPError(http.StatusBadRequest, "max_price must be a number")
	errInvalidPaging    = pkgErrors.NewHTTPError(http.StatusBadRequest, "limit and offset must not be negative")
	errMalformedRequest = pkgErrors.NewHTTPError(http.StatusBadRequest, "malformed request body")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Anything unknown becomes a 500 with a generic message.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, listing.ErrListingNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, listing.ErrUnauthenticated):
		return pkgErrors.ErrUnauthorized
	case errors.Is(err, listing.ErrForbidden):
		return pkgErrors.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, listing.ErrInvalidTitle),
		errors.Is(err, listing.ErrInvalidLocation),
		errors.Is(err, listing.ErrInvalidPrice),
		errors.Is(err, listing.ErrInvalidStatus):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
