package usecase

import (
	"strings"

	"property-listings/internal/listing"
	"property-listings/internal/model"
)

// coalesce returns *newVal when provided, otherwise the existing value.
// Used for partial updates.
func coalesce[T any](newVal *T, existing T) T {
	if newVal != nil {
		return *newVal
	}
	return existing
}

// validateFields checks the fields every stored listing must satisfy.
func validateFields(title, location string, price float64) error {
	if strings.TrimSpace(title) == "" {
		return listing.ErrInvalidTitle
	}
	if strings.TrimSpace(location) == "" {
		return listing.ErrInvalidLocation
	}
	if !listing.ValidPrice(price) {
		return listing.ErrInvalidPrice
	}
	return nil
}

// checkOwner returns ErrForbidden unless sc owns l.
func checkOwner(sc model.Scope, l listing.Listing) error {
	if !sc.IsAuthenticated() {
		return listing.ErrUnauthenticated
	}
	if l.UserID != sc.UserID {
		return listing.ErrForbidden
	}
	return nil
}

// paginate slices in by offset and limit. limit 0 means no limit.
func paginate(in []listing.Listing, limit, offset int) []listing.Listing {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(in) {
		return []listing.Listing{}
	}
	in = in[offset:]
	if limit > 0 && limit < len(in) {
		in = in[:limit]
	}
	return in
}
