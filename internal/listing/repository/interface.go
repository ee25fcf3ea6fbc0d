package repository

import (
	"context"

	"property-listings/internal/listing"
)

// Repository is the composed interface for the listing data store.
type Repository interface {
	ListingRepository
}

// ListingRepository defines all data access methods for the Listing entity.
// Implementations keep insertion order: ListListings returns listings in the
// order they were created.
type ListingRepository interface {
	CreateListing(ctx context.Context, opt CreateListingOptions) (listing.Listing, error)
	GetOneListing(ctx context.Context, opt GetOneListingOptions) (listing.Listing, error)
	ListListings(ctx context.Context, opt ListListingsOptions) ([]listing.Listing, error)
	UpdateListing(ctx context.Context, opt UpdateListingOptions) (listing.Listing, error)
	DeleteListing(ctx context.Context, id string) error
}
