package repository

import "property-listings/internal/listing"

// CreateListingOptions holds parameters for inserting a new Listing.
// The repository assigns ID, CreatedAt and UpdatedAt.
type CreateListingOptions struct {
	UserID      string
	Title       string
	Location    string
	Description string
	Price       float64
	Status      listing.Status
}

// GetOneListingOptions holds filter parameters for fetching a single Listing.
type GetOneListingOptions struct {
	ID string
}

// ListListingsOptions holds filter parameters for listing Listings.
// Limit 0 returns every match.
type ListListingsOptions struct {
	UserID string
	Limit  int
}

// UpdateListingOptions holds the complete new values of an existing Listing.
// UserID is not updatable.
type UpdateListingOptions struct {
	ID          string
	Title       string
	Location    string
	Description string
	Price       float64
	Status      listing.Status
}
