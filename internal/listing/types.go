package listing

import "time"

// --- Listing Domain Model ---

// Listing is a property offered for sale by a user.
type Listing struct {
	ID          string
	UserID      string
	Title       string
	Location    string
	Description string
	Price       float64
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// --- UseCase Inputs ---

type CreateListingInput struct {
	Title       string
	Location    string
	Description string
	Price       float64
	Status      string // optional, defaults to available
}

// UpdateListingInput merges every non-nil field into the stored listing.
type UpdateListingInput struct {
	ID          string
	Title       *string
	Location    *string
	Description *string
	Price       *float64
	Status      *string
}

// SearchInput carries the raw query parameters as the user typed them.
// Empty strings mean "filter not applied".
type SearchInput struct {
	Text     string
	Status   string
	MinPrice string
	MaxPrice string
	Sort     string
	Limit    int // 0 means no limit
	Offset   int
}

// --- UseCase Outputs ---

type CreateListingOutput struct {
	Listing Listing
}

type DetailListingOutput struct {
	Listing Listing
}

type UpdateListingOutput struct {
	Listing Listing
}

type ToggleStatusOutput struct {
	Listing Listing
}

type SearchOutput struct {
	Listings []Listing
	Total    int
	Limit    int
	Offset   int
}

type MineOutput struct {
	Listings []Listing
}

type FeaturedOutput struct {
	Listings []Listing
}
