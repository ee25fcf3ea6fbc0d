package mongostore

import (
	"time"

	"property-listings/internal/listing"
)

type listingDoc struct {
	ID          string    `bson:"_id"`
	Seq         int64     `bson:"seq"`
	UserID      string    `bson:"user_id"`
	Title       string    `bson:"title"`
	Location    string    `bson:"location"`
	Description string    `bson:"description"`
	Price       float64   `bson:"price"`
	Status      string    `bson:"status"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func docToListing(d listingDoc) listing.Listing {
	return listing.Listing{
		ID:          d.ID,
		UserID:      d.UserID,
		Title:       d.Title,
		Location:    d.Location,
		Description: d.Description,
		Price:       d.Price,
		Status:      listing.Status(d.Status),
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}

func docsToListings(docs []listingDoc) []listing.Listing {
	out := make([]listing.Listing, len(docs))
	for i, d := range docs {
		out[i] = docToListing(d)
	}
	return out
}
