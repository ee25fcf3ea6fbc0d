package memory

import (
	"time"

	"property-listings/internal/listing"
)

type snapshotDoc struct {
	Listings []listingDoc `json:"listings"`
}

type listingDoc struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newSnapshotDoc(ls []listing.Listing) snapshotDoc {
	docs := make([]listingDoc, len(ls))
	for i, l := range ls {
		docs[i] = listingDoc{
			ID:          l.ID,
			UserID:      l.UserID,
			Title:       l.Title,
			Location:    l.Location,
			Description: l.Description,
			Price:       l.Price,
			Status:      string(l.Status),
			CreatedAt:   l.CreatedAt,
			UpdatedAt:   l.UpdatedAt,
		}
	}
	return snapshotDoc{Listings: docs}
}

// toListings drops records that would break the collection invariants:
// duplicate ids and unknown statuses.
func (d snapshotDoc) toListings() []listing.Listing {
	seen := make(map[string]bool, len(d.Listings))
	out := make([]listing.Listing, 0, len(d.Listings))
	for _, doc := range d.Listings {
		st, ok := listing.ParseStatus(doc.Status)
		if !ok || doc.ID == "" || seen[doc.ID] {
			continue
		}
		seen[doc.ID] = true
		out = append(out, listing.Listing{
			ID:          doc.ID,
			UserID:      doc.UserID,
			Title:       doc.Title,
			Location:    doc.Location,
			Description: doc.Description,
			Price:       doc.Price,
			Status:      st,
			CreatedAt:   doc.CreatedAt,
			UpdatedAt:   doc.UpdatedAt,
		})
	}
	return out
}
