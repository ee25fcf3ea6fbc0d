package sqlstore

import (
	"time"

	"property-listings/internal/listing"
)

const listingColumns = `id, user_id, title, location, description, price, status, created_at, updated_at`

type listingRow struct {
	ID          string  `db:"id"`
	UserID      string  `db:"user_id"`
	Title       string  `db:"title"`
	Location    string  `db:"location"`
	Description string  `db:"description"`
	Price       float64 `db:"price"`
	Status      string  `db:"status"`
	CreatedAt   int64   `db:"created_at"`
	UpdatedAt   int64   `db:"updated_at"`
}

func (row listingRow) toListing() listing.Listing {
	// Rows are only written through this package, so the status is valid.
	return listing.Listing{
		ID:          row.ID,
		UserID:      row.UserID,
		Title:       row.Title,
		Location:    row.Location,
		Description: row.Description,
		Price:       row.Price,
		Status:      listing.Status(row.Status),
		CreatedAt:   time.UnixMilli(row.CreatedAt).UTC(),
		UpdatedAt:   time.UnixMilli(row.UpdatedAt).UTC(),
	}
}
