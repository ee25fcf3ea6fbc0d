package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"property-listings/internal/listing"
	repo "property-listings/internal/listing/repository"
)

// CreateListing inserts a new Listing row and returns the created entity.
func (r *implRepository) CreateListing(ctx context.Context, opt repo.CreateListingOptions) (listing.Listing, error) {
	now := r.now().UnixMilli()
	row := listingRow{
		ID:          r.newID(),
		UserID:      opt.UserID,
		Title:       opt.Title,
		Location:    opt.Location,
		Description: opt.Description,
		Price:       opt.Price,
		Status:      string(opt.Status),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	const query = `
		INSERT INTO listings (` + listingColumns + `)
		VALUES (:id, :user_id, :title, :location, :description, :price, :status, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateListing"), err)
		return listing.Listing{}, repo.ErrFailedToInsert
	}
	return row.toListing(), nil
}

// GetOneListing retrieves a single Listing by ID.
// Returns zero-value Listing (ID == "") when not found.
func (r *implRepository) GetOneListing(ctx context.Context, opt repo.GetOneListingOptions) (listing.Listing, error) {
	query := r.db.Rebind(`SELECT ` + listingColumns + ` FROM listings WHERE id = ? LIMIT 1`)

	var row listingRow
	err := r.db.GetContext(ctx, &row, query, opt.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return listing.Listing{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneListing"), err)
		return listing.Listing{}, repo.ErrFailedToGet
	}
	return row.toListing(), nil
}

// ListListings returns listings in insertion order.
func (r *implRepository) ListListings(ctx context.Context, opt repo.ListListingsOptions) ([]listing.Listing, error) {
	mods, args := r.buildListQuery(opt)
	query := r.db.Rebind(fmt.Sprintf(`SELECT %s FROM listings %s`, listingColumns, mods))

	var rows []listingRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListListings"), err)
		return nil, repo.ErrFailedToList
	}

	out := make([]listing.Listing, len(rows))
	for i, row := range rows {
		out[i] = row.toListing()
	}
	return out, nil
}

// UpdateListing updates a Listing by ID and returns the updated entity.
// Returns zero-value Listing when not found.
func (r *implRepository) UpdateListing(ctx context.Context, opt repo.UpdateListingOptions) (listing.Listing, error) {
	query := r.db.Rebind(`
		UPDATE listings
		SET title = ?, location = ?, description = ?, price = ?, status = ?, updated_at = ?
		WHERE id = ?
		RETURNING ` + listingColumns)

	var row listingRow
	err := r.db.GetContext(ctx, &row, query,
		opt.Title, opt.Location, opt.Description, opt.Price, string(opt.Status), r.now().UnixMilli(), opt.ID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return listing.Listing{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateListing"), err)
		return listing.Listing{}, repo.ErrFailedToUpdate
	}
	return row.toListing(), nil
}

// DeleteListing removes a Listing by ID.
func (r *implRepository) DeleteListing(ctx context.Context, id string) error {
	query := r.db.Rebind(`DELETE FROM listings WHERE id = ?`)
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteListing"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
