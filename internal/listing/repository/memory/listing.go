package memory

import (
	"context"
	"slices"

	"property-listings/internal/listing"
	repo "property-listings/internal/listing/repository"
)

// CreateListing appends a new Listing and returns it.
func (r *implRepository) CreateListing(ctx context.Context, opt repo.CreateListingOptions) (listing.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	l := listing.Listing{
		ID:          r.newID(),
		UserID:      opt.UserID,
		Title:       opt.Title,
		Location:    opt.Location,
		Description: opt.Description,
		Price:       opt.Price,
		Status:      opt.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	next := append(slices.Clone(r.listings), l)
	if err := r.commit(next); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateListing"), err)
		return listing.Listing{}, repo.ErrFailedToInsert
	}
	return l, nil
}

// GetOneListing returns the Listing with opt.ID, or a zero value when absent.
func (r *implRepository) GetOneListing(ctx context.Context, opt repo.GetOneListingOptions) (listing.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[opt.ID]
	if !ok {
		return listing.Listing{}, nil
	}
	return r.listings[i], nil
}

// ListListings returns a copy of the collection in insertion order.
func (r *implRepository) ListListings(ctx context.Context, opt repo.ListListingsOptions) ([]listing.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]listing.Listing, 0, len(r.listings))
	for _, l := range r.listings {
		if opt.UserID != "" && l.UserID != opt.UserID {
			continue
		}
		out = append(out, l)
		if opt.Limit > 0 && len(out) == opt.Limit {
			break
		}
	}
	return out, nil
}

// UpdateListing replaces the mutable fields of a Listing. Returns a zero
// value when the listing does not exist.
func (r *implRepository) UpdateListing(ctx context.Context, opt repo.UpdateListingOptions) (listing.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[opt.ID]
	if !ok {
		return listing.Listing{}, nil
	}

	next := slices.Clone(r.listings)
	l := next[i]
	l.Title = opt.Title
	l.Location = opt.Location
	l.Description = opt.Description
	l.Price = opt.Price
	l.Status = opt.Status
	l.UpdatedAt = r.now()
	next[i] = l

	if err := r.commit(next); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateListing"), err)
		return listing.Listing{}, repo.ErrFailedToUpdate
	}
	return l, nil
}

// DeleteListing removes a Listing by ID. Deleting a missing id is a no-op.
func (r *implRepository) DeleteListing(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return nil
	}

	next := slices.Delete(slices.Clone(r.listings), i, i+1)
	if err := r.commit(next); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteListing"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
