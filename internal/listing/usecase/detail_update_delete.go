package usecase

import (
	"context"
	"strings"

	"property-listings/internal/listing"
	repo "property-listings/internal/listing/repository"
	"property-listings/internal/model"
)

// Detail retrieves a single Listing by ID. Returns ErrListingNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (listing.DetailListingOutput, error) {
	l, err := uc.repo.GetOneListing(ctx, repo.GetOneListingOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneListing: %v", err)
		return listing.DetailListingOutput{}, err
	}
	if l.ID == "" {
		return listing.DetailListingOutput{}, listing.ErrListingNotFound
	}
	return listing.DetailListingOutput{Listing: l}, nil
}

// Update merges the provided fields into an existing Listing owned by the caller.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input listing.UpdateListingInput) (listing.UpdateListingOutput, error) {
	if !sc.IsAuthenticated() {
		return listing.UpdateListingOutput{}, listing.ErrUnauthenticated
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	existing, err := uc.getOwned(ctx, sc, input.ID)
	if err != nil {
		return listing.UpdateListingOutput{}, err
	}

	status := existing.Status
	if input.Status != nil {
		s, ok := listing.ParseStatus(*input.Status)
		if !ok {
			return listing.UpdateListingOutput{}, listing.ErrInvalidStatus
		}
		status = s
	}

	title := strings.TrimSpace(coalesce(input.Title, existing.Title))
	location := strings.TrimSpace(coalesce(input.Location, existing.Location))
	price := coalesce(input.Price, existing.Price)
	if err := validateFields(title, location, price); err != nil {
		return listing.UpdateListingOutput{}, err
	}

	l, err := uc.repo.UpdateListing(ctx, repo.UpdateListingOptions{
		ID:          existing.ID,
		Title:       title,
		Location:    location,
		Description: strings.TrimSpace(coalesce(input.Description, existing.Description)),
		Price:       price,
		Status:      status,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateListing: %v", err)
		return listing.UpdateListingOutput{}, err
	}
	if l.ID == "" {
		return listing.UpdateListingOutput{}, listing.ErrListingNotFound
	}
	uc.bump()

	return listing.UpdateListingOutput{Listing: l}, nil
}

// ToggleStatus flips a Listing owned by the caller between available and sold.
func (uc *implUseCase) ToggleStatus(ctx context.Context, sc model.Scope, id string) (listing.ToggleStatusOutput, error) {
	if !sc.IsAuthenticated() {
		return listing.ToggleStatusOutput{}, listing.ErrUnauthenticated
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	existing, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return listing.ToggleStatusOutput{}, err
	}

	l, err := uc.repo.UpdateListing(ctx, repo.UpdateListingOptions{
		ID:          existing.ID,
		Title:       existing.Title,
		Location:    existing.Location,
		Description: existing.Description,
		Price:       existing.Price,
		Status:      existing.Status.Toggle(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleStatus UpdateListing: %v", err)
		return listing.ToggleStatusOutput{}, err
	}
	if l.ID == "" {
		return listing.ToggleStatusOutput{}, listing.ErrListingNotFound
	}
	uc.bump()

	return listing.ToggleStatusOutput{Listing: l}, nil
}

// Delete removes a Listing owned by the caller.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if !sc.IsAuthenticated() {
		return listing.ErrUnauthenticated
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, err := uc.getOwned(ctx, sc, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteListing(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteListing: %v", err)
		return err
	}
	uc.bump()
	return nil
}

// getOwned loads a listing and checks that sc owns it.
func (uc *implUseCase) getOwned(ctx context.Context, sc model.Scope, id string) (listing.Listing, error) {
	l, err := uc.repo.GetOneListing(ctx, repo.GetOneListingOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getOwned GetOneListing: %v", err)
		return listing.Listing{}, err
	}
	if l.ID == "" {
		return listing.Listing{}, listing.ErrListingNotFound
	}
	if err := checkOwner(sc, l); err != nil {
		return listing.Listing{}, err
	}
	return l, nil
}
