package usecase

import (
	"context"
	"strings"

	"property-listings/internal/listing"
	repo "property-listings/internal/listing/repository"
	"property-listings/internal/model"
)

// Create stores a new Listing owned by the caller.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input listing.CreateListingInput) (listing.CreateListingOutput, error) {
	if !sc.IsAuthenticated() {
		return listing.CreateListingOutput{}, listing.ErrUnauthenticated
	}

	title := strings.TrimSpace(input.Title)
	location := strings.TrimSpace(input.Location)
	if err := validateFields(title, location, input.Price); err != nil {
		return listing.CreateListingOutput{}, err
	}

	status := listing.StatusAvailable
	if strings.TrimSpace(input.Status) != "" {
		s, ok := listing.ParseStatus(input.Status)
		if !ok {
			return listing.CreateListingOutput{}, listing.ErrInvalidStatus
		}
		status = s
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	l, err := uc.repo.CreateListing(ctx, repo.CreateListingOptions{
		UserID:      sc.UserID,
		Title:       title,
		Location:    location,
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		Status:      status,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateListing: %v", err)
		return listing.CreateListingOutput{}, err
	}
	uc.bump()

	return listing.CreateListingOutput{Listing: l}, nil
}
