package usecase

import (
	"context"

	"property-listings/internal/listing"
	"property-listings/internal/listing/query"
	repo "property-listings/internal/listing/repository"
	"property-listings/internal/model"
)

// Search filters and sorts the whole collection, then applies pagination.
// Total is the number of matches before pagination.
func (uc *implUseCase) Search(ctx context.Context, input listing.SearchInput) (listing.SearchOutput, error) {
	params := query.NewParams(input.Text, input.Status, input.MinPrice, input.MaxPrice, input.Sort)

	uc.mu.RLock()
	matches, err := uc.engine.Query(ctx, uc.revision, params, uc.loadAll)
	uc.mu.RUnlock()
	if err != nil {
		uc.l.Errorf(ctx, "uc.Search Query: %v", err)
		return listing.SearchOutput{}, err
	}

	return listing.SearchOutput{
		Listings: paginate(matches, input.Limit, input.Offset),
		Total:    len(matches),
		Limit:    input.Limit,
		Offset:   input.Offset,
	}, nil
}

// Mine returns the caller's listings in insertion order.
func (uc *implUseCase) Mine(ctx context.Context, sc model.Scope) (listing.MineOutput, error) {
	if !sc.IsAuthenticated() {
		return listing.MineOutput{}, listing.ErrUnauthenticated
	}

	listings, err := uc.repo.ListListings(ctx, repo.ListListingsOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Mine ListListings: %v", err)
		return listing.MineOutput{}, err
	}
	return listing.MineOutput{Listings: listings}, nil
}

// Featured returns the first listings of the collection.
func (uc *implUseCase) Featured(ctx context.Context) (listing.FeaturedOutput, error) {
	listings, err := uc.repo.ListListings(ctx, repo.ListListingsOptions{Limit: uc.featuredCount})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Featured ListListings: %v", err)
		return listing.FeaturedOutput{}, err
	}
	return listing.FeaturedOutput{Listings: listings}, nil
}

func (uc *implUseCase) loadAll(ctx context.Context) ([]listing.Listing, error) {
	return uc.repo.ListListings(ctx, repo.ListListingsOptions{})
}
