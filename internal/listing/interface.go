package listing

import (
	"context"

	"property-listings/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Lifecycle
	Create(ctx context.Context, sc model.Scope, input CreateListingInput) (CreateListingOutput, error)
	Detail(ctx context.Context, id string) (DetailListingOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateListingInput) (UpdateListingOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
	ToggleStatus(ctx context.Context, sc model.Scope, id string) (ToggleStatusOutput, error)

	// Views
	Search(ctx context.Context, input SearchInput) (SearchOutput, error)
	Mine(ctx context.Context, sc model.Scope) (MineOutput, error)
	Featured(ctx context.Context) (FeaturedOutput, error)
}
