package user

import (
	"context"

	"property-listings/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Register(ctx context.Context, input RegisterInput) (AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (AuthOutput, error)
	Me(ctx context.Context, sc model.Scope) (MeOutput, error)
}
