package usecase

import (
	"sync"

	"golang.org/x/crypto/bcrypt"

	"property-listings/internal/user"
	"property-listings/internal/user/repository"
	"property-listings/pkg/log"
	"property-listings/pkg/scope"
)

// implUseCase is the private implementation of user.UseCase.
type implUseCase struct {
	repo       repository.Repository
	jwtManager scope.Manager
	l          log.Logger

	// registerMu serialises the email check and the insert.
	registerMu sync.Mutex
	hashCost   int
}

// New creates a new user UseCase implementation.
func New(repo repository.Repository, jwtManager scope.Manager, l log.Logger) user.UseCase {
	return &implUseCase{
		repo:       repo,
		jwtManager: jwtManager,
		l:          l,
		hashCost:   bcrypt.DefaultCost,
	}
}
