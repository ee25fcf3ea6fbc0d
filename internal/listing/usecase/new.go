package usecase

import (
	"sync"

	"property-listings/internal/listing"
	"property-listings/internal/listing/query"
	"property-listings/internal/listing/repository"
	"property-listings/pkg/log"
)

// DefaultFeaturedCount is the number of listings Featured returns when the
// caller does not configure one.
const DefaultFeaturedCount = 3

// implUseCase is the private implementation of listing.UseCase.
//
// mu makes every mutation single-writer and makes "read revision, load
// collection" atomic with respect to writes, so a cached search result can
// never outlive the collection it was computed from.
type implUseCase struct {
	repo   repository.Repository
	l      log.Logger
	engine *query.Engine

	mu       sync.RWMutex
	revision uint64

	featuredCount int
}

// New creates a new listing UseCase implementation.
func New(repo repository.Repository, engine *query.Engine, featuredCount int, l log.Logger) listing.UseCase {
	if featuredCount <= 0 {
		featuredCount = DefaultFeaturedCount
	}
	if engine == nil {
		// A zero-size engine never fails to build.
		engine, _ = query.NewEngine(0)
	}
	return &implUseCase{
		repo:          repo,
		l:             l,
		engine:        engine,
		featuredCount: featuredCount,
	}
}

// bump records a successful mutation. Callers hold the write lock.
func (uc *implUseCase) bump() {
	uc.revision++
}
