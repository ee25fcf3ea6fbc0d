package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"property-listings/internal/listing"
	"property-listings/internal/listing/repository"
	"property-listings/pkg/jsonstore"
	"property-listings/pkg/log"
)

// implRepository keeps listings in an insertion ordered slice guarded by a
// RWMutex. When a snapshot store is configured, every mutation is written to
// disk before it becomes visible.
type implRepository struct {
	mu       sync.RWMutex
	listings []listing.Listing
	index    map[string]int

	snapshot *jsonstore.Store
	l        log.Logger
	now      func() time.Time
	newID    func() string
}

// New creates an in-memory Repository. snapshot may be nil; when set, its
// content is loaded immediately.
func New(l log.Logger, snapshot *jsonstore.Store) (repository.Repository, error) {
	if l == nil {
		panic("listing/repository/memory: logger is required")
	}

	r := &implRepository{
		index:    make(map[string]int),
		snapshot: snapshot,
		l:        l,
		now:      time.Now,
		newID:    uuid.NewString,
	}

	if snapshot != nil {
		var doc snapshotDoc
		if err := snapshot.Load(&doc); err != nil {
			return nil, fmt.Errorf("%s: load snapshot: %w", r.dsn("New"), err)
		}
		r.listings = doc.toListings()
		r.reindex()
		l.Infof(context.Background(), "%s: loaded %d listings from %s", r.dsn("New"), len(r.listings), snapshot.Path())
	}

	return r, nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("listing/repository/memory.%s", method)
}

func (r *implRepository) reindex() {
	r.index = make(map[string]int, len(r.listings))
	for i, l := range r.listings {
		r.index[l.ID] = i
	}
}

// commit persists next (when a snapshot is configured) and then installs it
// as the current state. Callers hold the write lock.
func (r *implRepository) commit(next []listing.Listing) error {
	if r.snapshot != nil {
		if err := r.snapshot.Save(newSnapshotDoc(next)); err != nil {
			return err
		}
	}
	r.listings = next
	r.reindex()
	return nil
}
