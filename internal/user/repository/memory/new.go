package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"property-listings/internal/user"
	"property-listings/internal/user/repository"
	"property-listings/pkg/jsonstore"
	"property-listings/pkg/log"
)

type implRepository struct {
	mu      sync.RWMutex
	users   map[string]user.User
	byEmail map[string]string // email -> user id
	order   []string

	snapshot *jsonstore.Store
	l        log.Logger
	now      func() time.Time
	newID    func() string
}

// New creates an in-memory user Repository. snapshot may be nil.
func New(l log.Logger, snapshot *jsonstore.Store) (repository.Repository, error) {
	if l == nil {
		panic("user/repository/memory: logger is required")
	}

	r := &implRepository{
		users:    make(map[string]user.User),
		byEmail:  make(map[string]string),
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
		for _, u := range doc.toUsers() {
			r.put(u)
		}
		l.Infof(context.Background(), "%s: loaded %d users from %s", r.dsn("New"), len(r.order), snapshot.Path())
	}

	return r, nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("user/repository/memory.%s", method)
}

func (r *implRepository) put(u user.User) {
	r.users[u.ID] = u
	r.byEmail[u.Email] = u.ID
	r.order = append(r.order, u.ID)
}

func (r *implRepository) ordered() []user.User {
	out := make([]user.User, len(r.order))
	for i, id := range r.order {
		out[i] = r.users[id]
	}
	return out
}
