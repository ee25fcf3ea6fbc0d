package memory

import (
	"context"

	"property-listings/internal/user"
	repo "property-listings/internal/user/repository"
)

// CreateUser stores a new User. Returns repo.ErrDuplicateEmail when the
// email is taken.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[opt.Email]; ok {
		return user.User{}, repo.ErrDuplicateEmail
	}

	u := user.User{
		ID:           r.newID(),
		Username:     opt.Username,
		Email:        opt.Email,
		PasswordHash: opt.PasswordHash,
		CreatedAt:    r.now().UTC(),
	}

	if r.snapshot != nil {
		if err := r.snapshot.Save(newSnapshotDoc(append(r.ordered(), u))); err != nil {
			r.l.Errorf(ctx, "%s: save snapshot: %v", r.dsn("CreateUser"), err)
			return user.User{}, repo.ErrFailedToInsert
		}
	}
	r.put(u)
	return u, nil
}

// GetOneUser looks a user up by ID or email.
// Returns zero-value User when not found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id := opt.ID
	if id == "" {
		id = r.byEmail[opt.Email]
	}
	return r.users[id], nil
}
