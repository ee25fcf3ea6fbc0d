package sqlstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "property-listings/internal/user/repository"
	"property-listings/pkg/log"
	"property-listings/pkg/sqldb"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	db, err := sqldb.Open(ctx, sqldb.DriverSQLite, "file:"+filepath.Join(t.TempDir(), "users.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	r, err := New(ctx, db, log.NewNop())
	require.NoError(t, err)

	created, err := r.CreateUser(ctx, repo.CreateUserOptions{
		Username:     "dana",
		Email:        "dana@example.com",
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	byEmail, err := r.GetOneUser(ctx, repo.GetOneUserOptions{Email: "dana@example.com"})
	require.NoError(t, err)
	assert.Equal(t, created, byEmail)

	byID, err := r.GetOneUser(ctx, repo.GetOneUserOptions{ID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, "hash", byID.PasswordHash)

	missing, err := r.GetOneUser(ctx, repo.GetOneUserOptions{ID: "nope"})
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	_, err = r.CreateUser(ctx, repo.CreateUserOptions{Username: "x", Email: "dana@example.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, repo.ErrDuplicateEmail)
}
