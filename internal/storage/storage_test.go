package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-listings/config"
	"property-listings/internal/listing"
	"property-listings/internal/listing/query"
	listingRepo "property-listings/internal/listing/repository"
	listingUsecase "property-listings/internal/listing/usecase"
	"property-listings/internal/model"
	userRepo "property-listings/internal/user/repository"
	"property-listings/pkg/log"
)

func exercise(t *testing.T, s *Stores) {
	t.Helper()
	ctx := context.Background()

	u, err := s.Users.CreateUser(ctx, userRepo.CreateUserOptions{Username: "dana", Email: "dana@example.com", PasswordHash: "h"})
	require.NoError(t, err)

	l, err := s.Listings.CreateListing(ctx, listingRepo.CreateListingOptions{
		UserID:   u.ID,
		Title:    "A",
		Location: "X",
		Price:    1,
		Status:   listing.StatusAvailable,
	})
	require.NoError(t, err)

	got, err := s.Listings.GetOneListing(ctx, listingRepo.GetOneListingOptions{ID: l.ID})
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.UserID)
	assert.NoError(t, s.Ping(ctx))
}

func TestOpenMemory(t *testing.T) {
	s, err := Open(context.Background(), config.StorageConfig{Driver: config.StorageMemory}, log.NewNop())
	require.NoError(t, err)
	defer s.Close(context.Background())
	exercise(t, s)
}

func TestOpenMemoryWithSnapshots(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	s, err := Open(context.Background(), config.StorageConfig{Driver: config.StorageMemory, SnapshotDir: dir}, log.NewNop())
	require.NoError(t, err)
	exercise(t, s)

	for _, name := range []string{ListingsSnapshot, UsersSnapshot} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestOpenSQLite(t *testing.T) {
	cfg := config.StorageConfig{
		Driver: config.StorageSQLite,
		DSN:    "file:" + filepath.Join(t.TempDir(), "app.db"),
	}
	s, err := Open(context.Background(), cfg, log.NewNop())
	require.NoError(t, err)
	defer s.Close(context.Background())
	exercise(t, s)
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), config.StorageConfig{Driver: "redis"}, log.NewNop())
	assert.Error(t, err)
}

func TestQueryCacheSize(t *testing.T) {
	mem, err := Open(context.Background(), config.StorageConfig{Driver: config.StorageMemory}, log.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 64, mem.QueryCacheSize(64))

	sqlite, err := Open(context.Background(), config.StorageConfig{
		Driver: config.StorageSQLite,
		DSN:    "file:" + filepath.Join(t.TempDir(), "app.db"),
	}, log.NewNop())
	require.NoError(t, err)
	defer sqlite.Close(context.Background())
	assert.Zero(t, sqlite.QueryCacheSize(64))
}

// Two processes sharing one sqlite file: a listing written by one must show
// up in the other's next search.
func TestSharedStoreSearchSeesOtherWriters(t *testing.T) {
	ctx := context.Background()
	cfg := config.StorageConfig{
		Driver: config.StorageSQLite,
		DSN:    "file:" + filepath.Join(t.TempDir(), "shared.db"),
	}

	newUseCase := func() listing.UseCase {
		s, err := Open(ctx, cfg, log.NewNop())
		require.NoError(t, err)
		t.Cleanup(func() { s.Close(context.Background()) })

		engine, err := query.NewEngine(s.QueryCacheSize(64))
		require.NoError(t, err)
		return listingUsecase.New(s.Listings, engine, 0, log.NewNop())
	}
	server, writer := newUseCase(), newUseCase()

	before, err := server.Search(ctx, listing.SearchInput{})
	require.NoError(t, err)
	require.Zero(t, before.Total)

	_, err = writer.Create(ctx, model.Scope{UserID: "u1"}, listing.CreateListingInput{
		Title:    "Garden apartment",
		Location: "Haifa",
		Price:    1850000,
	})
	require.NoError(t, err)

	after, err := server.Search(ctx, listing.SearchInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, after.Total)
}

func TestMonitor(t *testing.T) {
	t.Run("no connection returns at once", func(t *testing.T) {
		s := &Stores{}
		assert.NoError(t, s.Monitor(context.Background(), time.Millisecond, log.NewNop()))
	})

	t.Run("pings until cancelled", func(t *testing.T) {
		var calls atomic.Int32
		s := &Stores{
			driver: config.StorageSQLite,
			ping: func(context.Context) error {
				if calls.Add(1)%2 == 0 {
					return errors.New("connection refused")
				}
				return nil
			},
		}

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- s.Monitor(ctx, time.Millisecond, log.NewNop()) }()

		require.Eventually(t, func() bool { return calls.Load() >= 4 }, time.Second, time.Millisecond)
		cancel()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("Monitor did not return after cancel")
		}
	})
}
