package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"property-listings/config"
	listingRepo "property-listings/internal/listing/repository"
	listingMemory "property-listings/internal/listing/repository/memory"
	listingMongo "property-listings/internal/listing/repository/mongostore"
	listingSQL "property-listings/internal/listing/repository/sqlstore"
	userRepo "property-listings/internal/user/repository"
	userMemory "property-listings/internal/user/repository/memory"
	userMongo "property-listings/internal/user/repository/mongostore"
	userSQL "property-listings/internal/user/repository/sqlstore"
	"property-listings/pkg/jsonstore"
	"property-listings/pkg/log"
	"property-listings/pkg/sqldb"
)

// Snapshot file names used by the memory driver.
const (
	ListingsSnapshot = "listings.json"
	UsersSnapshot    = "users.json"
)

// Stores bundles the repositories of the configured backend.
type Stores struct {
	Listings listingRepo.Repository
	Users    userRepo.Repository

	driver string

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

// Ping reports whether the backend is reachable.
func (s *Stores) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

// QueryCacheSize returns the search cache size to use with these stores.
// Search results are memoized only for the memory driver, where this process
// is the single writer. Shared stores can change under another process, so
// caching is turned off for them.
func (s *Stores) QueryCacheSize(configured int) int {
	if s.driver != config.StorageMemory {
		return 0
	}
	return configured
}

// Close releases the backend connection.
func (s *Stores) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// Open connects to the backend named by cfg.Driver.
func Open(ctx context.Context, cfg config.StorageConfig, l log.Logger) (*Stores, error) {
	switch cfg.Driver {
	case config.StorageMemory, "":
		return openMemory(cfg, l)
	case config.StorageSQLite, config.StoragePostgres, config.StoragePgx:
		return openSQL(ctx, cfg, l)
	case config.StorageMongo:
		return openMongo(ctx, cfg, l)
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", cfg.Driver)
	}
}

func openMemory(cfg config.StorageConfig, l log.Logger) (*Stores, error) {
	var listingSnap, userSnap *jsonstore.Store
	if cfg.SnapshotDir != "" {
		var err error
		if listingSnap, err = jsonstore.New(filepath.Join(cfg.SnapshotDir, ListingsSnapshot)); err != nil {
			return nil, err
		}
		if userSnap, err = jsonstore.New(filepath.Join(cfg.SnapshotDir, UsersSnapshot)); err != nil {
			return nil, err
		}
	}

	listings, err := listingMemory.New(l, listingSnap)
	if err != nil {
		return nil, err
	}
	users, err := userMemory.New(l, userSnap)
	if err != nil {
		return nil, err
	}
	return &Stores{Listings: listings, Users: users, driver: config.StorageMemory}, nil
}

func openSQL(ctx context.Context, cfg config.StorageConfig, l log.Logger) (*Stores, error) {
	db, err := sqldb.Open(ctx, cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	listings, err := listingSQL.New(ctx, db, l)
	if err != nil {
		db.Close()
		return nil, err
	}
	users, err := userSQL.New(ctx, db, l)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Stores{
		Listings: listings,
		Users:    users,
		driver:   cfg.Driver,
		ping:     db.PingContext,
		close:    func(context.Context) error { return db.Close() },
	}, nil
}

func openMongo(ctx context.Context, cfg config.StorageConfig, l log.Logger) (*Stores, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DSN))
	if err != nil {
		return nil, fmt.Errorf("storage: mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("storage: mongo ping: %w", err)
	}

	db := client.Database(cfg.MongoDatabase)
	return &Stores{
		Listings: listingMongo.New(ctx, db, l),
		Users:    userMongo.New(ctx, db, l),
		driver:   config.StorageMongo,
		ping:     func(ctx context.Context) error { return client.Ping(ctx, nil) },
		close:    client.Disconnect,
	}, nil
}

// Monitor pings the backend every interval until ctx is done and logs when it
// becomes unreachable or recovers. It returns at once for stores without a
// connection.
func (s *Stores) Monitor(ctx context.Context, interval time.Duration, l log.Logger) error {
	if s.ping == nil || interval <= 0 {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	healthy := true
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		pingCtx, cancel := context.WithTimeout(ctx, interval)
		err := s.ping(pingCtx)
		cancel()
		if ctx.Err() != nil {
			return nil
		}

		switch {
		case err != nil && healthy:
			l.Errorf(ctx, "storage.Monitor: %s unreachable: %v", s.driver, err)
		case err == nil && !healthy:
			l.Infof(ctx, "storage.Monitor: %s reachable again", s.driver)
		}
		healthy = err == nil
	}
}
