// Command listingctl runs listing queries and seeding against the configured
// store without starting the HTTP server.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"property-listings/config"
	"property-listings/internal/listing"
	"property-listings/internal/listing/query"
	listingUsecase "property-listings/internal/listing/usecase"
	"property-listings/internal/storage"
	"property-listings/internal/user"
	userUsecase "property-listings/internal/user/usecase"
	"property-listings/pkg/log"
	"property-listings/pkg/scope"
)

var (
	// Storage overrides; empty keeps the config file value.
	driver      string
	dsn         string
	snapshotDir string
	verbose     bool

	// loadConfig is swapped out in tests.
	loadConfig = config.Load
)

var rootCmd = &cobra.Command{
	Use:           "listingctl",
	Short:         "Query and seed the property listings store",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&driver, "driver", "", "storage driver (memory, sqlite, postgres, pgx, mongo)")
	rootCmd.PersistentFlags().StringVar(&dsn, "dsn", "", "storage DSN")
	rootCmd.PersistentFlags().StringVar(&snapshotDir, "snapshot-dir", "", "snapshot directory for the memory driver")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")

	rootCmd.AddCommand(searchCmd, seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// app is the wired set of use cases a subcommand works with.
type app struct {
	cfg      *config.Config
	l        log.Logger
	listings listing.UseCase
	users    user.UseCase
	close    func()
}

func openApp(ctx context.Context) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if driver != "" {
		cfg.Storage.Driver = driver
	}
	if dsn != "" {
		cfg.Storage.DSN = dsn
	}
	if snapshotDir != "" {
		cfg.Storage.SnapshotDir = snapshotDir
	}

	level := "warn"
	if verbose {
		level = "debug"
	}
	l := log.Init(log.ZapConfig{Level: level, Mode: cfg.Logger.Mode, Encoding: "console"})

	stores, err := storage.Open(ctx, cfg.Storage, l)
	if err != nil {
		return nil, err
	}

	engine, err := query.NewEngine(stores.QueryCacheSize(cfg.Listing.QueryCacheSize))
	if err != nil {
		_ = stores.Close(ctx)
		return nil, err
	}
	jwtManager, err := scope.New(cfg.JWT.Secret, cfg.JWT.Expiration)
	if err != nil {
		_ = stores.Close(ctx)
		return nil, err
	}

	return &app{
		cfg:      cfg,
		l:        l,
		listings: listingUsecase.New(stores.Listings, engine, cfg.Listing.FeaturedCount, l),
		users:    userUsecase.New(stores.Users, jwtManager, l),
		close: func() {
			if err := stores.Close(context.Background()); err != nil {
				l.Warnf(context.Background(), "close storage: %v", err)
			}
		},
	}, nil
}
