package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"property-listings/config"
	"property-listings/internal/httpserver"
	"property-listings/internal/listing/query"
	listingUsecase "property-listings/internal/listing/usecase"
	"property-listings/internal/seed"
	"property-listings/internal/storage"
	userUsecase "property-listings/internal/user/usecase"
	"property-listings/pkg/log"
	"property-listings/pkg/scope"
)

// @title                      Property Listings API
// @description                Publish, search and manage real-estate listings.
// @version                    1
// @host                       localhost:8080
// @BasePath                   /api/v1
// @schemes                    http
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Property Listings...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage driver: %s", cfg.Storage.Driver)

	if lv, ok := logger.(log.Leveler); ok {
		config.Watch(func(level string) {
			if err := lv.SetLevel(level); err != nil {
				logger.Warnf(ctx, "Ignoring logger level %q: %v", level, err)
				return
			}
			logger.Infof(ctx, "Logger level set to %s", level)
		})
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(ctx, "Server stopped with error: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

const storageMonitorInterval = 30 * time.Second

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	// 3. Storage
	stores, err := storage.Open(ctx, cfg.Storage, logger)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if err := stores.Close(context.Background()); err != nil {
			logger.Warnf(ctx, "Failed to close storage: %v", err)
		}
	}()

	// 4. Domains
	cacheSize := stores.QueryCacheSize(cfg.Listing.QueryCacheSize)
	if cacheSize != cfg.Listing.QueryCacheSize {
		logger.Infof(ctx, "Search cache disabled for shared %s storage", cfg.Storage.Driver)
	}
	engine, err := query.NewEngine(cacheSize)
	if err != nil {
		return fmt.Errorf("query engine: %w", err)
	}
	jwtManager, err := scope.New(cfg.JWT.Secret, cfg.JWT.Expiration)
	if err != nil {
		return fmt.Errorf("jwt manager: %w", err)
	}

	listingUC := listingUsecase.New(stores.Listings, engine, cfg.Listing.FeaturedCount, logger)
	userUC := userUsecase.New(stores.Users, jwtManager, logger)

	// 5. Seed data
	if cfg.Seed.Path != "" {
		file, err := seed.Load(cfg.Seed.Path)
		if err != nil {
			return fmt.Errorf("load seed: %w", err)
		}
		res, err := seed.Apply(ctx, file, userUC, listingUC, false, logger)
		if err != nil {
			return fmt.Errorf("apply seed: %w", err)
		}
		if !res.Skipped {
			logger.Infof(ctx, "Seeded %d users and %d listings", res.Users, res.Listings)
		}
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		JWTManager:      jwtManager,
		RateLimitPerMin: cfg.RateLimit.AuthPerMin,
		ReadyCheck:      stores.Ping,
		ListingUseCase:  listingUC,
		UserUseCase:     userUC,
	})
	if err != nil {
		return fmt.Errorf("init HTTP server: %w", err)
	}

	// 7. Run server and storage monitor; either failing stops both.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpServer.Run(gctx)
	})
	g.Go(func() error {
		return stores.Monitor(gctx, storageMonitorInterval, logger)
	})
	return g.Wait()
}
