package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"property-listings/internal/listing"
	"property-listings/internal/middleware"
	"property-listings/internal/user"
	"property-listings/pkg/log"
	"property-listings/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin            *gin.Engine
	l              log.Logger
	port           int
	mode           string
	environment    string
	allowedOrigins []string
	mw             middleware.Middleware
	ready          func(ctx context.Context) error

	// Domains
	listingUC listing.UseCase
	userUC    user.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger         log.Logger
	Port           int
	Mode           string
	Environment    string
	AllowedOrigins []string

	// Auth
	JWTManager      scope.Manager
	RateLimitPerMin int

	// ReadyCheck reports whether the storage backend is reachable. Optional.
	ReadyCheck func(ctx context.Context) error

	// Domains
	ListingUseCase listing.UseCase
	UserUseCase    user.UseCase
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		allowedOrigins: cfg.AllowedOrigins,
		ready:          cfg.ReadyCheck,
		listingUC:      cfg.ListingUseCase,
		userUC:         cfg.UserUseCase,
	}

	if err := srv.validate(cfg); err != nil {
		return nil, err
	}
	srv.mw = middleware.New(logger, cfg.JWTManager, cfg.RateLimitPerMin)

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate(cfg Config) error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if cfg.JWTManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.listingUC == nil || srv.userUC == nil {
		return errors.New("listing and user use cases are required")
	}
	return nil
}

// Handler exposes the gin engine, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
