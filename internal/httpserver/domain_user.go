package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	userHTTP "property-listings/internal/user/delivery/http"
)

// setupUserDomain registers /api/v1/auth.
func (srv HTTPServer) setupUserDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. HTTP Handler
	h := userHTTP.New(srv.l, srv.userUC)

	// 2. Routes
	userHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "User domain registered")
	return nil
}
