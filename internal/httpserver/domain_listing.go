package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	listingHTTP "property-listings/internal/listing/delivery/http"
)

// setupListingDomain registers /api/v1/listings.
//
// Repositories and use cases are built by the caller (they are shared with
// the seed loader); this only wires the HTTP layer:
//  1. Create HTTP Handler: h := listingHTTP.New(srv.l, srv.listingUC)
//  2. Register Routes:     listingHTTP.RegisterRoutes(api, h, srv.mw)
func (srv HTTPServer) setupListingDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. HTTP Handler
	h := listingHTTP.New(srv.l, srv.listingUC)

	// 2. Routes
	listingHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Listing domain registered")
	return nil
}
