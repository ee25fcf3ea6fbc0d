package http

import (
	"github.com/gin-gonic/gin"

	"property-listings/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Reads are public; every mutation and the owner view require Auth.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	listings := rg.Group("/listings")
	{
		listings.GET("", h.Search)
		listings.GET("/featured", h.Featured)
		listings.GET("/mine", mw.Auth(), h.Mine)
		listings.GET("/:id", h.Detail)
		listings.POST("", mw.Auth(), h.Create)
		listings.PUT("/:id", mw.Auth(), h.Update)
		listings.PATCH("/:id/status", mw.Auth(), h.ToggleStatus)
		listings.DELETE("/:id", mw.Auth(), h.Delete)
	}
}
