package http

import (
	"github.com/gin-gonic/gin"

	"property-listings/internal/middleware"
)

// RegisterRoutes maps the auth endpoints. Credential endpoints are rate
// limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", mw.RateLimit(), h.Register)
		auth.POST("/login", mw.RateLimit(), h.Login)
		auth.GET("/me", mw.Auth(), h.Me)
	}
}
