package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"property-listings/internal/model"
	"property-listings/pkg/response"
)

const bearerPrefix = "Bearer "

// Auth requires a valid session token in the Authorization header and stores
// the caller's Scope on the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			response.Unauthorized(c)
			return
		}

		payload, err := m.jwtManager.Verify(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
		if err != nil {
			m.l.Debugf(ctx, "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		ctx = model.SetScopeToContext(ctx, model.Scope{UserID: payload.UserID})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
