package http

import (
	"github.com/gin-gonic/gin"

	"property-listings/internal/user"
	"property-listings/pkg/log"
)

// Handler is the public interface for the auth HTTP delivery layer.
type Handler interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	Me(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc user.UseCase
}

// New creates a new HTTP handler for the user domain.
func New(l log.Logger, uc user.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
