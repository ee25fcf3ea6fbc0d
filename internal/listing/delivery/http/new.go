package http

import (
	"github.com/gin-gonic/gin"

	"property-listings/internal/listing"
	"property-listings/pkg/log"
)

// Handler is the public interface for the listing HTTP delivery layer.
type Handler interface {
	Search(c *gin.Context)
	Featured(c *gin.Context)
	Mine(c *gin.Context)
	Detail(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	ToggleStatus(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc listing.UseCase
}

// New creates a new HTTP handler for the listing domain.
func New(l log.Logger, uc listing.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
