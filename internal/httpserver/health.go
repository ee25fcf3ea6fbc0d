package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "property-listings/pkg/errors"
	"property-listings/pkg/response"
)

const (
	ServiceName    = "property-listings"
	ServiceVersion = "1.0.0"
)

var errStorageUnavailable = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "storage unavailable")

type probeResp struct {
	Status      string `json:"status"`
	Service     string `json:"service"`
	Version     string `json:"version"`
	Environment string `json:"environment,omitempty"`
}

func (srv HTTPServer) probe(status string) probeResp {
	return probeResp{
		Status:      status,
		Service:     ServiceName,
		Version:     ServiceVersion,
		Environment: srv.environment,
	}
}

// healthCheck
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp{data=probeResp}
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.probe("healthy"))
}

// readyCheck answers 503 while the storage backend is unreachable.
// @Summary Readiness check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp{data=probeResp}
// @Failure 503 {object} response.Resp
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()
	if srv.ready != nil {
		if err := srv.ready(ctx); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck: %v", err)
			response.Error(c, errStorageUnavailable, nil)
			return
		}
	}
	response.OK(c, srv.probe("ready"))
}

// liveCheck
// @Summary Liveness check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp{data=probeResp}
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.probe("alive"))
}
