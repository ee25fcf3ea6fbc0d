package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "property-listings/pkg/errors"
)

// processCreateReq binds and validates the create listing request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, bindError(err)
	}
	return req, req.validate()
}

// processSearchReq binds and validates the search query parameters.
func (h *handler) processSearchReq(c *gin.Context) (searchReq, error) {
	var req searchReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewHTTPError(pkgErrors.ErrBadRequest.StatusCode, err.Error())
	}
	return req, req.validate()
}

// processUpdateReq binds and validates the update listing request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, bindError(err)
	}
	req.ID = c.Param("id")
	return req, req.validate()
}

// bindError keeps HTTP errors raised while decoding (bad price) and hides
// every other decoder message behind a generic one.
func bindError(err error) error {
	if he, ok := pkgErrors.AsHTTPError(err); ok {
		return he
	}
	return errMalformedRequest
}
