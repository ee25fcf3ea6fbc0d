package http

import (
	"github.com/gin-gonic/gin"
)

// processRegisterReq binds the registration body. Field rules live in the use case.
func (h *handler) processRegisterReq(c *gin.Context) (registerReq, error) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errMalformedRequest
	}
	return req, nil
}

// processLoginReq binds the login body.
func (h *handler) processLoginReq(c *gin.Context) (loginReq, error) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errMalformedRequest
	}
	return req, nil
}
