package http

import (
	"github.com/gin-gonic/gin"

	"property-listings/internal/model"
	"property-listings/pkg/response"
)

// Register godoc
// @Summary     Register
// @Description Creates an account and returns a session token for it.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body registerReq true "Account data"
// @Success     201 {object} authResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - email already registered"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRegisterReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Register: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, h.newAuthResp(output))
}

// Login godoc
// @Summary     Login
// @Description Exchanges email and password for a session token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} authResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Login: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAuthResp(output))
}

// Me godoc
// @Summary     Current user
// @Description Returns the account of the session token's owner.
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} meResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()
	sc := model.GetScopeFromContext(ctx)

	output, err := h.uc.Me(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Me: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newMeResp(output))
}
