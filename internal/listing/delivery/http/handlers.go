package http

import (
	"github.com/gin-gonic/gin"

	"property-listings/internal/model"
	"property-listings/pkg/response"
)

// Search godoc
// @Summary     Search listings
// @Description Filters listings by free text, status and an inclusive price range, then optionally sorts by price. Without a sort the collection order is kept.
// @Tags        Listings
// @Accept      json
// @Produce     json
// @Param       q         query string false "Case-sensitive substring of title, location and description"
// @Param       status    query string false "available or sold"
// @Param       min_price query string false "Inclusive lower price bound"
// @Param       max_price query string false "Inclusive upper price bound"
// @Param       sort      query string false "priceAscending or priceDescending"
// @Param       limit     query int    false "Page size (0 = all, max 100)"
// @Param       offset    query int    false "Page offset"
// @Success     200 {object} searchResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/listings [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Search(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Search: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSearchResp(output))
}

// Featured godoc
// @Summary     Featured listings
// @Description Returns the first listings of the collection, as shown on the home page.
// @Tags        Listings
// @Produce     json
// @Success     200 {object} collectionResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/listings/featured [GET]
func (h *handler) Featured(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Featured(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Featured: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCollectionResp(output.Listings))
}

// Mine godoc
// @Summary     My listings
// @Description Returns the caller's listings in creation order.
// @Tags        Listings
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} collectionResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/listings/mine [GET]
func (h *handler) Mine(c *gin.Context) {
	ctx := c.Request.Context()
	sc := model.GetScopeFromContext(ctx)

	output, err := h.uc.Mine(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Mine: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCollectionResp(output.Listings))
}

// Detail godoc
// @Summary     Get listing detail
// @Description Returns a single listing by its ID.
// @Tags        Listings
// @Produce     json
// @Param       id path string true "Listing ID"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/listings/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newItemResp(output.Listing))
}

// Create godoc
// @Summary     Publish a listing
// @Description Creates a listing owned by the caller. Status defaults to available.
// @Tags        Listings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Listing data"
// @Success     201 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/listings [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	sc := model.GetScopeFromContext(ctx)

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, h.newItemResp(output.Listing))
}

// Update godoc
// @Summary     Update a listing
// @Description Updates a listing owned by the caller. All fields are optional (partial update).
// @Tags        Listings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string    true "Listing ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/listings/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	sc := model.GetScopeFromContext(ctx)

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newItemResp(output.Listing))
}

// ToggleStatus godoc
// @Summary     Toggle listing status
// @Description Flips a listing owned by the caller between available and sold.
// @Tags        Listings
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Listing ID"
// @Success     200 {object} itemResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/listings/{id}/status [PATCH]
func (h *handler) ToggleStatus(c *gin.Context) {
	ctx := c.Request.Context()
	sc := model.GetScopeFromContext(ctx)

	output, err := h.uc.ToggleStatus(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleStatus: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newItemResp(output.Listing))
}

// Delete godoc
// @Summary     Delete a listing
// @Description Permanently removes a listing owned by the caller.
// @Tags        Listings
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Listing ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/listings/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	sc := model.GetScopeFromContext(ctx)

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
