package http

import (
	"bytes"
	"encoding/json"
	"strings"

	"property-listings/internal/listing"
	"property-listings/internal/listing/query"
	"property-listings/pkg/response"
)

// MaxPageSize caps the limit query parameter.
const MaxPageSize = 100

// price accepts a JSON number or a numeric string ("1200000").
type price float64

func (p *price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		b := query.ParseBound(strings.TrimSpace(s))
		if !b.Active || !b.Valid() {
			return errInvalidPrice
		}
		*p = price(b.Value)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return errInvalidPrice
	}
	*p = price(f)
	return nil
}

// --- Request DTOs ---

type createReq struct {
	Title       string `json:"title"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Price       *price `json:"price" swaggertype:"number"`
	Status      string `json:"status"`
}

func (r createReq) validate() error {
	if r.Price == nil {
		return errPriceRequired
	}
	return nil
}

func (r createReq) toInput() listing.CreateListingInput {
	return listing.CreateListingInput{
		Title:       r.Title,
		Location:    r.Location,
		Description: r.Description,
		Price:       float64(*r.Price),
		Status:      r.Status,
	}
}

// ---

type searchReq struct {
	Text     string `form:"q"`
	Status   string `form:"status"`
	MinPrice string `form:"min_price"`
	MaxPrice string `form:"max_price"`
	Sort     string `form:"sort"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

// validate rejects price bounds that are not numbers. The query engine would
// accept them and match nothing, which is never what an API caller meant.
func (r searchReq) validate() error {
	if !query.ParseBound(r.MinPrice).Valid() {
		return errInvalidMinPrice
	}
	if !query.ParseBound(r.MaxPrice).Valid() {
		return errInvalidMaxPrice
	}
	if r.Limit < 0 || r.Offset < 0 {
		return errInvalidPaging
	}
	return nil
}

func (r searchReq) toInput() listing.SearchInput {
	limit := r.Limit
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return listing.SearchInput{
		Text:     r.Text,
		Status:   strings.TrimSpace(r.Status),
		MinPrice: r.MinPrice,
		MaxPrice: r.MaxPrice,
		Sort:     r.Sort,
		Limit:    limit,
		Offset:   r.Offset,
	}
}

// ---

type updateReq struct {
	ID          string  `json:"-"` // populated from URI param
	Title       *string `json:"title"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	Price       *price  `json:"price" swaggertype:"number"`
	Status      *string `json:"status"`
}

func (r updateReq) validate() error {
	if r.ID == "" {
		return errIDRequired
	}
	return nil
}

func (r updateReq) toInput() listing.UpdateListingInput {
	in := listing.UpdateListingInput{
		ID:          r.ID,
		Title:       r.Title,
		Location:    r.Location,
		Description: r.Description,
		Status:      r.Status,
	}
	if r.Price != nil {
		p := float64(*r.Price)
		in.Price = &p
	}
	return in
}

// --- Response DTOs ---

type listingResp struct {
	ID          string             `json:"id"`
	UserID      string             `json:"user_id"`
	Title       string             `json:"title"`
	Location    string             `json:"location"`
	Description string             `json:"description"`
	Price       float64            `json:"price"`
	Status      string             `json:"status"`
	StatusLabel string             `json:"status_label"`
	CreatedAt   response.Timestamp `json:"created_at"`
	UpdatedAt   response.Timestamp `json:"updated_at"`
}

func newListingResp(l listing.Listing) listingResp {
	return listingResp{
		ID:          l.ID,
		UserID:      l.UserID,
		Title:       l.Title,
		Location:    l.Location,
		Description: l.Description,
		Price:       l.Price,
		Status:      string(l.Status),
		StatusLabel: l.Status.Label(),
		CreatedAt:   response.Timestamp(l.CreatedAt),
		UpdatedAt:   response.Timestamp(l.UpdatedAt),
	}
}

func newListingResps(ls []listing.Listing) []listingResp {
	out := make([]listingResp, len(ls))
	for i, l := range ls {
		out[i] = newListingResp(l)
	}
	return out
}

type itemResp struct {
	Listing listingResp `json:"listing"`
}

type searchResp struct {
	Listings []listingResp `json:"listings"`
	Total    int           `json:"total"`
	Limit    int           `json:"limit"`
	Offset   int           `json:"offset"`
}

func (h *handler) newSearchResp(out listing.SearchOutput) searchResp {
	return searchResp{
		Listings: newListingResps(out.Listings),
		Total:    out.Total,
		Limit:    out.Limit,
		Offset:   out.Offset,
	}
}

type collectionResp struct {
	Listings []listingResp `json:"listings"`
}

func (h *handler) newItemResp(l listing.Listing) itemResp {
	return itemResp{Listing: newListingResp(l)}
}

func (h *handler) newCollectionResp(ls []listing.Listing) collectionResp {
	return collectionResp{Listings: newListingResps(ls)}
}
