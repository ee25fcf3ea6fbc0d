package query

import (
	"math"
	"strconv"
	"strings"

	"property-listings/internal/listing"
)

// SortKey selects the order of a query result.
type SortKey int

const (
	SortNone SortKey = iota
	SortPriceAscending
	SortPriceDescending
)

// ParseSortKey accepts the camelCase names used by the web client and a few
// spellings of them. Anything unrecognised means no sorting.
func ParseSortKey(s string) SortKey {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "priceascending", "priceasc", "price_asc", "price-asc":
		return SortPriceAscending
	case "pricedescending", "pricedesc", "price_desc", "price-desc":
		return SortPriceDescending
	}
	return SortNone
}

func (k SortKey) String() string {
	switch k {
	case SortPriceAscending:
		return "priceAscending"
	case SortPriceDescending:
		return "priceDescending"
	}
	return "none"
}

// Bound is an optional inclusive price bound typed as text.
type Bound struct {
	Text   string
	Active bool
	Value  float64 // NaN when Text is not a number
}

// ParseBound converts bound text the way a browser number coercion does:
// surrounding whitespace is ignored, blank text is zero and anything that is
// not a number becomes NaN. Only the empty string leaves the bound inactive.
func ParseBound(text string) Bound {
	if text == "" {
		return Bound{}
	}
	return Bound{Text: text, Active: true, Value: toNumber(text)}
}

// Valid reports whether an active bound holds a real number.
func (b Bound) Valid() bool {
	return !b.Active || !math.IsNaN(b.Value)
}

func toNumber(text string) float64 {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0
	}

	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "0x") || strings.HasPrefix(lower, "0o") || strings.HasPrefix(lower, "0b") {
		if strings.Contains(s, "_") {
			return math.NaN()
		}
		n, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return math.NaN()
		}
		return float64(n)
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	// ParseFloat is more lenient than a browser here.
	if strings.Contains(lower, "inf") || strings.Contains(lower, "nan") || strings.Contains(s, "_") {
		return math.NaN()
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// ParseFloat reports overflow as an error but still returns ±Inf.
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return f
		}
		return math.NaN()
	}
	return f
}

// Params is a parsed set of filter and sort criteria.
type Params struct {
	Text     string
	Status   string
	MinPrice Bound
	MaxPrice Bound
	Sort     SortKey
}

// NewParams builds Params from raw user input. A recognised status label is
// normalised to its canonical value; any other non-empty status is kept
// verbatim and will match nothing.
func NewParams(text, status, minPrice, maxPrice, sort string) Params {
	if st, ok := listing.ParseStatus(status); ok {
		status = string(st)
	}
	return Params{
		Text:     text,
		Status:   status,
		MinPrice: ParseBound(minPrice),
		MaxPrice: ParseBound(maxPrice),
		Sort:     ParseSortKey(sort),
	}
}

// IsZero reports whether no filter and no sort is requested.
func (p Params) IsZero() bool {
	return p.Text == "" && p.Status == "" && !p.MinPrice.Active && !p.MaxPrice.Active && p.Sort == SortNone
}
