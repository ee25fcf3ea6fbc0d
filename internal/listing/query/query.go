// Package query derives the filtered, sorted view of the listing collection
// shown by the search page.
package query

import (
	"cmp"
	"slices"
	"strings"

	"property-listings/internal/listing"
)

// Match reports whether l passes every active filter of p.
func (p Params) Match(l listing.Listing) bool {
	if p.Status != "" && string(l.Status) != p.Status {
		return false
	}
	if p.Text != "" && !strings.Contains(haystack(l), p.Text) {
		return false
	}
	// Comparisons against NaN are false, so a NaN bound rejects everything.
	if p.MinPrice.Active && !(l.Price >= p.MinPrice.Value) {
		return false
	}
	if p.MaxPrice.Active && !(l.Price <= p.MaxPrice.Value) {
		return false
	}
	return true
}

func haystack(l listing.Listing) string {
	return l.Title + " " + l.Location + " " + l.Description
}

// Apply returns the listings matching p, in collection order unless p asks
// for a price sort. The sort is stable. The input slice is never modified
// and the result never aliases it.
func Apply(listings []listing.Listing, p Params) []listing.Listing {
	out := make([]listing.Listing, 0, len(listings))
	for _, l := range listings {
		if p.Match(l) {
			out = append(out, l)
		}
	}

	switch p.Sort {
	case SortPriceAscending:
		slices.SortStableFunc(out, func(a, b listing.Listing) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case SortPriceDescending:
		slices.SortStableFunc(out, func(a, b listing.Listing) int {
			return cmp.Compare(b.Price, a.Price)
		})
	}

	return out
}
