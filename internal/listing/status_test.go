package listing_test

import (
	"math"
	"testing"

	"property-listings/internal/listing"
)

func TestParseStatus(t *testing.T) {
	tcs := map[string]struct {
		in     string
		want   listing.Status
		wantOK bool
	}{
		"available":        {in: "available", want: listing.StatusAvailable, wantOK: true},
		"sold upper":       {in: " SOLD ", want: listing.StatusSold, wantOK: true},
		"hebrew available": {in: "זמין", want: listing.StatusAvailable, wantOK: true},
		"hebrew sold":      {in: "נמכר", want: listing.StatusSold, wantOK: true},
		"unknown":          {in: "pending", wantOK: false},
		"empty":            {in: "", wantOK: false},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			got, ok := listing.ParseStatus(tc.in)
			if ok != tc.wantOK || got != tc.want {
				t.Errorf("ParseStatus(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestStatusToggle(t *testing.T) {
	if got := listing.StatusAvailable.Toggle(); got != listing.StatusSold {
		t.Errorf("available should toggle to sold, got %q", got)
	}
	if got := listing.StatusSold.Toggle(); got != listing.StatusAvailable {
		t.Errorf("sold should toggle to available, got %q", got)
	}
	if !listing.StatusSold.Toggle().Toggle().Valid() {
		t.Error("double toggle must stay valid")
	}
	if listing.Status("pending").Valid() {
		t.Error("unknown status must not be valid")
	}
}

func TestValidPrice(t *testing.T) {
	for _, p := range []float64{0, 1, 1500000.5} {
		if !listing.ValidPrice(p) {
			t.Errorf("expected %v to be valid", p)
		}
	}
	for _, p := range []float64{-1, math.NaN(), math.Inf(1)} {
		if listing.ValidPrice(p) {
			t.Errorf("expected %v to be invalid", p)
		}
	}
}
