package query_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"property-listings/internal/listing"
	"property-listings/internal/listing/query"
)

func ids(ls []listing.Listing) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = l.ID
	}
	return out
}

func fixture() []listing.Listing {
	return []listing.Listing{
		{ID: "1", Title: "Garden flat", Location: "Haifa", Description: "quiet street", Price: 900000, Status: listing.StatusAvailable},
		{ID: "2", Title: "Penthouse", Location: "Tel Aviv", Price: 4200000, Status: listing.StatusSold},
		{ID: "3", Title: "Studio", Location: "Haifa", Description: "near the port", Price: 900000, Status: listing.StatusAvailable},
		{ID: "4", Title: "Cottage", Location: "Galilee", Description: "Garden and orchard", Price: 1500000, Status: listing.StatusAvailable},
		{ID: "5", Title: "Loft", Location: "Jaffa", Price: 900000, Status: listing.StatusSold},
	}
}

func TestApplyScenario(t *testing.T) {
	collection := []listing.Listing{
		{ID: "1", Price: 100, Status: listing.StatusAvailable, Title: "A", Location: "X"},
		{ID: "2", Price: 200, Status: listing.StatusSold, Title: "B", Location: "Y"},
	}

	tcs := map[string]struct {
		params query.Params
		want   []string
	}{
		"status available": {params: query.NewParams("", "available", "", "", ""), want: []string{"1"}},
		"min price 150":    {params: query.NewParams("", "", "150", "", ""), want: []string{"2"}},
		"price descending": {params: query.NewParams("", "", "", "", "priceDescending"), want: []string{"2", "1"}},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			got := ids(query.Apply(collection, tc.params))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("unexpected result (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyFilters(t *testing.T) {
	tcs := map[string]struct {
		params query.Params
		want   []string
	}{
		"text in title":            {params: query.NewParams("Garden", "", "", "", ""), want: []string{"1", "4"}},
		"text is case sensitive":   {params: query.NewParams("garden", "", "", "", ""), want: []string{}},
		"text spans fields":        {params: query.NewParams("flat Haifa", "", "", "", ""), want: []string{"1"}},
		"text in description":      {params: query.NewParams("port", "", "", "", ""), want: []string{"3"}},
		"missing description":      {params: query.NewParams("Tel Aviv ", "", "", "", ""), want: []string{"2"}},
		"status sold":              {params: query.NewParams("", "sold", "", "", ""), want: []string{"2", "5"}},
		"status localized label":   {params: query.NewParams("", "נמכר", "", "", ""), want: []string{"2", "5"}},
		"unknown status":           {params: query.NewParams("", "pending", "", "", ""), want: []string{}},
		"min bound inclusive":      {params: query.NewParams("", "", "1500000", "", ""), want: []string{"2", "4"}},
		"max bound inclusive":      {params: query.NewParams("", "", "", "900000", ""), want: []string{"1", "3", "5"}},
		"range":                    {params: query.NewParams("", "", "900000", "1500000", ""), want: []string{"1", "3", "4", "5"}},
		"inverted range":           {params: query.NewParams("", "", "2000000", "1000000", ""), want: []string{}},
		"non numeric bound":        {params: query.NewParams("", "", "cheap", "", ""), want: []string{}},
		"whitespace bound is zero": {params: query.NewParams("", "", " ", "", ""), want: []string{"1", "2", "3", "4", "5"}},
		"conjunction":              {params: query.NewParams("Haifa", "available", "", "900000", ""), want: []string{"1", "3"}},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			got := ids(query.Apply(fixture(), tc.params))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("unexpected result (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplySortIsStable(t *testing.T) {
	asc := query.Apply(fixture(), query.NewParams("", "", "", "", "priceAsc"))
	if diff := cmp.Diff([]string{"1", "3", "5", "4", "2"}, ids(asc)); diff != "" {
		t.Errorf("ascending (-want +got):\n%s", diff)
	}
	for i := 1; i < len(asc); i++ {
		if asc[i-1].Price > asc[i].Price {
			t.Errorf("ascending order broken at %d", i)
		}
	}

	desc := query.Apply(fixture(), query.NewParams("", "", "", "", "priceDesc"))
	if diff := cmp.Diff([]string{"2", "4", "1", "3", "5"}, ids(desc)); diff != "" {
		t.Errorf("descending (-want +got):\n%s", diff)
	}

	// Equal prices keep their filtered order after a filter too.
	filtered := query.Apply(fixture(), query.NewParams("", "available", "", "", "priceDesc"))
	if diff := cmp.Diff([]string{"4", "1", "3"}, ids(filtered)); diff != "" {
		t.Errorf("filtered descending (-want +got):\n%s", diff)
	}
}

func TestApplyIdentityAndPurity(t *testing.T) {
	src := fixture()
	snapshot := fixture()

	got := query.Apply(src, query.Params{})
	if diff := cmp.Diff(src, got); diff != "" {
		t.Errorf("empty params must be identity (-want +got):\n%s", diff)
	}

	_ = query.Apply(src, query.NewParams("", "", "", "", "priceDesc"))
	if diff := cmp.Diff(snapshot, src); diff != "" {
		t.Errorf("source collection was mutated (-want +got):\n%s", diff)
	}

	got[0].Title = "changed"
	if src[0].Title == "changed" {
		t.Error("result must not alias the source collection")
	}
}

func TestApplyIdempotent(t *testing.T) {
	p := query.NewParams("a", "available", "100", "2000000", "priceAsc")
	first := query.Apply(fixture(), p)
	second := query.Apply(fixture(), p)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("results differ between calls (-first +second):\n%s", diff)
	}
}

func TestApplyConjunctionProperty(t *testing.T) {
	p := query.NewParams("a", "available", "900000", "1500000", "")
	got := query.Apply(fixture(), p)

	in := map[string]bool{}
	for _, l := range got {
		in[l.ID] = true
		if !p.Match(l) {
			t.Errorf("listing %s in result fails a filter", l.ID)
		}
	}
	for _, l := range fixture() {
		if !in[l.ID] && p.Match(l) {
			t.Errorf("listing %s matches every filter but was excluded", l.ID)
		}
	}
}

func TestParseBound(t *testing.T) {
	tcs := map[string]struct {
		in     string
		active bool
		value  float64
	}{
		"empty":       {in: "", active: false},
		"integer":     {in: "150", active: true, value: 150},
		"padded":      {in: "  42.5 ", active: true, value: 42.5},
		"blank":       {in: "   ", active: true, value: 0},
		"exponent":    {in: "1e3", active: true, value: 1000},
		"hex":         {in: "0x10", active: true, value: 16},
		"binary":      {in: "0b101", active: true, value: 5},
		"infinity":    {in: "Infinity", active: true, value: math.Inf(1)},
		"neg inf":     {in: "-Infinity", active: true, value: math.Inf(-1)},
		"overflow":    {in: "1e400", active: true, value: math.Inf(1)},
		"word":        {in: "abc", active: true, value: math.NaN()},
		"lower inf":   {in: "inf", active: true, value: math.NaN()},
		"underscores": {in: "1_000", active: true, value: math.NaN()},
		"trailing":    {in: "12abc", active: true, value: math.NaN()},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			b := query.ParseBound(tc.in)
			if b.Active != tc.active {
				t.Fatalf("Active = %v, want %v", b.Active, tc.active)
			}
			if !tc.active {
				return
			}
			if math.IsNaN(tc.value) {
				if !math.IsNaN(b.Value) || b.Valid() {
					t.Errorf("expected NaN invalid bound, got %v", b.Value)
				}
				return
			}
			if b.Value != tc.value || !b.Valid() {
				t.Errorf("Value = %v, want %v", b.Value, tc.value)
			}
		})
	}
}

func TestParseSortKey(t *testing.T) {
	tcs := map[string]query.SortKey{
		"":                query.SortNone,
		"none":            query.SortNone,
		"priceAsc":        query.SortPriceAscending,
		"priceAscending":  query.SortPriceAscending,
		"price_asc":       query.SortPriceAscending,
		"priceDesc":       query.SortPriceDescending,
		"priceDescending": query.SortPriceDescending,
		"newest":          query.SortNone,
	}
	for in, want := range tcs {
		if got := query.ParseSortKey(in); got != want {
			t.Errorf("ParseSortKey(%q) = %v, want %v", in, got, want)
		}
	}
}
