package query

import (
	"context"
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"property-listings/internal/listing"
)

// Loader returns the full listing collection in insertion order.
type Loader func(ctx context.Context) ([]listing.Listing, error)

type cacheKey struct {
	revision uint64
	text     string
	status   string
	minPrice string
	maxPrice string
	sort     SortKey
}

func newCacheKey(revision uint64, p Params) cacheKey {
	return cacheKey{
		revision: revision,
		text:     p.Text,
		status:   p.Status,
		minPrice: p.MinPrice.Text,
		maxPrice: p.MaxPrice.Text,
		sort:     p.Sort,
	}
}

// Engine memoizes Apply. Results are cached per (collection revision,
// params); the caller bumps the revision whenever the collection changes.
type Engine struct {
	cache  *lru.Cache[cacheKey, []listing.Listing]
	hits   atomic.Uint64
	misses atomic.Uint64
}

// Stats counts cache lookups.
type Stats struct {
	Hits   uint64
	Misses uint64
}

// NewEngine creates an Engine caching up to size results. size <= 0
// disables caching.
func NewEngine(size int) (*Engine, error) {
	e := &Engine{}
	if size <= 0 {
		return e, nil
	}

	cache, err := lru.New[cacheKey, []listing.Listing](size)
	if err != nil {
		return nil, fmt.Errorf("query: new cache: %w", err)
	}
	e.cache = cache
	return e, nil
}

// Query returns Apply(load(), p), reusing an earlier result computed for the
// same revision and params. The returned slice is always owned by the caller.
func (e *Engine) Query(ctx context.Context, revision uint64, p Params, load Loader) ([]listing.Listing, error) {
	key := newCacheKey(revision, p)
	if e.cache != nil {
		if cached, ok := e.cache.Get(key); ok {
			e.hits.Add(1)
			return clone(cached), nil
		}
	}
	e.misses.Add(1)

	all, err := load(ctx)
	if err != nil {
		return nil, err
	}

	result := Apply(all, p)
	if e.cache != nil {
		e.cache.Add(key, clone(result))
	}
	return result, nil
}

// Purge drops every cached result.
func (e *Engine) Purge() {
	if e.cache != nil {
		e.cache.Purge()
	}
}

// Stats returns the hit and miss counters.
func (e *Engine) Stats() Stats {
	return Stats{Hits: e.hits.Load(), Misses: e.misses.Load()}
}

func clone(in []listing.Listing) []listing.Listing {
	out := make([]listing.Listing, len(in))
	copy(out, in)
	return out
}
