package tmdb

import (
	"context"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"cinegrip/internal/domain"
	"cinegrip/internal/metrics"
)

// Searcher is anything that can turn a query into suggestions
type Searcher interface {
	Lookup(ctx context.Context, query string) ([]domain.Suggestion, error)
}

// CachedLookup memoises successful lookups in an expiring LRU. Failures are
// never cached so the next keystroke retries the network.
type CachedLookup struct {
	next    Searcher
	cache   *expirable.LRU[string, []domain.Suggestion]
	metrics *metrics.Search
}

// NewCachedLookup wraps next with a cache of size entries living for ttl
func NewCachedLookup(next Searcher, size int, ttl time.Duration, m *metrics.Search) *CachedLookup {
	return &CachedLookup{
		next:    next,
		cache:   expirable.NewLRU[string, []domain.Suggestion](size, nil, ttl),
		metrics: m,
	}
}

// Lookup implements Searcher
func (c *CachedLookup) Lookup(ctx context.Context, query string) ([]domain.Suggestion, error) {
	key := cacheKey(query)
	if hit, ok := c.cache.Get(key); ok {
		c.metrics.ObserveCacheHit()
		return hit, nil
	}

	suggestions, err := c.next.Lookup(ctx, query)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, suggestions)
	return suggestions, nil
}

// Purge drops every cached entry
func (c *CachedLookup) Purge() {
	c.cache.Purge()
}

// Len reports the number of cached queries
func (c *CachedLookup) Len() int {
	return c.cache.Len()
}

func cacheKey(query string) string {
	return strings.ToLower(strings.Join(strings.Fields(query), " "))
}
