package tmdb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"cinegrip/internal/domain"
	"cinegrip/internal/metrics"
)

type countingSearcher struct {
	calls map[string]int
	err   error
}

func (s *countingSearcher) Lookup(_ context.Context, query string) ([]domain.Suggestion, error) {
	if s.calls == nil {
		s.calls = map[string]int{}
	}
	s.calls[query]++
	if s.err != nil {
		return nil, s.err
	}
	return []domain.Suggestion{{ID: "1", Kind: domain.KindMovie, DisplayName: query}}, nil
}

func TestCachedLookupServesRepeatsFromCache(t *testing.T) {
	next := &countingSearcher{}
	m := metrics.New(prometheus.NewRegistry())
	c := NewCachedLookup(next, 8, time.Minute, m)

	first, err := c.Lookup(context.Background(), "Batman")
	require.NoError(t, err)
	second, err := c.Lookup(context.Background(), "  batman ")
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, 1, next.calls["Batman"])
	require.Zero(t, next.calls["  batman "])
	require.Equal(t, 1.0, testutil.ToFloat64(m.CacheHits))
	require.Equal(t, 1, c.Len())
}

func TestCachedLookupDoesNotCacheFailures(t *testing.T) {
	next := &countingSearcher{err: errors.New("offline")}
	c := NewCachedLookup(next, 8, time.Minute, nil)

	_, err := c.Lookup(context.Background(), "bat")
	require.Error(t, err)
	_, err = c.Lookup(context.Background(), "bat")
	require.Error(t, err)

	require.Equal(t, 2, next.calls["bat"])
	require.Zero(t, c.Len())
}

func TestCachedLookupPurge(t *testing.T) {
	next := &countingSearcher{}
	c := NewCachedLookup(next, 8, time.Minute, nil)

	_, _ = c.Lookup(context.Background(), "bat")
	c.Purge()
	_, _ = c.Lookup(context.Background(), "bat")

	require.Equal(t, 2, next.calls["bat"])
}
