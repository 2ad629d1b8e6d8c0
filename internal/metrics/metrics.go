// Package metrics exposes prometheus collectors for the search pipeline.
//
// Collectors are registry-scoped: pass prometheus.NewRegistry() in tests to
// get an isolated set.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Lookup outcomes
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeStale   = "stale"
)

// Search holds the collectors used by the type-ahead controller and the
// TMDB client. A nil *Search is valid and records nothing.
type Search struct {
	Lookups        *prometheus.CounterVec
	LookupDuration prometheus.Histogram
	StaleResults   prometheus.Counter
	Navigations    *prometheus.CounterVec
	CacheHits      prometheus.Counter
}

// New creates the collectors and registers them with reg
func New(reg prometheus.Registerer) *Search {
	m := &Search{
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cinegrip_lookups_total",
			Help: "Suggestion lookups by outcome.",
		}, []string{"outcome"}),
		LookupDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "cinegrip_lookup_duration_seconds",
			Help:    "Suggestion lookup latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		StaleResults: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cinegrip_stale_results_total",
			Help: "Lookup results dropped because the query moved on.",
		}),
		Navigations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cinegrip_navigations_total",
			Help: "Navigation intents emitted, by route name.",
		}, []string{"route"}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cinegrip_lookup_cache_hits_total",
			Help: "Lookups answered from the suggestion cache.",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.Lookups, m.LookupDuration, m.StaleResults, m.Navigations, m.CacheHits)
	}
	return m
}

// ObserveLookup records a settled lookup
func (m *Search) ObserveLookup(outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.Lookups.WithLabelValues(outcome).Inc()
	if outcome == OutcomeStale {
		m.StaleResults.Inc()
		return
	}
	m.LookupDuration.Observe(took.Seconds())
}

// ObserveNavigation records an emitted navigation intent
func (m *Search) ObserveNavigation(route string) {
	if m == nil {
		return
	}
	m.Navigations.WithLabelValues(route).Inc()
}

// ObserveCacheHit records a cache hit
func (m *Search) ObserveCacheHit() {
	if m == nil {
		return
	}
	m.CacheHits.Inc()
}

// Serve exposes /metrics for gatherer on addr until ctx is done
func Serve(ctx context.Context, addr string, gatherer prometheus.Gatherer, log *logrus.Entry) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Infof("serving metrics on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
