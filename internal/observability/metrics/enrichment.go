// Package metrics provides custom Prometheus metrics for the Voyago
// backend components.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// EnrichmentMetrics contains all Prometheus metrics related to the image
// enrichment pipeline.
type EnrichmentMetrics struct {
	CacheHits            prometheus.Counter
	CacheMisses          prometheus.Counter
	ProviderFetches      *prometheus.CounterVec
	ProviderErrors       *prometheus.CounterVec
	FetchDuration        prometheus.Histogram
	PlaceholderFallbacks prometheus.Counter
	BatchSize            prometheus.Histogram
	registry             *prometheus.Registry
}

// NewEnrichmentMetrics creates a new instance of EnrichmentMetrics.
// It requires a Prometheus registry to register the metrics.
// It returns an error if metric registration fails.
func NewEnrichmentMetrics(registry *prometheus.Registry) (*EnrichmentMetrics, error) {
	m := &EnrichmentMetrics{registry: registry}
	m.initMetrics()
	if err := registry.Register(m); err != nil {
		return nil, fmt.Errorf("failed to register enrichment metrics: %w", err)
	}
	return m, nil
}

// initMetrics initializes all metrics for EnrichmentMetrics.
func (m *EnrichmentMetrics) initMetrics() {
	m.CacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "image_enrichment_cache_hits_total",
		Help: "Total number of image cache hits.",
	})

	m.CacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "image_enrichment_cache_misses_total",
		Help: "Total number of image cache misses.",
	})

	m.ProviderFetches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "image_enrichment_provider_fetches_total",
		Help: "Total number of image fetches per provider.",
	}, []string{"provider"})

	m.ProviderErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "image_enrichment_provider_errors_total",
		Help: "Total number of failed image fetches per provider.",
	}, []string{"provider"})

	m.FetchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "image_enrichment_fetch_duration_seconds",
		Help:    "Duration of per-query image fetches in seconds.",
		Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
	})

	m.PlaceholderFallbacks = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "image_enrichment_placeholder_fallbacks_total",
		Help: "Total number of queries that fell through to placeholder images.",
	})

	m.BatchSize = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "image_enrichment_batch_size",
		Help:    "Number of queries per enrichment batch.",
		Buckets: prometheus.LinearBuckets(1, 2, 10),
	})
}

// IncrementCacheHits increases the cache hit counter by one.
func (m *EnrichmentMetrics) IncrementCacheHits() {
	m.CacheHits.Inc()
}

// IncrementCacheMisses increases the cache miss counter by one.
func (m *EnrichmentMetrics) IncrementCacheMisses() {
	m.CacheMisses.Inc()
}

// IncrementProviderFetches increases the fetch counter for a provider.
func (m *EnrichmentMetrics) IncrementProviderFetches(provider string) {
	m.ProviderFetches.WithLabelValues(provider).Inc()
}

// IncrementProviderErrors increases the error counter for a provider.
func (m *EnrichmentMetrics) IncrementProviderErrors(provider string) {
	m.ProviderErrors.WithLabelValues(provider).Inc()
}

// ObserveFetchDuration records the duration of a per-query fetch.
// The duration should be provided in seconds.
func (m *EnrichmentMetrics) ObserveFetchDuration(durationSeconds float64) {
	m.FetchDuration.Observe(durationSeconds)
}

// IncrementPlaceholderFallbacks increases the placeholder fallback counter.
func (m *EnrichmentMetrics) IncrementPlaceholderFallbacks() {
	m.PlaceholderFallbacks.Inc()
}

// ObserveBatchSize records the number of queries in an enrichment batch.
func (m *EnrichmentMetrics) ObserveBatchSize(size int) {
	m.BatchSize.Observe(float64(size))
}

// Collect implements the prometheus.Collector interface.
func (m *EnrichmentMetrics) Collect(ch chan<- prometheus.Metric) {
	ch <- m.CacheHits
	ch <- m.CacheMisses
	m.ProviderFetches.Collect(ch)
	m.ProviderErrors.Collect(ch)
	ch <- m.FetchDuration
	ch <- m.PlaceholderFallbacks
	ch <- m.BatchSize
}

// Describe implements the prometheus.Collector interface.
func (m *EnrichmentMetrics) Describe(ch chan<- *prometheus.Desc) {
	ch <- m.CacheHits.Desc()
	ch <- m.CacheMisses.Desc()
	m.ProviderFetches.Describe(ch)
	m.ProviderErrors.Describe(ch)
	ch <- m.FetchDuration.Desc()
	ch <- m.PlaceholderFallbacks.Desc()
	ch <- m.BatchSize.Desc()
}
