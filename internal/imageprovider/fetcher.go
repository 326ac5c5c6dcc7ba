// fetcher.go: cached, concurrent image fetching across the provider chain.
package imageprovider

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/voyago/voyago/internal/cache"
	"github.com/voyago/voyago/internal/observability/metrics"
)

// Fetcher resolves image queries through cache, an ordered provider chain
// and placeholder generation. Batches fan out one goroutine per query and
// always wait for every query to settle; a failure in one query never
// aborts its siblings.
type Fetcher struct {
	providers []ImageProvider
	cache     *cache.Cache
	metrics   *metrics.EnrichmentMetrics
	group     singleflight.Group
}

// NewFetcher creates a Fetcher over the given provider chain. Providers are
// tried in order; the first non-empty result wins. metrics may be nil.
func NewFetcher(providers []ImageProvider, imageCache *cache.Cache, m *metrics.EnrichmentMetrics) *Fetcher {
	return &Fetcher{
		providers: providers,
		cache:     imageCache,
		metrics:   m,
	}
}

// cacheKey namespaces image results in the shared cache.
func cacheKey(query string, count int) string {
	return fmt.Sprintf("images:%s:%d", query, count)
}

// FetchAll fetches images for all queries concurrently. The result slice
// has the same length and order as queries; a slot whose fetch failed
// unexpectedly holds an empty list.
func (f *Fetcher) FetchAll(ctx context.Context, queries []string, count int) [][]string {
	results := make([][]string, len(queries))
	if len(queries) == 0 {
		return results
	}

	if f.metrics != nil {
		f.metrics.ObserveBatchSize(len(queries))
	}

	var wg sync.WaitGroup
	for i := range queries {
		wg.Add(1)
		go func(i int, query string) {
			defer wg.Done()
			// A panic in one query's fetch must not take down the batch.
			defer func() {
				if r := recover(); r != nil {
					logger().Error("Recovered panic during image fetch",
						"query", query,
						"panic", r)
					results[i] = []string{}
				}
			}()
			results[i] = f.FetchForQuery(ctx, query, count)
		}(i, queries[i])
	}
	wg.Wait()

	for i := range results {
		if results[i] == nil {
			results[i] = []string{}
		}
	}
	return results
}

// FetchForQuery resolves one query: cache, then each provider in order,
// then placeholders. It never returns an error; the worst outcome is a
// placeholder set.
func (f *Fetcher) FetchForQuery(ctx context.Context, query string, count int) []string {
	reqID := uuid.New().String()[:8]
	log := logger().With("request_id", reqID, "query", query, "count", count)

	key := cacheKey(query, count)
	if images, ok := f.cachedImages(key); ok {
		log.Debug("Cache hit")
		if f.metrics != nil {
			f.metrics.IncrementCacheHits()
		}
		return images
	}
	if f.metrics != nil {
		f.metrics.IncrementCacheMisses()
	}

	// Concurrent identical queries share one provider round trip.
	v, _, _ := f.group.Do(key, func() (any, error) {
		if images, ok := f.cachedImages(key); ok {
			return images, nil
		}
		return f.fetchFromProviders(ctx, log, key, query, count), nil
	})

	images, _ := v.([]string)
	return images
}

// cachedImages reads a previously stored result list.
func (f *Fetcher) cachedImages(key string) ([]string, bool) {
	if f.cache == nil {
		return nil, false
	}
	v, ok := f.cache.Get(key)
	if !ok {
		return nil, false
	}
	images, ok := v.([]string)
	return images, ok
}

// fetchFromProviders walks the provider chain and falls through to
// placeholders when every provider comes back empty. Real results are
// cached; placeholders are not.
func (f *Fetcher) fetchFromProviders(ctx context.Context, log *slog.Logger, key, query string, count int) []string {
	start := time.Now()

	for _, p := range f.providers {
		if !p.Enabled() {
			log.Debug("Skipping disabled provider", "provider", p.Name())
			continue
		}

		images, err := p.Fetch(ctx, query, count)
		if f.metrics != nil {
			f.metrics.IncrementProviderFetches(p.Name())
		}
		if err != nil {
			if f.metrics != nil {
				f.metrics.IncrementProviderErrors(p.Name())
			}
			log.Warn("Provider fetch failed, trying next",
				"provider", p.Name(),
				"error", err)
			continue
		}
		if len(images) > 0 {
			if f.cache != nil {
				f.cache.Set(key, images)
			}
			if f.metrics != nil {
				f.metrics.ObserveFetchDuration(time.Since(start).Seconds())
			}
			return images
		}
	}

	if f.metrics != nil {
		f.metrics.ObserveFetchDuration(time.Since(start).Seconds())
		f.metrics.IncrementPlaceholderFallbacks()
	}
	log.Warn("No images found from any provider, using placeholders")
	return GeneratePlaceholders(query, count)
}
