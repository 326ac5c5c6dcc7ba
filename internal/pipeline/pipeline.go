// Package pipeline wires the recommendation pipeline from configuration:
// image providers, cache, fetcher, enricher and the AI generator.
package pipeline

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/voyago/voyago/internal/ai"
	"github.com/voyago/voyago/internal/cache"
	"github.com/voyago/voyago/internal/conf"
	"github.com/voyago/voyago/internal/enrichment"
	"github.com/voyago/voyago/internal/errors"
	"github.com/voyago/voyago/internal/imageprovider"
	"github.com/voyago/voyago/internal/observability/metrics"
)

// Pipeline bundles the collaborators the HTTP server and CLI need.
type Pipeline struct {
	Generator *ai.Generator
	Enricher  *enrichment.Enricher
	Registry  *prometheus.Registry
}

// Build constructs the full pipeline from settings. The provider chain is
// Unsplash first, Pexels second; either may be disabled by a missing key.
func Build(settings *conf.Settings) (*Pipeline, error) {
	registry := prometheus.NewRegistry()
	enrichmentMetrics, err := metrics.NewEnrichmentMetrics(registry)
	if err != nil {
		return nil, errors.New(fmt.Errorf("creating enrichment metrics: %w", err)).
			Component("pipeline").
			Category(errors.CategoryConfiguration).
			Build()
	}

	providers := []imageprovider.ImageProvider{
		imageprovider.NewUnsplashProvider(settings.Imagery.Unsplash.AccessKey, settings.Imagery.Timeout),
		imageprovider.NewPexelsProvider(settings.Imagery.Pexels.APIKey, settings.Imagery.Timeout),
	}
	imageCache := cache.New(cache.Config(settings.Imagery.Cache))
	fetcher := imageprovider.NewFetcher(providers, imageCache, enrichmentMetrics)

	return &Pipeline{
		Generator: ai.NewGenerator(&settings.AI),
		Enricher:  enrichment.New(fetcher),
		Registry:  registry,
	}, nil
}
