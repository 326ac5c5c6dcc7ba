// Package enrichment decorates recommendation records with images fetched
// through the provider chain. Enrichment is best effort: records are always
// returned, image slots simply stay empty when nothing could be fetched.
package enrichment

import (
	"context"
	"log/slog"

	"github.com/voyago/voyago/internal/logging"
	"github.com/voyago/voyago/internal/model"
)

// Default image counts per record type.
const (
	DefaultDestinationImages = 4
	DefaultActivityImages    = 2
)

// ImageFetcher is the slice of the image pipeline enrichment needs: one
// batch call that never fails and preserves query order.
type ImageFetcher interface {
	FetchAll(ctx context.Context, queries []string, count int) [][]string
}

// Enricher fills image fields on recommendation records.
type Enricher struct {
	fetcher ImageFetcher
	log     *slog.Logger
}

// New creates an Enricher backed by the given fetcher.
func New(fetcher ImageFetcher) *Enricher {
	return &Enricher{
		fetcher: fetcher,
		log:     logging.ForService("enrichment"),
	}
}

// EnrichDestinations fetches up to imagesPerRecord images for each
// destination and fills the image slots positionally. Records are mutated
// in place and returned in their original order.
func (e *Enricher) EnrichDestinations(ctx context.Context, recs []*model.DestinationRecommendation, imagesPerRecord int) []*model.DestinationRecommendation {
	if len(recs) == 0 {
		return recs
	}

	queries := make([]string, len(recs))
	for i, rec := range recs {
		queries[i] = BuildDestinationQuery(rec)
	}

	results := e.fetcher.FetchAll(ctx, queries, imagesPerRecord)

	for i, rec := range recs {
		images := results[i]
		fillImageSlots(rec, images)
		if len(images) == 0 {
			e.log.Warn("Destination left without images",
				"name", rec.Name,
				"query", queries[i])
		}
	}
	return recs
}

// fillImageSlots assigns fetched URLs to the four slots in order. Slots
// beyond the fetched count stay empty; extra URLs are dropped.
func fillImageSlots(rec *model.DestinationRecommendation, images []string) {
	slots := []*string{&rec.Image, &rec.Image2, &rec.Image3, &rec.Image4}
	for i, slot := range slots {
		if i < len(images) {
			*slot = images[i]
		}
	}
}

// EnrichActivities fetches up to imagesPerActivity images for each activity,
// stores the full list and promotes the first URL to the cover image.
func (e *Enricher) EnrichActivities(ctx context.Context, acts []*model.ActivityRecommendation, imagesPerActivity int) []*model.ActivityRecommendation {
	if len(acts) == 0 {
		return acts
	}

	queries := make([]string, len(acts))
	for i, act := range acts {
		queries[i] = BuildActivityQuery(act)
	}

	results := e.fetcher.FetchAll(ctx, queries, imagesPerActivity)

	for i, act := range acts {
		act.Images = results[i]
		if len(act.Images) > 0 {
			act.CoverImage = act.Images[0]
		}
	}
	return acts
}
