// Package ai generates travel recommendations through the Groq
// chat-completions API. Generation is best effort: any failure along the
// request, parse or validation path degrades to curated static fallbacks,
// so callers always receive usable records.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/voyago/voyago/internal/cache"
	"github.com/voyago/voyago/internal/conf"
	"github.com/voyago/voyago/internal/errors"
	"github.com/voyago/voyago/internal/logging"
	"github.com/voyago/voyago/internal/model"
)

// Generator produces destination and activity recommendations.
type Generator struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
	cache    *cache.Cache
	log      *slog.Logger
}

// NewGenerator creates a Generator from the AI settings block.
func NewGenerator(settings *conf.AISettings) *Generator {
	return &Generator{
		apiKey:   settings.Groq.APIKey,
		model:    settings.Groq.Model,
		endpoint: settings.Groq.Endpoint,
		client:   &http.Client{Timeout: settings.Timeout},
		cache:    cache.New(cache.Config(settings.Cache)),
		log:      logging.ForService("ai"),
	}
}

// Enabled reports whether an API key is configured. A disabled generator
// serves static fallbacks only.
func (g *Generator) Enabled() bool {
	return g.apiKey != ""
}

// chatRequest is the Groq chat-completions request body.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse carries the slice of the Groq response we consume.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// DestinationRecommendations generates destination suggestions for the given
// traveler profile. On any generation failure it returns the static fallback
// set tagged with the profile's trip type. Every caller receives its own
// copy of the records; cached records are never shared, because enrichment
// mutates them in place.
func (g *Generator) DestinationRecommendations(ctx context.Context, profile *Profile) []*model.DestinationRecommendation {
	key := destinationCacheKey(profile)
	if recs, ok := cachedRecords[[]*model.DestinationRecommendation](g.cache, key); ok {
		g.log.Debug("Destination recommendations served from cache")
		return cloneDestinations(recs)
	}

	recs, err := g.generateDestinations(ctx, profile)
	if err != nil {
		g.log.Warn("Destination generation failed, serving fallbacks", "error", err)
		return FallbackDestinations(profile.TripType)
	}

	g.cache.Set(key, recs)
	return cloneDestinations(recs)
}

func (g *Generator) generateDestinations(ctx context.Context, profile *Profile) ([]*model.DestinationRecommendation, error) {
	content, err := g.complete(ctx, destinationPrompt(profile), 1200, 0.7)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Recommendations []*model.DestinationRecommendation `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, errors.New(fmt.Errorf("parsing destination response: %w", err)).
			Component("ai").
			Category(errors.CategoryGeneration).
			Build()
	}

	recs := make([]*model.DestinationRecommendation, 0, len(payload.Recommendations))
	for _, rec := range payload.Recommendations {
		if rec.Name == "" || rec.Location == "" || rec.Title == "" || rec.Description == "" {
			continue
		}
		rec.Category = profile.TripType
		recs = append(recs, rec)
	}
	if len(recs) == 0 {
		return nil, errors.Newf("no valid recommendations in response").
			Component("ai").
			Category(errors.CategoryGeneration).
			Build()
	}
	return recs, nil
}

// ActivityRecommendations generates activity suggestions for an ongoing trip.
// On any generation failure it returns the static fallback set anchored to
// the destination. As with destinations, cached records are cloned per
// caller so concurrent enrichment never touches shared state.
func (g *Generator) ActivityRecommendations(ctx context.Context, destination, tripType string, duration int) []*model.ActivityRecommendation {
	key := fmt.Sprintf("trip:%s:%s:%d", destination, tripType, duration)
	if acts, ok := cachedRecords[[]*model.ActivityRecommendation](g.cache, key); ok {
		g.log.Debug("Activity recommendations served from cache")
		return cloneActivities(acts)
	}

	acts, err := g.generateActivities(ctx, destination, tripType, duration)
	if err != nil {
		g.log.Warn("Activity generation failed, serving fallbacks",
			"destination", destination,
			"error", err)
		return FallbackActivities(destination)
	}

	g.cache.Set(key, acts)
	return cloneActivities(acts)
}

func (g *Generator) generateActivities(ctx context.Context, destination, tripType string, duration int) ([]*model.ActivityRecommendation, error) {
	content, err := g.complete(ctx, activityPrompt(destination, tripType, duration), 1500, 0.6)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Recommendations []*model.ActivityRecommendation `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, errors.New(fmt.Errorf("parsing activity response: %w", err)).
			Component("ai").
			Category(errors.CategoryGeneration).
			Build()
	}

	acts := make([]*model.ActivityRecommendation, 0, len(payload.Recommendations))
	for _, act := range payload.Recommendations {
		if act.Title == "" || act.Category == "" || act.Description == "" {
			continue
		}
		act.Destination = destination
		act.InItinerary = false
		acts = append(acts, act)
	}
	if len(acts) == 0 {
		return nil, errors.Newf("no valid activities in response").
			Component("ai").
			Category(errors.CategoryGeneration).
			Build()
	}
	return acts, nil
}

// complete sends one user prompt and returns the first choice's content.
func (g *Generator) complete(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	if !g.Enabled() {
		return "", errors.Newf("no Groq API key configured").
			Component("ai").
			Category(errors.CategoryConfiguration).
			Build()
	}

	body, err := json.Marshal(chatRequest{
		Model:       g.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", errors.New(err).Component("ai").Category(errors.CategoryGeneric).Build()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.New(err).Component("ai").Category(errors.CategoryGeneric).Build()
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		return "", errors.New(fmt.Errorf("calling Groq API: %w", err)).
			Component("ai").
			Category(errors.CategoryNetwork).
			Context("endpoint", g.endpoint).
			Build()
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			g.log.Debug("Failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Newf("Groq API returned status %d", resp.StatusCode).
			Component("ai").
			Category(errors.CategoryHTTP).
			Context("status_code", resp.StatusCode).
			Build()
	}

	var parsed chatResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&parsed); err != nil {
		return "", errors.New(fmt.Errorf("decoding Groq response: %w", err)).
			Component("ai").
			Category(errors.CategoryGeneration).
			Build()
	}
	if len(parsed.Choices) == 0 {
		return "", errors.Newf("Groq response contained no choices").
			Component("ai").
			Category(errors.CategoryGeneration).
			Build()
	}

	g.log.Debug("Groq completion finished",
		"model", g.model,
		"duration_ms", time.Since(start).Milliseconds())
	return parsed.Choices[0].Message.Content, nil
}

// cloneDestinations deep-copies a record slice so the cached originals stay
// untouched by downstream enrichment.
func cloneDestinations(recs []*model.DestinationRecommendation) []*model.DestinationRecommendation {
	out := make([]*model.DestinationRecommendation, len(recs))
	for i, rec := range recs {
		out[i] = rec.Clone()
	}
	return out
}

func cloneActivities(acts []*model.ActivityRecommendation) []*model.ActivityRecommendation {
	out := make([]*model.ActivityRecommendation, len(acts))
	for i, act := range acts {
		out[i] = act.Clone()
	}
	return out
}

// cachedRecords reads a typed record slice from the generator cache.
func cachedRecords[T any](c *cache.Cache, key string) (T, bool) {
	var zero T
	v, ok := c.Get(key)
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}
