// pexels.go: ImageProvider backed by the Pexels photo search API, used as
// the fallback behind Unsplash.
package imageprovider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/voyago/voyago/internal/errors"
)

const (
	pexelsProviderName = "pexels"
	pexelsEndpoint     = "https://api.pexels.com/v1/search"

	// Pexels caps per_page at 80.
	pexelsMaxPerPage = 80
)

// pexelsSearchResponse is the subset of the Pexels search envelope we
// consume. Photographer attribution is carried in the envelope.
type pexelsSearchResponse struct {
	Photos []struct {
		Photographer string `json:"photographer"`
		Src          struct {
			Large  string `json:"large"`
			Medium string `json:"medium"`
		} `json:"src"`
	} `json:"photos"`
}

// PexelsProvider fetches images from the Pexels search API.
type PexelsProvider struct {
	apiKey   string
	endpoint string
	client   *http.Client
	limiter  *rate.Limiter
}

// NewPexelsProvider creates the provider. An empty API key yields a
// disabled provider that short-circuits to empty results.
func NewPexelsProvider(apiKey string, timeout time.Duration) *PexelsProvider {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &PexelsProvider{
		apiKey:   apiKey,
		endpoint: pexelsEndpoint,
		client:   &http.Client{Timeout: timeout},
		// Pexels free tier is 200 requests/hour.
		limiter: rate.NewLimiter(rate.Limit(10), 50),
	}
}

// Name implements ImageProvider.
func (p *PexelsProvider) Name() string { return pexelsProviderName }

// Enabled implements ImageProvider.
func (p *PexelsProvider) Enabled() bool { return p.apiKey != "" }

// Fetch implements ImageProvider.
func (p *PexelsProvider) Fetch(ctx context.Context, query string, count int) ([]string, error) {
	log := logger().With("provider", pexelsProviderName, "query", query)

	if !p.Enabled() {
		log.Debug("Provider disabled, no API key configured")
		return nil, nil
	}

	perPage := count
	if perPage > pexelsMaxPerPage {
		perPage = pexelsMaxPerPage
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return nil, errors.New(err).
			Component("imageprovider").
			Category(errors.CategoryTimeout).
			Context("provider", pexelsProviderName).
			Context("operation", "rate_limiter_wait").
			Build()
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("orientation", "landscape")
	params.Set("size", "large")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return nil, errors.New(err).
			Component("imageprovider").
			Category(errors.CategoryNetwork).
			Context("provider", pexelsProviderName).
			Context("operation", "create_request").
			Build()
	}
	req.Header.Set("Authorization", p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		log.Warn("Pexels request failed", "error", err)
		return nil, errors.New(err).
			Component("imageprovider").
			Category(errors.CategoryNetwork).
			Context("provider", pexelsProviderName).
			Context("query", query).
			Build()
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Debug("Failed to close response body", "error", closeErr)
		}
	}()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decoding
	case http.StatusTooManyRequests:
		log.Warn("Pexels API rate limit exceeded")
		return nil, errors.Newf("pexels rate limit exceeded").
			Component("imageprovider").
			Category(errors.CategoryImageProvider).
			Context("provider", pexelsProviderName).
			Context("status_code", resp.StatusCode).
			Build()
	case http.StatusUnauthorized:
		log.Error("Pexels API key invalid")
		return nil, errors.Newf("pexels API key invalid").
			Component("imageprovider").
			Category(errors.CategoryImageProvider).
			Context("provider", pexelsProviderName).
			Context("status_code", resp.StatusCode).
			Build()
	default:
		log.Warn("Pexels API error", "status_code", resp.StatusCode)
		return nil, errors.Newf("pexels API returned status %d", resp.StatusCode).
			Component("imageprovider").
			Category(errors.CategoryImageProvider).
			Context("provider", pexelsProviderName).
			Context("status_code", resp.StatusCode).
			Build()
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.New(fmt.Errorf("reading pexels response: %w", err)).
			Component("imageprovider").
			Category(errors.CategoryNetwork).
			Context("provider", pexelsProviderName).
			Build()
	}

	var parsed pexelsSearchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, errors.New(fmt.Errorf("unmarshaling pexels response: %w", err)).
			Component("imageprovider").
			Category(errors.CategoryImageFetch).
			Context("provider", pexelsProviderName).
			Build()
	}

	images := make([]string, 0, len(parsed.Photos))
	for i := range parsed.Photos {
		if u := parsed.Photos[i].Src.Large; u != "" {
			images = append(images, u)
		}
	}
	if len(images) > count {
		images = images[:count]
	}

	log.Info("Pexels search completed", "found", len(images), "requested", count)
	return images, nil
}
