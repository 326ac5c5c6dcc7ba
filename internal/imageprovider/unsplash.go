// unsplash.go: ImageProvider backed by the Unsplash photo search API.
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
	unsplashProviderName = "unsplash"
	unsplashEndpoint     = "https://api.unsplash.com/search/photos"

	// Unsplash caps per_page at 30.
	unsplashMaxPerPage = 30
)

// unsplashSearchResponse is the subset of the Unsplash search envelope we
// consume. The "regular" variant is a good display size without the
// bandwidth cost of "full".
type unsplashSearchResponse struct {
	Results []struct {
		URLs struct {
			Regular string `json:"regular"`
			Thumb   string `json:"thumb"`
		} `json:"urls"`
	} `json:"results"`
}

// UnsplashProvider fetches images from the Unsplash search API.
type UnsplashProvider struct {
	accessKey string
	endpoint  string
	client    *http.Client
	limiter   *rate.Limiter
}

// NewUnsplashProvider creates the provider. An empty access key yields a
// disabled provider that short-circuits to empty results.
func NewUnsplashProvider(accessKey string, timeout time.Duration) *UnsplashProvider {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &UnsplashProvider{
		accessKey: accessKey,
		endpoint:  unsplashEndpoint,
		client:    &http.Client{Timeout: timeout},
		// Free tier allows 50 requests/hour; the burst keeps interactive
		// batches unthrottled while bounding sustained load.
		limiter: rate.NewLimiter(rate.Limit(5), 50),
	}
}

// Name implements ImageProvider.
func (p *UnsplashProvider) Name() string { return unsplashProviderName }

// Enabled implements ImageProvider.
func (p *UnsplashProvider) Enabled() bool { return p.accessKey != "" }

// Fetch implements ImageProvider.
func (p *UnsplashProvider) Fetch(ctx context.Context, query string, count int) ([]string, error) {
	log := logger().With("provider", unsplashProviderName, "query", query)

	if !p.Enabled() {
		log.Debug("Provider disabled, no access key configured")
		return nil, nil
	}

	perPage := count
	if perPage > unsplashMaxPerPage {
		perPage = unsplashMaxPerPage
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return nil, errors.New(err).
			Component("imageprovider").
			Category(errors.CategoryTimeout).
			Context("provider", unsplashProviderName).
			Context("operation", "rate_limiter_wait").
			Build()
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("orientation", "landscape")
	params.Set("content_filter", "high")
	params.Set("order_by", "relevant")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return nil, errors.New(err).
			Component("imageprovider").
			Category(errors.CategoryNetwork).
			Context("provider", unsplashProviderName).
			Context("operation", "create_request").
			Build()
	}
	req.Header.Set("Authorization", "Client-ID "+p.accessKey)

	resp, err := p.client.Do(req)
	if err != nil {
		log.Warn("Unsplash request failed", "error", err)
		return nil, errors.New(err).
			Component("imageprovider").
			Category(errors.CategoryNetwork).
			Context("provider", unsplashProviderName).
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
	case http.StatusForbidden:
		log.Warn("Unsplash API rate limit exceeded")
		return nil, errors.Newf("unsplash rate limit exceeded").
			Component("imageprovider").
			Category(errors.CategoryImageProvider).
			Context("provider", unsplashProviderName).
			Context("status_code", resp.StatusCode).
			Build()
	case http.StatusUnauthorized:
		log.Error("Unsplash API key invalid")
		return nil, errors.Newf("unsplash API key invalid").
			Component("imageprovider").
			Category(errors.CategoryImageProvider).
			Context("provider", unsplashProviderName).
			Context("status_code", resp.StatusCode).
			Build()
	default:
		log.Warn("Unsplash API error", "status_code", resp.StatusCode)
		return nil, errors.Newf("unsplash API returned status %d", resp.StatusCode).
			Component("imageprovider").
			Category(errors.CategoryImageProvider).
			Context("provider", unsplashProviderName).
			Context("status_code", resp.StatusCode).
			Build()
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.New(fmt.Errorf("reading unsplash response: %w", err)).
			Component("imageprovider").
			Category(errors.CategoryNetwork).
			Context("provider", unsplashProviderName).
			Build()
	}

	var parsed unsplashSearchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, errors.New(fmt.Errorf("unmarshaling unsplash response: %w", err)).
			Component("imageprovider").
			Category(errors.CategoryImageFetch).
			Context("provider", unsplashProviderName).
			Build()
	}

	images := make([]string, 0, len(parsed.Results))
	for i := range parsed.Results {
		if u := parsed.Results[i].URLs.Regular; u != "" {
			images = append(images, u)
		}
	}
	if len(images) > count {
		images = images[:count]
	}

	log.Info("Unsplash search completed", "found", len(images), "requested", count)
	return images, nil
}
