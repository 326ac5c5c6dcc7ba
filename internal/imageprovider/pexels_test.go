package imageprovider

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPexels(t *testing.T, key string) *PexelsProvider {
	t.Helper()
	p := NewPexelsProvider(key, 10*time.Second)
	httpmock.ActivateNonDefault(p.client)
	t.Cleanup(httpmock.DeactivateAndReset)
	return p
}

func TestPexelsDisabledWithoutKey(t *testing.T) {
	p := newTestPexels(t, "")

	assert.False(t, p.Enabled())

	images, err := p.Fetch(context.Background(), "Paris", 4)
	require.NoError(t, err)
	assert.Empty(t, images)
	assert.Equal(t, 0, httpmock.GetTotalCallCount())
}

func TestPexelsFetchSuccess(t *testing.T) {
	p := newTestPexels(t, "pexels-key")

	httpmock.RegisterResponder(http.MethodGet, pexelsEndpoint,
		func(req *http.Request) (*http.Response, error) {
			q := req.URL.Query()
			assert.Equal(t, "Santorini Greece beach", q.Get("query"))
			assert.Equal(t, "3", q.Get("per_page"))
			assert.Equal(t, "landscape", q.Get("orientation"))
			assert.Equal(t, "large", q.Get("size"))
			assert.Equal(t, "pexels-key", req.Header.Get("Authorization"))

			return httpmock.NewJsonResponse(http.StatusOK, map[string]any{
				"photos": []map[string]any{
					{"photographer": "A", "src": map[string]string{"large": "https://img/p1", "medium": "https://img/m1"}},
					{"photographer": "B", "src": map[string]string{"large": "https://img/p2", "medium": "https://img/m2"}},
				},
			})
		})

	images, err := p.Fetch(context.Background(), "Santorini Greece beach", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://img/p1", "https://img/p2"}, images)
}

func TestPexelsPerPageClamped(t *testing.T) {
	p := newTestPexels(t, "pexels-key")

	httpmock.RegisterResponder(http.MethodGet, pexelsEndpoint,
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "80", req.URL.Query().Get("per_page"), "Pexels max per_page is 80")
			return httpmock.NewJsonResponse(http.StatusOK, map[string]any{"photos": []any{}})
		})

	_, err := p.Fetch(context.Background(), "anything", 200)
	require.NoError(t, err)
}

func TestPexelsErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"rate limited", http.StatusTooManyRequests},
		{"invalid key", http.StatusUnauthorized},
		{"server error", http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPexels(t, "pexels-key")
			httpmock.RegisterResponder(http.MethodGet, pexelsEndpoint,
				httpmock.NewStringResponder(tt.status, ""))

			images, err := p.Fetch(context.Background(), "Paris", 4)
			require.Error(t, err)
			assert.Empty(t, images)
		})
	}
}

func TestPexelsEmptyResults(t *testing.T) {
	p := newTestPexels(t, "pexels-key")
	httpmock.RegisterResponder(http.MethodGet, pexelsEndpoint,
		httpmock.NewJsonResponderOrPanic(http.StatusOK, map[string]any{"photos": []any{}}))

	images, err := p.Fetch(context.Background(), "Atlantis Nowhere", 4)
	require.NoError(t, err)
	assert.Empty(t, images)
}
