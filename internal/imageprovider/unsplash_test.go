package imageprovider

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyago/voyago/internal/errors"
)

func newTestUnsplash(t *testing.T, key string) *UnsplashProvider {
	t.Helper()
	p := NewUnsplashProvider(key, 10*time.Second)
	httpmock.ActivateNonDefault(p.client)
	t.Cleanup(httpmock.DeactivateAndReset)
	return p
}

func TestUnsplashDisabledWithoutKey(t *testing.T) {
	p := newTestUnsplash(t, "")

	assert.False(t, p.Enabled())

	images, err := p.Fetch(context.Background(), "Paris", 4)
	require.NoError(t, err)
	assert.Empty(t, images)
	assert.Equal(t, 0, httpmock.GetTotalCallCount(), "disabled provider must not hit the network")
}

func TestUnsplashFetchSuccess(t *testing.T) {
	p := newTestUnsplash(t, "test-key")

	httpmock.RegisterResponder(http.MethodGet, unsplashEndpoint,
		func(req *http.Request) (*http.Response, error) {
			q := req.URL.Query()
			assert.Equal(t, "Paris France travel", q.Get("query"))
			assert.Equal(t, "4", q.Get("per_page"))
			assert.Equal(t, "landscape", q.Get("orientation"))
			assert.Equal(t, "high", q.Get("content_filter"))
			assert.Equal(t, "relevant", q.Get("order_by"))
			assert.Equal(t, "Client-ID test-key", req.Header.Get("Authorization"))

			return httpmock.NewJsonResponse(http.StatusOK, map[string]any{
				"results": []map[string]any{
					{"urls": map[string]string{"regular": "https://img/u1", "thumb": "https://img/t1"}},
					{"urls": map[string]string{"regular": "https://img/u2", "thumb": "https://img/t2"}},
					{"urls": map[string]string{"regular": "https://img/u3", "thumb": "https://img/t3"}},
					{"urls": map[string]string{"regular": "https://img/u4", "thumb": "https://img/t4"}},
					{"urls": map[string]string{"regular": "https://img/u5", "thumb": "https://img/t5"}},
				},
			})
		})

	images, err := p.Fetch(context.Background(), "Paris France travel", 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://img/u1", "https://img/u2", "https://img/u3", "https://img/u4"}, images,
		"results beyond the requested count are truncated")
}

func TestUnsplashPerPageClamped(t *testing.T) {
	p := newTestUnsplash(t, "test-key")

	httpmock.RegisterResponder(http.MethodGet, unsplashEndpoint,
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "30", req.URL.Query().Get("per_page"), "Unsplash max per_page is 30")
			return httpmock.NewJsonResponse(http.StatusOK, map[string]any{"results": []any{}})
		})

	_, err := p.Fetch(context.Background(), "anything", 50)
	require.NoError(t, err)
}

func TestUnsplashErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"rate limited", http.StatusForbidden},
		{"invalid key", http.StatusUnauthorized},
		{"server error", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestUnsplash(t, "test-key")
			httpmock.RegisterResponder(http.MethodGet, unsplashEndpoint,
				httpmock.NewStringResponder(tt.status, ""))

			images, err := p.Fetch(context.Background(), "Paris", 4)
			require.Error(t, err)
			assert.Empty(t, images, "failures must never carry partial results")

			var ee *errors.EnhancedError
			require.True(t, errors.As(err, &ee))
			assert.Equal(t, "imageprovider", ee.GetComponent())
		})
	}
}

func TestUnsplashNetworkFailure(t *testing.T) {
	p := newTestUnsplash(t, "test-key")
	httpmock.RegisterResponder(http.MethodGet, unsplashEndpoint,
		httpmock.NewErrorResponder(errors.NewStd("connection reset")))

	images, err := p.Fetch(context.Background(), "Paris", 4)
	require.Error(t, err)
	assert.Empty(t, images)
}

func TestUnsplashEmptyResults(t *testing.T) {
	p := newTestUnsplash(t, "test-key")
	httpmock.RegisterResponder(http.MethodGet, unsplashEndpoint,
		httpmock.NewJsonResponderOrPanic(http.StatusOK, map[string]any{"results": []any{}}))

	images, err := p.Fetch(context.Background(), "Atlantis Nowhere", 4)
	require.NoError(t, err)
	assert.Empty(t, images, "no results is a handled condition, not an error")
}
