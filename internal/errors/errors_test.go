package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorBuilder(t *testing.T) {
	base := NewStd("connection refused")
	ee := New(base).
		Component("imageprovider").
		Category(CategoryNetwork).
		Context("provider", "unsplash").
		Context("status_code", 500).
		Build()

	assert.Equal(t, "connection refused", ee.Error())
	assert.Equal(t, "imageprovider", ee.GetComponent())
	assert.Equal(t, string(CategoryNetwork), ee.GetCategory())

	ctx := ee.GetContext()
	require.NotNil(t, ctx)
	assert.Equal(t, "unsplash", ctx["provider"])
	assert.Equal(t, 500, ctx["status_code"])
	assert.False(t, ee.GetTimestamp().IsZero())
}

func TestErrorUnwrapping(t *testing.T) {
	sentinel := NewStd("no images found")
	wrapped := fmt.Errorf("fetch failed: %w", sentinel)
	ee := New(wrapped).Category(CategoryImageFetch).Build()

	assert.True(t, Is(ee, sentinel))

	var target *EnhancedError
	assert.True(t, As(ee, &target))
	assert.Equal(t, string(CategoryImageFetch), target.GetCategory())
}

func TestCategoryMatching(t *testing.T) {
	a := Newf("timeout waiting for provider").Category(CategoryTimeout).Build()
	b := Newf("another timeout").Category(CategoryTimeout).Build()
	c := Newf("bad key").Category(CategoryValidation).Build()

	assert.True(t, Is(a, b), "errors with the same category should match")
	assert.False(t, Is(a, c), "errors with different categories should not match")
}

func TestDefaults(t *testing.T) {
	ee := Newf("plain failure").Build()
	assert.Equal(t, ComponentUnknown, ee.GetComponent())
	assert.Equal(t, string(CategoryGeneric), ee.GetCategory())
	assert.Nil(t, ee.GetContext())
}
