// Package imageprovider fetches travel images from external search APIs
// with caching, provider fallback and placeholder generation.
package imageprovider

import (
	"context"
	"log/slog"

	"github.com/voyago/voyago/internal/logging"
)

// imageLogger is the shared logger for this package.
var imageLogger = logging.ForService("imageprovider")

// ImageProvider defines the interface for fetching images from one
// external search API. Fetch returns up to count image URLs in relevance
// order; a provider with no results returns an empty slice. Errors are
// informational for the caller's fallback decision and must never carry
// partial results.
type ImageProvider interface {
	Name() string
	Enabled() bool
	Fetch(ctx context.Context, query string, count int) ([]string, error)
}

// logger returns the package logger, tolerating use before logging.Init.
func logger() *slog.Logger {
	if imageLogger == nil {
		imageLogger = logging.ForService("imageprovider")
	}
	return imageLogger
}
