// placeholder.go: synthetic image URLs used when no provider has results.
package imageprovider

import (
	"fmt"
	"net/url"
)

const placeholderBaseURL = "https://via.placeholder.com/800x600/3B82F6/FFFFFF"

// GeneratePlaceholders returns count placeholder image URLs embedding the
// URL-escaped query text. Placeholders are deterministic and are never
// cached so a later attempt can still find real images.
func GeneratePlaceholders(query string, count int) []string {
	if count <= 0 {
		return nil
	}
	text := url.QueryEscape(query)
	placeholders := make([]string, count)
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("%s?text=%s", placeholderBaseURL, text)
	}
	return placeholders
}
