// Package urlnorm normalizes destination URLs before storage and redirect.
package urlnorm

import "strings"

// Normalize prepends https:// when the URL has no http or https scheme.
// Applying it to an already-normalized URL is a no-op.
func Normalize(rawURL string) string {
	if strings.HasPrefix(rawURL, "http://") || strings.HasPrefix(rawURL, "https://") {
		return rawURL
	}
	return "https://" + rawURL
}
