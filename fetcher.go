package url2md

import (
	"context"
	"net/http"
)

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch issues a single HTTP GET with the supplied headers and returns
	// the response body. The context controls timeout and cancellation.
	// Failures carry an error code: EINVALID for non-http(s) URLs,
	// ETIMEOUT for deadline expiry, EUNAVAILABLE for network failures,
	// EEMPTY for responses with an empty body.
	Fetch(ctx context.Context, url string, headers http.Header) (html string, err error)

	// Close releases client resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
