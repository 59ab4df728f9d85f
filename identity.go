package url2md

import "net/http"

// IdentityPool produces randomized browser-like header bundles.
// Rotating identities across retry attempts reduces fingerprinting-based
// blocking; this is not a security boundary.
type IdentityPool interface {
	// Next returns a fresh header set including a User-Agent drawn from a
	// fixed pool of modern desktop browser signatures.
	Next() http.Header
}
