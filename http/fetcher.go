// Package http provides the HTTP-based implementation of url2md.Fetcher.
// It issues browser-like GET requests with a per-call cookie jar and
// classifies failures into the application error taxonomy.
package http

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/msaum/url2md"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 15 * time.Second

// Ensure Fetcher implements url2md.Fetcher at compile time.
var _ url2md.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests.
// Each call gets its own cookie jar: cookies set during a fetch (including
// redirects) are honored within that fetch, but never leak across calls —
// reusing a jar across attempts would build a trackable session.
type Fetcher struct {
	transport http.RoundTripper
	timeout   time.Duration

	// allowSoftErrors makes non-2xx responses return their body instead of
	// failing. Bot-walls frequently serve usable content on 403/503.
	allowSoftErrors bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (15s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithAllowSoftErrors controls whether non-2xx responses with a body are
// treated as usable content. Defaults to true.
func WithAllowSoftErrors(allow bool) Option {
	return func(f *Fetcher) {
		f.allowSoftErrors = allow
	}
}

// WithTransport sets the underlying round tripper. Tests use this to stub
// the network; production uses http.DefaultTransport.
func WithTransport(rt http.RoundTripper) Option {
	return func(f *Fetcher) {
		f.transport = rt
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:         DefaultFetchTimeout,
		allowSoftErrors: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.transport == nil {
		f.transport = http.DefaultTransport
	}
	return f
}

// Fetch retrieves the HTML content from the given URL using the supplied
// headers. URLs without an http or https scheme fail with EINVALID before
// any network I/O.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string, headers http.Header) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", url2md.WrapError(err, url2md.EINVALID, "malformed URL %q", rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", url2md.Errorf(url2md.EINVALID, "URL scheme must be http or https: %q", rawURL)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return "", url2md.WrapError(err, url2md.EINTERNAL, "create cookie jar")
	}
	client := &http.Client{
		Transport: f.transport,
		Jar:       jar,
		Timeout:   f.timeout,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", url2md.WrapError(err, url2md.EINVALID, "build request for %q", rawURL)
	}
	if headers != nil {
		req.Header = headers.Clone()
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", classify(err, rawURL)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", classify(err, rawURL)
	}

	if !f.allowSoftErrors && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		return "", url2md.Errorf(url2md.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, rawURL)
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return "", url2md.Errorf(url2md.EEMPTY, "empty response body from %s", rawURL)
	}

	return string(body), nil
}

// Close releases resources. The shared transport needs no explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// classify maps transport errors onto the application taxonomy.
// Timeouts get their own code; everything else transport-level is a
// retryable network failure.
func classify(err error, rawURL string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return url2md.WrapError(err, url2md.ETIMEOUT, "request to %s timed out", rawURL)
	}
	var ue *url.Error
	if errors.As(err, &ue) && ue.Timeout() {
		return url2md.WrapError(err, url2md.ETIMEOUT, "request to %s timed out", rawURL)
	}
	if errors.Is(err, context.Canceled) {
		return url2md.WrapError(err, url2md.EINTERNAL, "request to %s canceled", rawURL)
	}
	// DNS failure, connection reset, TLS failure.
	msg := err.Error()
	if i := strings.LastIndex(msg, ": "); i >= 0 {
		msg = msg[i+2:]
	}
	return url2md.WrapError(err, url2md.EUNAVAILABLE, "fetch %s: %s", rawURL, msg)
}
