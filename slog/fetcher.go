// Package slog provides logging decorators over domain interfaces.
package slog

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/msaum/url2md"
)

// Ensure LoggingFetcher implements url2md.Fetcher at compile time.
var _ url2md.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with per-request logging: URL, byte
// count, duration, and the chosen User-Agent at debug level.
type LoggingFetcher struct {
	next   url2md.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next url2md.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string, headers http.Header) (string, error) {
	if headers != nil {
		f.logger.Debug("request identity", "url", url, "user_agent", headers.Get("User-Agent"))
	}

	begin := time.Now()
	html, err := f.next.Fetch(ctx, url, headers)
	if err != nil {
		f.logger.Info("fetch",
			"url", url,
			"duration", time.Since(begin),
			"err", err.Error(),
		)
		return "", err
	}

	f.logger.Info("fetch",
		"url", url,
		"bytes", len(html),
		"duration", time.Since(begin),
	)
	return html, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
