// Package extract drives the fetch-parse-retry pipeline that turns a URL
// into a normalized article record. It wraps a Fetcher and a chain of
// Extractors in a bounded retry loop with randomized backoff, rotating
// browser identities between attempts.
package extract

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/msaum/url2md"
	"github.com/msaum/url2md/nlp"
)

// DefaultMaxAttempts is the default retry budget per URL.
const DefaultMaxAttempts = 4

// Pipeline orchestrates fetching, extraction, conversion, and
// normalization with bounded retries. All transient failures — network
// errors, timeouts, empty responses, and parse failures on what is usually
// a bot-wall page — share the same attempt budget; only URL validation
// failures are fatal.
type Pipeline struct {
	fetcher    url2md.Fetcher
	identities url2md.IdentityPool
	converter  url2md.Converter
	extractors []url2md.Extractor
	enricher   url2md.Enricher
	backoff    url2md.BackoffPolicy

	maxAttempts  int
	summaryLen   int
	keywordLimit int
	onAttempt    url2md.AttemptFunc
	logger       *slog.Logger
	now          func() time.Time
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithExtractors sets the extractor chain. The first extractor that
// returns non-empty content wins; later entries are fallbacks.
func WithExtractors(extractors ...url2md.Extractor) PipelineOption {
	return func(p *Pipeline) {
		p.extractors = extractors
	}
}

// WithEnricher sets the metadata enricher applied after extraction.
func WithEnricher(e url2md.Enricher) PipelineOption {
	return func(p *Pipeline) {
		p.enricher = e
	}
}

// WithBackoff sets the backoff policy. Defaults to NewRandomBackoff().
func WithBackoff(b url2md.BackoffPolicy) PipelineOption {
	return func(p *Pipeline) {
		p.backoff = b
	}
}

// WithMaxAttempts sets the retry budget. Defaults to DefaultMaxAttempts.
func WithMaxAttempts(n int) PipelineOption {
	return func(p *Pipeline) {
		p.maxAttempts = n
	}
}

// WithAttemptFunc sets an observer called once per fetch attempt.
func WithAttemptFunc(fn url2md.AttemptFunc) PipelineOption {
	return func(p *Pipeline) {
		p.onAttempt = fn
	}
}

// WithLogger sets the logger for per-attempt progress.
func WithLogger(logger *slog.Logger) PipelineOption {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithClock sets the time source used for Article.FetchedAt.
func WithClock(now func() time.Time) PipelineOption {
	return func(p *Pipeline) {
		p.now = now
	}
}

// NewPipeline creates a Pipeline with the given core dependencies.
func NewPipeline(fetcher url2md.Fetcher, identities url2md.IdentityPool, converter url2md.Converter, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		fetcher:      fetcher,
		identities:   identities,
		converter:    converter,
		maxAttempts:  DefaultMaxAttempts,
		summaryLen:   3,
		keywordLimit: 10,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.backoff == nil {
		p.backoff = NewRandomBackoff()
	}
	if p.logger == nil {
		p.logger = slog.New(slog.DiscardHandler)
	}
	return p
}

// Extract fetches the URL and normalizes it into an Article, retrying
// transient failures up to the attempt budget. A fetch that succeeds but
// yields unparsable or empty content is not a success: bot-walls return
// 200 with blank bodies, so it consumes an attempt like any other failure.
func (p *Pipeline) Extract(ctx context.Context, rawURL string) (*url2md.Article, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, url2md.WrapError(err, url2md.EINVALID, "malformed URL %q", rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, url2md.Errorf(url2md.EINVALID, "URL scheme must be http or https: %q", rawURL)
	}

	var lastErr error
	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		delay := p.backoff.Delay(attempt)
		if delay > 0 {
			p.logger.Debug("backing off", "url", rawURL, "attempt", attempt, "delay", delay)
			if err := wait(ctx, delay); err != nil {
				return nil, err
			}
		}

		p.logger.Info("fetching", "url", rawURL, "attempt", attempt, "max_attempts", p.maxAttempts)

		// Fresh identity per attempt; reusing one raises block risk.
		html, err := p.fetcher.Fetch(ctx, rawURL, p.identities.Next())
		if err != nil {
			if !url2md.Retryable(err) {
				return nil, err
			}
			lastErr = err
			p.record(attempt, delay, outcomeFor(err))
			p.logger.Warn("fetch failed", "url", rawURL, "attempt", attempt, "err", err)
			continue
		}

		article, err := p.normalize(html, rawURL)
		if err != nil {
			lastErr = err
			p.record(attempt, delay, outcomeFor(err))
			p.logger.Warn("extraction failed", "url", rawURL, "attempt", attempt, "err", err)
			continue
		}

		p.record(attempt, delay, url2md.OutcomeSuccess)
		return article, nil
	}

	return nil, url2md.WrapError(lastErr, url2md.EEXHAUSTED,
		"extraction failed after %d attempts for %s", p.maxAttempts, rawURL)
}

// normalize runs the extractor chain, enrichment, markdown conversion, and
// the summary/keyword step, then applies the content-quality gate.
func (p *Pipeline) normalize(html, sourceURL string) (*url2md.Article, error) {
	var res *url2md.ExtractResult
	var lastErr error
	for _, ex := range p.extractors {
		r, err := ex.Extract(html)
		if err != nil {
			lastErr = err
			continue
		}
		if strings.TrimSpace(r.ContentHTML) == "" {
			lastErr = url2md.Errorf(url2md.EEMPTY, "extractor returned no content for %s", sourceURL)
			continue
		}
		res = r
		break
	}
	if res == nil {
		if lastErr == nil {
			return nil, url2md.Errorf(url2md.EINTERNAL, "no extractors configured")
		}
		if url2md.Retryable(lastErr) {
			return nil, lastErr
		}
		// Transient bot-walls frequently render malformed pages, so
		// structural extractor errors stay retryable.
		return nil, url2md.WrapError(lastErr, url2md.EPARSE, "extract content from %s", sourceURL)
	}

	if p.enricher != nil {
		p.enricher.Enrich(html, res)
	}

	text, err := p.converter.Convert(res.ContentHTML)
	if err != nil {
		return nil, url2md.WrapError(err, url2md.EPARSE, "convert content from %s", sourceURL)
	}
	text = strings.TrimSpace(text)

	article := &url2md.Article{
		Title:       strings.TrimSpace(res.Title),
		Text:        text,
		Authors:     res.Authors,
		PublishDate: res.PublishDate,
		Summary:     nlp.Summarize(text, p.summaryLen),
		Keywords:    nlp.Keywords(text, res.Tags, p.keywordLimit),
		SourceURL:   sourceURL,
		FetchedAt:   p.now(),
	}
	if err := article.Validate(); err != nil {
		return nil, err
	}
	return article, nil
}

func (p *Pipeline) record(attempt int, delay time.Duration, outcome url2md.AttemptOutcome) {
	if p.onAttempt != nil {
		p.onAttempt(url2md.FetchAttempt{Index: attempt, Delay: delay, Outcome: outcome})
	}
}

// outcomeFor maps an attempt error onto the telemetry outcome, keeping
// "site unreachable" distinct from "site reachable but blocked/empty".
func outcomeFor(err error) url2md.AttemptOutcome {
	switch url2md.ErrorCode(err) {
	case url2md.EEMPTY:
		return url2md.OutcomeEmptyResult
	case url2md.EPARSE:
		return url2md.OutcomeParseError
	default:
		return url2md.OutcomeNetworkError
	}
}

// wait sleeps for d or until the context is done.
func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
