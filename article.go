package url2md

import (
	"strings"
	"time"
)

// Article is the normalized record produced per successful extraction.
// A nil PublishDate means the source provided none; it is never defaulted
// to the current time.
type Article struct {
	Title       string
	Text        string
	Authors     []string
	PublishDate *time.Time
	Summary     string
	Keywords    []string
	SourceURL   string
	FetchedAt   time.Time
}

// Validate returns an error if the article fails the content-quality gate.
// Title and Text must both be non-empty; an extraction that misses either
// is a failure, not a degenerate success.
func (a *Article) Validate() error {
	if a.SourceURL == "" {
		return Errorf(EINVALID, "article source URL required")
	}
	if strings.TrimSpace(a.Title) == "" {
		return Errorf(EEMPTY, "no title extracted from %s", a.SourceURL)
	}
	if strings.TrimSpace(a.Text) == "" {
		return Errorf(EEMPTY, "no body text extracted from %s", a.SourceURL)
	}
	return nil
}

// AttemptOutcome classifies the result of a single fetch attempt.
type AttemptOutcome string

// Attempt outcomes. Network and parse failures share one retry budget but
// stay distinct so telemetry can separate "unreachable" from "blocked".
const (
	OutcomeSuccess      AttemptOutcome = "success"
	OutcomeNetworkError AttemptOutcome = "network_error"
	OutcomeParseError   AttemptOutcome = "parse_error"
	OutcomeEmptyResult  AttemptOutcome = "empty_result"
)

// FetchAttempt describes one attempt within a retry loop. It is transient
// and never persisted.
type FetchAttempt struct {
	Index   int
	Delay   time.Duration
	Outcome AttemptOutcome
}

// AttemptFunc observes fetch attempts as they complete.
type AttemptFunc func(FetchAttempt)
