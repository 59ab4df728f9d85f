// Package url2md converts web articles into structured markdown documents.
// It fetches a remote page under adversarial conditions (rate limiting, bot
// detection, transient network failure) with randomized browser identities
// and bounded retries, then normalizes the raw HTML into an article record
// with title, body text, authors, publish date, summary, and keywords.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, trafilatura/, fs/).
package url2md
