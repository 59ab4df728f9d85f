// Package discover scans markdown documents for embedded article URLs and
// canonicalizes them into a deduplicated, deterministically ordered set.
package discover

import (
	"net/url"
	"regexp"
	"sort"
	"strings"
)

// markdownLink matches [label](url) hyperlink syntax.
var markdownLink = regexp.MustCompile(`\[[^\]]*\]\(([^)\s]+)\)`)

// bareURL matches plain http(s) tokens outside hyperlink syntax.
var bareURL = regexp.MustCompile(`https?://[^\s<>")\]]+`)

// trailingPunct is stripped from the end of candidate URLs; prose commonly
// runs punctuation straight into a link.
const trailingPunct = ".,;:!?()[]{}"

// URLs extracts, canonicalizes, and deduplicates all http(s) URLs from the
// markdown text. Malformed and non-http entries are dropped silently. The
// result is sorted so batch processing order is deterministic.
func URLs(markdown string) []string {
	set := map[string]struct{}{}

	for _, m := range markdownLink.FindAllStringSubmatch(markdown, -1) {
		if u, ok := Canonicalize(m[1]); ok {
			set[u] = struct{}{}
		}
	}
	for _, m := range bareURL.FindAllString(markdown, -1) {
		if u, ok := Canonicalize(m); ok {
			set[u] = struct{}{}
		}
	}

	out := make([]string, 0, len(set))
	for u := range set {
		out = append(out, u)
	}
	sort.Strings(out)
	return out
}

// Canonicalize normalizes a URL string to scheme://host/cleaned-path,
// dropping the query and fragment. Returns false for anything that is not
// a well-formed http(s) URL.
func Canonicalize(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimRight(raw, trailingPunct)

	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	if u.Host == "" {
		return "", false
	}

	path := cleanPath(u.Path)
	if path == "" {
		return u.Scheme + "://" + u.Host, true
	}
	return u.Scheme + "://" + u.Host + "/" + path, true
}

// cleanPath strips surrounding slashes and drops characters outside the
// alphanumeric/-_/ set.
func cleanPath(p string) string {
	p = strings.Trim(p, "/")
	var b strings.Builder
	for _, r := range p {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '/' || r == '-' || r == '_':
			b.WriteRune(r)
		}
	}
	return b.String()
}
