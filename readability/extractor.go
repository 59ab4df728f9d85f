// Package readability provides the fallback url2md.Extractor, wrapping
// go-readability for pages trafilatura fails to parse.
package readability

import (
	"strings"

	readability "github.com/go-shiori/go-readability"
	"github.com/msaum/url2md"
)

// Ensure Extractor implements url2md.Extractor at compile time.
var _ url2md.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*url2md.ExtractResult, error) {
	if rawHTML == "" {
		return nil, url2md.Errorf(url2md.EEMPTY, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &url2md.ExtractResult{
		Title:       article.Title,
		Authors:     splitByline(article.Byline),
		PublishDate: article.PublishedTime,
		ContentHTML: article.Content,
	}, nil
}

// splitByline splits a comma-joined byline into an ordered author sequence.
func splitByline(byline string) []string {
	if strings.TrimSpace(byline) == "" {
		return nil
	}
	var out []string
	for _, a := range strings.Split(byline, ",") {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}
