// Package trafilatura provides the primary url2md.Extractor, wrapping
// go-trafilatura for boilerplate removal and metadata extraction.
package trafilatura

import (
	"bytes"
	"strings"
	"time"

	"github.com/markusmobius/go-trafilatura"
	"github.com/msaum/url2md"
	"golang.org/x/net/html"
)

// Ensure Extractor implements url2md.Extractor at compile time.
var _ url2md.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content and article
// metadata (title, authors, publish date, tags) from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content with metadata.
// A zero metadata date maps to a nil PublishDate; the date is never
// substituted with the current time.
func (e *Extractor) Extract(rawHTML string) (*url2md.ExtractResult, error) {
	if rawHTML == "" {
		return nil, url2md.Errorf(url2md.EEMPTY, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	var publishDate *time.Time
	if !result.Metadata.Date.IsZero() {
		d := result.Metadata.Date
		publishDate = &d
	}

	return &url2md.ExtractResult{
		Title:       result.Metadata.Title,
		Authors:     splitAuthors(result.Metadata.Author),
		PublishDate: publishDate,
		ContentHTML: contentHTML,
		Tags:        result.Metadata.Tags,
	}, nil
}

// splitAuthors splits trafilatura's semicolon-joined author string into an
// ordered sequence.
func splitAuthors(author string) []string {
	if strings.TrimSpace(author) == "" {
		return nil
	}
	var out []string
	for _, a := range strings.Split(author, ";") {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
