// Package goquery provides metadata enrichment from raw HTML meta tags,
// covering fields the main extractors sometimes miss.
package goquery

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/msaum/url2md"
)

// Ensure MetaEnricher implements url2md.Enricher at compile time.
var _ url2md.Enricher = (*MetaEnricher)(nil)

// metaDateLayouts are tried in order when parsing published-time values.
var metaDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// MetaEnricher fills missing extract-result fields from <meta> tags and
// the <title> element of the raw page. Populated fields are never
// overwritten; the main extractor's output always wins.
type MetaEnricher struct{}

// NewMetaEnricher creates a new MetaEnricher.
func NewMetaEnricher() *MetaEnricher {
	return &MetaEnricher{}
}

// Enrich supplements res in place. Parse failures leave res untouched.
func (e *MetaEnricher) Enrich(rawHTML string, res *url2md.ExtractResult) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return
	}

	if res.Title == "" {
		if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
			res.Title = title
		}
	}

	if len(res.Authors) == 0 {
		if author := metaContent(doc, `meta[name="author"]`); author != "" {
			res.Authors = splitList(author)
		}
	}

	if len(res.Tags) == 0 {
		if keywords := metaContent(doc, `meta[name="keywords"]`); keywords != "" {
			res.Tags = splitList(keywords)
		}
	}

	if res.PublishDate == nil {
		if published := metaContent(doc, `meta[property="article:published_time"]`); published != "" {
			if d, ok := parseDate(published); ok {
				res.PublishDate = &d
			}
		}
	}
}

func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(content)
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range metaDateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}
