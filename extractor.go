package url2md

import "time"

// ExtractResult holds the raw extraction output from an HTML page,
// before normalization into an Article.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// Authors lists byline authors in source order. May be empty.
	Authors []string

	// PublishDate is the publication date, nil if the source provides none.
	PublishDate *time.Time

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string

	// Tags lists source-declared topic tags or categories. May be empty.
	Tags []string
}

// Extractor extracts main content and metadata from HTML pages.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// Metadata comes from page metadata (meta tags, JSON+LD, etc.).
	Extract(html string) (*ExtractResult, error)
}

// Enricher supplements missing fields on an extract result from the raw
// HTML, e.g. from <meta> tags the main extractor does not read.
// Fields already populated are left untouched.
type Enricher interface {
	Enrich(html string, res *ExtractResult)
}
