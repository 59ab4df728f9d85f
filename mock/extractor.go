package mock

import "github.com/msaum/url2md"

var _ url2md.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of url2md.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*url2md.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*url2md.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ url2md.Enricher = (*Enricher)(nil)

// Enricher is a mock implementation of url2md.Enricher.
type Enricher struct {
	EnrichFn func(html string, res *url2md.ExtractResult)
}

func (e *Enricher) Enrich(html string, res *url2md.ExtractResult) {
	e.EnrichFn(html, res)
}
