package goquery_test

import (
	"testing"
	"time"

	"github.com/msaum/url2md"
	urlgoquery "github.com/msaum/url2md/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure MetaEnricher implements url2md.Enricher at compile time.
var _ url2md.Enricher = (*urlgoquery.MetaEnricher)(nil)

const metaHTML = `<!DOCTYPE html>
<html>
<head>
<title>Page Title From Head</title>
<meta name="author" content="Jane Doe, John Smith">
<meta name="keywords" content="economy, inflation, rates">
<meta property="article:published_time" content="2025-03-06T10:30:00Z">
</head>
<body><p>Body.</p></body>
</html>`

func TestMetaEnricher_Enrich(t *testing.T) {
	t.Parallel()

	t.Run("fills missing fields from meta tags", func(t *testing.T) {
		t.Parallel()

		res := &url2md.ExtractResult{ContentHTML: "<p>Body.</p>"}
		urlgoquery.NewMetaEnricher().Enrich(metaHTML, res)

		assert.Equal(t, "Page Title From Head", res.Title)
		assert.Equal(t, []string{"Jane Doe", "John Smith"}, res.Authors)
		assert.Equal(t, []string{"economy", "inflation", "rates"}, res.Tags)
		require.NotNil(t, res.PublishDate)
		assert.Equal(t, time.Date(2025, 3, 6, 10, 30, 0, 0, time.UTC), res.PublishDate.UTC())
	})

	t.Run("never overwrites populated fields", func(t *testing.T) {
		t.Parallel()

		existing := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		res := &url2md.ExtractResult{
			Title:       "Extractor Title",
			Authors:     []string{"Original Author"},
			Tags:        []string{"original"},
			PublishDate: &existing,
		}
		urlgoquery.NewMetaEnricher().Enrich(metaHTML, res)

		assert.Equal(t, "Extractor Title", res.Title)
		assert.Equal(t, []string{"Original Author"}, res.Authors)
		assert.Equal(t, []string{"original"}, res.Tags)
		assert.Equal(t, existing, *res.PublishDate)
	})

	t.Run("parses date-only published time", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta property="article:published_time" content="2025-03-06"></head><body></body></html>`
		res := &url2md.ExtractResult{}
		urlgoquery.NewMetaEnricher().Enrich(html, res)

		require.NotNil(t, res.PublishDate)
		assert.Equal(t, 2025, res.PublishDate.Year())
	})

	t.Run("ignores unparsable dates", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta property="article:published_time" content="last Tuesday"></head><body></body></html>`
		res := &url2md.ExtractResult{}
		urlgoquery.NewMetaEnricher().Enrich(html, res)

		assert.Nil(t, res.PublishDate)
	})

	t.Run("leaves result untouched for pages without meta tags", func(t *testing.T) {
		t.Parallel()

		res := &url2md.ExtractResult{}
		urlgoquery.NewMetaEnricher().Enrich("<html><body><p>bare</p></body></html>", res)

		assert.Empty(t, res.Authors)
		assert.Empty(t, res.Tags)
		assert.Nil(t, res.PublishDate)
	})
}
