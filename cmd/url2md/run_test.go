package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/msaum/url2md"
	"github.com/msaum/url2md/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubExtractor satisfies articleExtractor with a function field.
type stubExtractor struct {
	fn func(ctx context.Context, url string) (*url2md.Article, error)
}

func (s *stubExtractor) Extract(ctx context.Context, url string) (*url2md.Article, error) {
	return s.fn(ctx, url)
}

func validArticle(url string) *url2md.Article {
	return &url2md.Article{
		Title:     "A Title",
		Text:      "Body text.",
		SourceURL: url,
	}
}

func writeMarkdownFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "links.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestRunner_Single(t *testing.T) {
	t.Parallel()

	t.Run("writes article and prints path", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		r := &runner{
			pipeline: &stubExtractor{fn: func(ctx context.Context, url string) (*url2md.Article, error) {
				return validArticle(url), nil
			}},
			writer: &mock.ArticleWriter{
				WriteArticleFn: func(ctx context.Context, a *url2md.Article) (string, error) {
					return "articles/a.md", nil
				},
			},
			logger: discardLogger(),
			stdout: &out,
		}

		err := r.single(context.Background(), "https://example.com/a")
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Article saved to: articles/a.md")
	})

	t.Run("propagates extraction failure", func(t *testing.T) {
		t.Parallel()

		r := &runner{
			pipeline: &stubExtractor{fn: func(ctx context.Context, url string) (*url2md.Article, error) {
				return nil, url2md.Errorf(url2md.EEXHAUSTED, "extraction failed after 4 attempts")
			}},
			writer: &mock.ArticleWriter{},
			logger: discardLogger(),
			stdout: &bytes.Buffer{},
		}

		err := r.single(context.Background(), "https://example.com/a")
		require.Error(t, err)
		assert.Equal(t, url2md.EEXHAUSTED, url2md.ErrorCode(err))
	})

	t.Run("propagates save failure", func(t *testing.T) {
		t.Parallel()

		r := &runner{
			pipeline: &stubExtractor{fn: func(ctx context.Context, url string) (*url2md.Article, error) {
				return validArticle(url), nil
			}},
			writer: &mock.ArticleWriter{
				WriteArticleFn: func(ctx context.Context, a *url2md.Article) (string, error) {
					return "", url2md.Errorf(url2md.EINTERNAL, "disk full")
				},
			},
			logger: discardLogger(),
			stdout: &bytes.Buffer{},
		}

		err := r.single(context.Background(), "https://example.com/a")
		require.Error(t, err)
	})
}

func TestRunner_Batch(t *testing.T) {
	t.Parallel()

	t.Run("skips already downloaded URLs without fetching", func(t *testing.T) {
		t.Parallel()

		path := writeMarkdownFile(t, "[a](https://x.com/a) and [b](https://x.com/b)")

		var extracted []string
		r := &runner{
			pipeline: &stubExtractor{fn: func(ctx context.Context, url string) (*url2md.Article, error) {
				extracted = append(extracted, url)
				return validArticle(url), nil
			}},
			writer: &mock.ArticleWriter{
				ExistsFn: func(url string) bool { return url == "https://x.com/a" },
				WriteArticleFn: func(ctx context.Context, a *url2md.Article) (string, error) {
					return "out.md", nil
				},
			},
			logger: discardLogger(),
			stdout: &bytes.Buffer{},
		}

		err := r.batch(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, []string{"https://x.com/b"}, extracted)
	})

	t.Run("continues past per-URL failures", func(t *testing.T) {
		t.Parallel()

		path := writeMarkdownFile(t, "https://x.com/bad https://x.com/good")

		var saved []string
		r := &runner{
			pipeline: &stubExtractor{fn: func(ctx context.Context, url string) (*url2md.Article, error) {
				if url == "https://x.com/bad" {
					return nil, url2md.Errorf(url2md.EEXHAUSTED, "blocked")
				}
				return validArticle(url), nil
			}},
			writer: &mock.ArticleWriter{
				WriteArticleFn: func(ctx context.Context, a *url2md.Article) (string, error) {
					saved = append(saved, a.SourceURL)
					return "out.md", nil
				},
			},
			logger: discardLogger(),
			stdout: &bytes.Buffer{},
		}

		err := r.batch(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, []string{"https://x.com/good"}, saved)
	})

	t.Run("lists discovered URLs in order", func(t *testing.T) {
		t.Parallel()

		path := writeMarkdownFile(t, "https://z.com/two https://a.com/one")

		var out bytes.Buffer
		r := &runner{
			pipeline: &stubExtractor{fn: func(ctx context.Context, url string) (*url2md.Article, error) {
				return validArticle(url), nil
			}},
			writer: &mock.ArticleWriter{
				WriteArticleFn: func(ctx context.Context, a *url2md.Article) (string, error) {
					return "out.md", nil
				},
			},
			logger: discardLogger(),
			stdout: &out,
		}

		err := r.batch(context.Background(), path)
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Found 2 unique URLs to process")
		assert.Contains(t, out.String(), "1. https://a.com/one")
		assert.Contains(t, out.String(), "2. https://z.com/two")
	})

	t.Run("errors when the file contains no URLs", func(t *testing.T) {
		t.Parallel()

		path := writeMarkdownFile(t, "# Notes\n\nNothing linked here.")

		r := &runner{
			pipeline: &stubExtractor{fn: func(ctx context.Context, url string) (*url2md.Article, error) {
				return validArticle(url), nil
			}},
			writer: &mock.ArticleWriter{},
			logger: discardLogger(),
			stdout: &bytes.Buffer{},
		}

		err := r.batch(context.Background(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no URLs found")
	})

	t.Run("errors when the file is unreadable", func(t *testing.T) {
		t.Parallel()

		r := &runner{
			pipeline: &stubExtractor{fn: func(ctx context.Context, url string) (*url2md.Article, error) {
				return validArticle(url), nil
			}},
			writer: &mock.ArticleWriter{},
			logger: discardLogger(),
			stdout: &bytes.Buffer{},
		}

		err := r.batch(context.Background(), filepath.Join(t.TempDir(), "missing.md"))
		require.Error(t, err)
	})
}
