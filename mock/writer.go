package mock

import (
	"context"

	"github.com/msaum/url2md"
)

var _ url2md.ArticleWriter = (*ArticleWriter)(nil)

// ArticleWriter is a mock implementation of url2md.ArticleWriter.
type ArticleWriter struct {
	WriteArticleFn func(ctx context.Context, article *url2md.Article) (string, error)
	ExistsFn       func(url string) bool
}

func (w *ArticleWriter) WriteArticle(ctx context.Context, article *url2md.Article) (string, error) {
	return w.WriteArticleFn(ctx, article)
}

func (w *ArticleWriter) Exists(url string) bool {
	if w.ExistsFn == nil {
		return false
	}
	return w.ExistsFn(url)
}
