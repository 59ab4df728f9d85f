package url2md

import "context"

// ArticleWriter persists rendered articles to storage.
type ArticleWriter interface {
	// WriteArticle renders the article to markdown and writes it.
	// The write is atomic: a failure never leaves a truncated file that
	// could be mistaken for success. Returns the path written.
	WriteArticle(ctx context.Context, article *Article) (path string, err error)

	// Exists reports whether output for the URL has already been written.
	// Batch mode uses this to skip re-fetching.
	Exists(url string) bool
}
