package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/msaum/url2md"
	"github.com/msaum/url2md/discover"
	"golang.org/x/time/rate"
)

// articleExtractor is the slice of the pipeline the runner needs;
// tests substitute a mock.
type articleExtractor interface {
	Extract(ctx context.Context, url string) (*url2md.Article, error)
}

// runner executes single-URL and batch invocations against an extraction
// pipeline and an article writer.
type runner struct {
	pipeline articleExtractor
	writer   url2md.ArticleWriter
	pace     *rate.Limiter
	logger   *slog.Logger
	stdout   io.Writer
}

// single extracts one URL and writes the result. Any failure is terminal.
func (r *runner) single(ctx context.Context, url string) error {
	article, err := r.pipeline.Extract(ctx, url)
	if err != nil {
		return err
	}

	path, err := r.writer.WriteArticle(ctx, article)
	if err != nil {
		return err
	}

	fmt.Fprintf(r.stdout, "Article saved to: %s\n", path)
	return nil
}

// batch processes every URL discovered in the markdown file sequentially,
// in discovery order. Per-URL failures are logged and skipped; only a
// failure of the discovery step itself is terminal.
func (r *runner) batch(ctx context.Context, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read markdown file %s: %w", path, err)
	}

	urls := discover.URLs(string(content))
	if len(urls) == 0 {
		return fmt.Errorf("no URLs found in %s", path)
	}

	fmt.Fprintf(r.stdout, "Found %d unique URLs to process\n", len(urls))
	for i, u := range urls {
		fmt.Fprintf(r.stdout, "%d. %s\n", i+1, u)
	}

	for _, u := range urls {
		if r.writer.Exists(u) {
			r.logger.Info("skipping already downloaded article", "url", u)
			continue
		}

		// Human-paced spacing between requests; overlapping or rapid
		// sequential requests would defeat the anti-blocking strategy.
		if r.pace != nil {
			if err := r.pace.Wait(ctx); err != nil {
				return err
			}
		}

		article, err := r.pipeline.Extract(ctx, u)
		if err != nil {
			r.logger.Error("failed to process URL", "url", u, "err", err)
			continue
		}

		outPath, err := r.writer.WriteArticle(ctx, article)
		if err != nil {
			r.logger.Error("failed to save article", "url", u, "err", err)
			continue
		}

		fmt.Fprintf(r.stdout, "Article saved to: %s\n", outPath)
	}

	return nil
}
