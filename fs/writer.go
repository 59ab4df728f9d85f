// Package fs provides file-based storage for extracted articles: slug
// derivation, markdown rendering, and atomic writes to an output directory.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/msaum/url2md"
)

// MaxSlugLen bounds derived filenames to avoid filesystem limits.
const MaxSlugLen = 100

// invalidChars are stripped from slugs: the union of characters rejected by
// common filesystems.
const invalidChars = `<>:"/\|?*`

// Sanitize strips invalid filename characters and control characters,
// replaces spaces with underscores, and truncates to MaxSlugLen.
func Sanitize(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case strings.ContainsRune(invalidChars, r) || r < 0x20:
			// dropped
		case r == ' ':
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}
	s := b.String()
	if len(s) > MaxSlugLen {
		s = s[:MaxSlugLen]
	}
	return s
}

// Slug derives a deterministic filename stem from the URL: the last path
// segment with its extension stripped, falling back to the host, and as a
// last resort a random article_ name so an empty sanitization result never
// produces an unusable path.
func Slug(rawURL string) string {
	var candidate, host string
	if u, err := url.Parse(rawURL); err == nil {
		host = u.Host
		path := strings.Trim(u.Path, "/")
		if path != "" {
			segment := path[strings.LastIndex(path, "/")+1:]
			candidate = strings.TrimSuffix(segment, filepath.Ext(segment))
		}
	}

	if s := Sanitize(candidate); s != "" {
		return s
	}
	if s := Sanitize(host); s != "" {
		return s
	}
	return "article_" + uuid.NewString()[:8]
}

// Render serializes an article into the output markdown document. An
// absent publish date renders as an empty line; it is never substituted
// with the current date.
func Render(a *url2md.Article) string {
	dateStr := ""
	if a.PublishDate != nil {
		dateStr = a.PublishDate.Format("2006-01-02")
	}
	byline := "Unknown author"
	if len(a.Authors) > 0 {
		byline = strings.Join(a.Authors, ", ")
	}

	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(a.Title)
	b.WriteString("\n\n")
	b.WriteString(dateStr)
	b.WriteString("\n\n## Summary\n")
	b.WriteString(a.Summary)
	b.WriteString("\n\n## Article\n")
	b.WriteString(a.Text)
	b.WriteString("\n\n## Keywords\n")
	b.WriteString(strings.Join(a.Keywords, ", "))
	b.WriteString("\n\n---\n*Extracted from article by ")
	b.WriteString(byline)
	b.WriteString("*\n\nSource: [")
	b.WriteString(a.SourceURL)
	b.WriteString("](")
	b.WriteString(a.SourceURL)
	b.WriteString(")\n")
	return b.String()
}

// ArticleSection returns the body text between the "## Article" and
// "## Keywords" headings of a rendered document.
func ArticleSection(markdown string) string {
	const start = "\n## Article\n"
	const end = "\n\n## Keywords\n"
	i := strings.Index(markdown, start)
	if i < 0 {
		return ""
	}
	rest := markdown[i+len(start):]
	j := strings.LastIndex(rest, end)
	if j < 0 {
		return rest
	}
	return rest[:j]
}

// Ensure Writer implements url2md.ArticleWriter at compile time.
var _ url2md.ArticleWriter = (*Writer)(nil)

// Writer writes rendered articles as markdown files to a directory.
// Writes go to a temp file first and are renamed into place, so a failed
// write never leaves a truncated file mistaken for success.
type Writer struct {
	dir string
}

// NewWriter creates a Writer targeting the given output directory.
// The directory is created on first write.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Path returns the output path for the given source URL.
func (w *Writer) Path(rawURL string) string {
	return filepath.Join(w.dir, Slug(rawURL)+".md")
}

// Exists reports whether output for the URL has already been written.
func (w *Writer) Exists(rawURL string) bool {
	_, err := os.Stat(w.Path(rawURL))
	return err == nil
}

// WriteArticle renders the article and writes it atomically.
func (w *Writer) WriteArticle(ctx context.Context, a *url2md.Article) (string, error) {
	if err := a.Validate(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", url2md.WrapError(err, url2md.EINTERNAL, "create output directory %s", w.dir)
	}

	path := w.Path(a.SourceURL)
	tmp, err := os.CreateTemp(w.dir, ".url2md-*.tmp")
	if err != nil {
		return "", url2md.WrapError(err, url2md.EINTERNAL, "create temp file in %s", w.dir)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(Render(a)); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", url2md.WrapError(err, url2md.EINTERNAL, "write %s", path)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", url2md.WrapError(err, url2md.EINTERNAL, "write %s", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return "", url2md.WrapError(err, url2md.EINTERNAL, "save %s", path)
	}
	return path, nil
}
