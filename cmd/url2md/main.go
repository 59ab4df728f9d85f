// Command url2md converts a web article (by URL, or a batch of URLs found
// in a markdown file) into structured markdown documents.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/msaum/url2md/extract"
	"github.com/msaum/url2md/fs"
	urlgoquery "github.com/msaum/url2md/goquery"
	"github.com/msaum/url2md/htmltomarkdown"
	urlhttp "github.com/msaum/url2md/http"
	"github.com/msaum/url2md/identity"
	"github.com/msaum/url2md/readability"
	urlslog "github.com/msaum/url2md/slog"
	"github.com/msaum/url2md/trafilatura"
	"golang.org/x/time/rate"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	OutputDir       string        `short:"o" default:"articles" help:"Directory for markdown output"`
	Timeout         time.Duration `short:"t" default:"15s" help:"Fetch timeout per attempt"`
	MaxAttempts     int           `short:"a" default:"4" help:"Maximum fetch attempts per URL"`
	AllowSoftErrors bool          `default:"true" negatable:"" help:"Accept response bodies served with non-2xx status"`
	Pace            float64       `default:"0.5" help:"Requests per second between batch URLs"`
	Verbose         bool          `short:"v" help:"Enable debug logging"`
	Input           string        `arg:"" required:"" help:"Article URL or markdown file containing URLs"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("url2md"),
		kong.Description("Convert web articles to structured markdown documents"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no URL or markdown file provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	fetcher := urlslog.NewLoggingFetcher(
		urlhttp.NewFetcher(
			urlhttp.WithTimeout(cli.Timeout),
			urlhttp.WithAllowSoftErrors(cli.AllowSoftErrors),
		),
		logger,
	)
	defer fetcher.Close()

	pipeline := extract.NewPipeline(fetcher, identity.NewPool(), htmltomarkdown.NewConverter(),
		extract.WithExtractors(trafilatura.NewExtractor(), readability.NewExtractor()),
		extract.WithEnricher(urlgoquery.NewMetaEnricher()),
		extract.WithMaxAttempts(cli.MaxAttempts),
		extract.WithLogger(logger),
	)

	r := &runner{
		pipeline: pipeline,
		writer:   fs.NewWriter(cli.OutputDir),
		pace:     rate.NewLimiter(rate.Limit(cli.Pace), 1),
		logger:   logger,
		stdout:   stdout,
	}

	// A readable file means batch mode; anything else is treated as a URL.
	if info, statErr := os.Stat(cli.Input); statErr == nil && !info.IsDir() {
		return r.batch(ctx, cli.Input)
	}
	return r.single(ctx, cli.Input)
}
