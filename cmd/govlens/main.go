// Command govlens analyzes NEAR governance proposals. It serves a web
// UI (serve) or runs one review from the command line (analyze).
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/govlens"
	"github.com/fwojciec/govlens/analyze"
	"github.com/fwojciec/govlens/goquery"
	"github.com/fwojciec/govlens/htmltomarkdown"
	govhttp "github.com/fwojciec/govlens/http"
	"github.com/fwojciec/govlens/openai"
	"github.com/fwojciec/govlens/perplexity"
	"github.com/fwojciec/govlens/readability"
	"github.com/fwojciec/govlens/rod"
	govslog "github.com/fwojciec/govlens/slog"
	"github.com/fwojciec/govlens/trafilatura"
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
type Main struct {
	// Fetcher in use, retained so Close can release browser resources.
	fetcher govlens.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.fetcher != nil {
		return m.fetcher.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("govlens"),
		kong.Description("Score NEAR governance proposals against the review rubric."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'govlens --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Both commands need a valid configuration before any pipeline run.
	config := &govlens.Config{
		OpenAIAPIKey:     cli.OpenAIKey,
		PerplexityAPIKey: cli.PerplexityKey,
		Addr:             cli.Serve.Addr,
	}
	if err := config.Validate(); err != nil {
		fmt.Fprintln(stderr, govlens.ErrorMessage(err))
		return err
	}
	deps.Config = config

	logger := slog.New(slog.NewTextHandler(stderr, nil))
	deps.Logger = logger

	// The browser fetcher handles forums that render posts client-side;
	// the plain HTTP fetcher covers everything else.
	if cli.JS {
		fetcher, err := rod.NewFetcher(rod.WithFetchTimeout(cli.Timeout))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		m.fetcher = fetcher
	} else {
		m.fetcher = govhttp.NewFetcher(govhttp.WithTimeout(cli.Timeout))
	}
	defer m.Close()

	analyzer, err := openai.NewAnalyzer(config.OpenAIAPIKey, nil)
	if err != nil {
		return err
	}

	researcher, err := perplexity.NewResearcher(config.PerplexityAPIKey)
	if err != nil {
		return err
	}

	detector := goquery.NewDetector()
	generic := govlens.ExtractorChain{trafilatura.NewExtractor(), readability.NewExtractor()}
	registry := goquery.NewRegistry(detector, generic)
	registry.Register(govlens.PlatformDiscourse, goquery.NewDiscourseExtractor())

	deps.Reviews = &analyze.Pipeline{
		Fetcher:    govslog.NewLoggingFetcher(m.fetcher, logger),
		Extractors: govslog.NewLoggingRegistry(registry, detector, logger),
		Converter:  htmltomarkdown.NewConverter(),
		Analyzer:   govslog.NewLoggingAnalyzer(analyzer, logger),
		Researcher: govslog.NewLoggingResearcher(researcher, logger),
	}

	return kongCtx.Run(deps)
}
