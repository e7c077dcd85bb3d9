package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/botica"
	"github.com/fwojciec/botica/crawl"
	"github.com/fwojciec/botica/fs"
	"github.com/fwojciec/botica/goquery"
	botichttp "github.com/fwojciec/botica/http"
	botslog "github.com/fwojciec/botica/slog"
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
	// Fetcher used for every request. Set before calling Run() to replace
	// the HTTP fetcher; nil means one is built from the flags.
	Fetcher botica.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("botica"),
		kong.Description("Harvest essential medicines from a pharmacy storefront into a report."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{
			"user_agent":      botichttp.DefaultUserAgent,
			"accept_language": botichttp.DefaultAcceptLanguage,
		},
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if (len(args) > 0 && args[0] == "help") || slices.Contains(args, "--help") || slices.Contains(args, "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Reject unknown output formats before any network activity.
	format, err := reportFormatFor(cli.Output)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", botica.ErrorMessage(err))
		return err
	}

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = botichttp.NewFetcher(
			botichttp.WithTimeout(cli.Timeout),
			botichttp.WithMaxConnsPerHost(cli.Concurrency),
			botichttp.WithUserAgent(cli.UserAgent),
			botichttp.WithAcceptLanguage(cli.AcceptLanguage),
		)
	}
	defer fetcher.Close()

	var catalog botica.CatalogParser = goquery.NewCatalogParser(goquery.DefaultSelectors())
	if logger != nil {
		fetcher = botslog.NewLoggingFetcher(fetcher, logger)
		catalog = botslog.NewLoggingCatalogParser(catalog, logger)
	}

	var rateLimiter botica.DomainLimiter
	if cli.RPS > 0 {
		rateLimiter = crawl.NewDomainLimiter(cli.RPS, 1)
	}

	deps.Discoverer = &crawl.Discoverer{
		Fetcher:     fetcher,
		Parser:      catalog,
		RateLimiter: rateLimiter,
	}

	if !cli.Preview {
		names, err := fs.ReadReferenceNames(cli.Names)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", botica.ErrorMessage(err))
			return err
		}
		if names.Len() == 0 {
			err := botica.Errorf(botica.EINVALID, "name list %q has no usable names", cli.Names)
			fmt.Fprintf(stderr, "error: %s\n", botica.ErrorMessage(err))
			return err
		}

		deps.Harvester = &crawl.Harvester{
			Fetcher:       fetcher,
			Parser:        catalog,
			Names:         names,
			RateLimiter:   rateLimiter,
			Concurrency:   cli.Concurrency,
			MaxPages:      cli.MaxPages,
			PaceMin:       cli.PaceMin,
			PaceMax:       cli.PaceMax,
			CategoryPause: cli.CategoryPause,
		}
		deps.OpenReport = func() (botica.ReportWriter, func() error, error) {
			w, closeFn, err := openReport(format, cli.Output)
			if err != nil {
				return nil, nil, err
			}
			if logger != nil {
				w = botslog.NewLoggingReportWriter(w, cli.Output, logger)
			}
			return w, closeFn, nil
		}
	}

	return kongCtx.Run(deps)
}
